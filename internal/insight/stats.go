package insight

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
	"github.com/nhle/projecthub/internal/store"
)

// activityWindow is the trailing window of the activity section.
const activityWindow = 7 * 24 * time.Hour

// StatsEngine computes the dashboard rollup.
type StatsEngine struct {
	reader store.StatsReader
	now    func() time.Time
}

// StatsOption configures a StatsEngine.
type StatsOption func(*StatsEngine)

// WithClock overrides the engine's notion of now.
func WithClock(now func() time.Time) StatsOption {
	return func(e *StatsEngine) {
		e.now = now
	}
}

// NewStatsEngine creates a StatsEngine over the given reader.
func NewStatsEngine(reader store.StatsReader, opts ...StatsOption) *StatsEngine {
	e := &StatsEngine{reader: reader, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute runs the statistics battery for the scope. A project id that
// does not exist yields all-zero counts rather than an error. The project
// status breakdown is only computed for the unrestricted scope and is an
// empty slice otherwise.
func (e *StatsEngine) Compute(ctx context.Context, sc scope.Scope) (*model.StatsSummary, error) {
	now := e.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.Add(-activityWindow)

	var (
		projects  int
		rollup    store.TaskRollup
		ideas     int
		notes     int
		resources int
		activity  store.TaskActivity
		breakdown = make([]model.ProjectStatusCount, 0)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = e.reader.CountProjects(gctx, scope.ForProjects(sc))
		return err
	})
	g.Go(func() (err error) {
		rollup, err = e.reader.RollupTasks(gctx, scope.ForTasks(sc), today)
		return err
	})
	g.Go(func() (err error) {
		ideas, err = e.reader.CountIdeas(gctx, scope.ForIdeas(sc))
		return err
	})
	g.Go(func() (err error) {
		notes, err = e.reader.CountNotes(gctx, scope.ForNotes(sc))
		return err
	})
	g.Go(func() (err error) {
		resources, err = e.reader.CountResources(gctx, scope.ForResources(sc))
		return err
	})
	g.Go(func() (err error) {
		activity, err = e.reader.TaskActivitySince(gctx, scope.ForTasks(sc), windowStart)
		return err
	})
	if !sc.Restricted() {
		g.Go(func() error {
			counts, err := e.reader.ProjectStatusBreakdown(gctx)
			if err != nil {
				return err
			}
			if counts != nil {
				breakdown = counts
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &StorageError{Op: "compute stats", Err: err}
	}

	return &model.StatsSummary{
		Overview: model.StatsOverview{
			TotalProjects:     projects,
			TotalTasks:        rollup.Total,
			TotalIdeas:        ideas,
			TotalNotes:        notes,
			TotalResources:    resources,
			CompletionRate:    CompletionRate(rollup.Done, rollup.Total),
			ProductivityScore: ProductivityScore(rollup.Done, rollup.Overdue, rollup.InProgress, rollup.Total),
		},
		Tasks: model.TaskStats{
			Todo:       rollup.Todo,
			InProgress: rollup.InProgress,
			Completed:  rollup.Done,
			Overdue:    rollup.Overdue,
			ByPriority: model.PriorityCounts{
				High:   rollup.High,
				Medium: rollup.Medium,
				Low:    rollup.Low,
			},
		},
		Activity: model.ActivityStats{
			TasksCreatedThisWeek: activity.Created,
			TasksUpdatedThisWeek: activity.Updated,
		},
		Projects: breakdown,
	}, nil
}
