package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
	"github.com/nhle/projecthub/internal/store"
)

var fixedNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestCompletionRate(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{6, 10, 60},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{10, 10, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompletionRate(tc.completed, tc.total), "%d/%d", tc.completed, tc.total)
	}
}

func TestProductivityScore(t *testing.T) {
	cases := []struct {
		name                                  string
		completed, overdue, inProgress, total int
		want                                  int
	}{
		{"no tasks", 0, 0, 0, 0, 0},
		{"worked example", 6, 1, 2, 10, 50},
		{"all done clamps to 100", 10, 0, 0, 10, 100},
		{"all overdue clamps to 0", 0, 5, 0, 5, 0},
		{"only in progress", 0, 0, 4, 4, 25},
		{"half up rounding", 1, 0, 0, 8, 13}, // 12.5
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProductivityScore(tc.completed, tc.overdue, tc.inProgress, tc.total)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestComputeGlobal(t *testing.T) {
	reader := &fakeReader{
		projectCount: 3,
		rollup: store.TaskRollup{
			Total: 10, Todo: 2, InProgress: 2, Done: 6,
			Low: 5, Medium: 3, High: 2, Overdue: 1,
		},
		ideaCount: 4,
		noteCount: 5,
		resCount:  6,
		activity:  store.TaskActivity{Created: 7, Updated: 2},
		breakdown: []model.ProjectStatusCount{
			{Status: "active", Count: 2},
			{Status: "archived", Count: 1},
		},
	}

	summary, err := NewStatsEngine(reader, WithClock(fixedClock)).Compute(context.Background(), scope.All())
	require.NoError(t, err)

	assert.Equal(t, model.StatsOverview{
		TotalProjects:     3,
		TotalTasks:        10,
		TotalIdeas:        4,
		TotalNotes:        5,
		TotalResources:    6,
		CompletionRate:    60,
		ProductivityScore: 50,
	}, summary.Overview)
	assert.Equal(t, model.TaskStats{
		Todo: 2, InProgress: 2, Completed: 6, Overdue: 1,
		ByPriority: model.PriorityCounts{High: 2, Medium: 3, Low: 5},
	}, summary.Tasks)
	assert.Equal(t, model.ActivityStats{TasksCreatedThisWeek: 7, TasksUpdatedThisWeek: 2}, summary.Activity)
	assert.Equal(t, reader.breakdown, summary.Projects)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), reader.today)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), reader.since)
	assert.Equal(t, 7, reader.callCount())
}

func TestComputeScopedOmitsStatusBreakdown(t *testing.T) {
	reader := &fakeReader{
		projectCount: 1,
		breakdown:    []model.ProjectStatusCount{{Status: "active", Count: 9}},
	}

	summary, err := NewStatsEngine(reader, WithClock(fixedClock)).Compute(context.Background(), scope.Resolve("p1"))
	require.NoError(t, err)

	assert.False(t, reader.called("breakdown"))
	assert.NotNil(t, summary.Projects)
	assert.Empty(t, summary.Projects)
	assert.Equal(t, 1, summary.Overview.TotalProjects)
	assert.Equal(t, "p.id = ?", reader.preds["count_projects"].Clause)
	assert.Equal(t, "t.project_id = ?", reader.preds["rollup_tasks"].Clause)
	assert.Equal(t, "t.project_id = ?", reader.preds["activity"].Clause)
	assert.Equal(t, "i.project_id = ?", reader.preds["count_ideas"].Clause)
	assert.Equal(t, "n.project_id = ?", reader.preds["count_notes"].Clause)
	assert.Equal(t, "r.project_id = ?", reader.preds["count_resources"].Clause)
}

func TestComputeNoTasksScoresZero(t *testing.T) {
	summary, err := NewStatsEngine(&fakeReader{}, WithClock(fixedClock)).Compute(context.Background(), scope.All())
	require.NoError(t, err)

	assert.Zero(t, summary.Overview.CompletionRate)
	assert.Zero(t, summary.Overview.ProductivityScore)
	assert.NotNil(t, summary.Projects)
}

func TestComputeIsIdempotent(t *testing.T) {
	reader := &fakeReader{
		projectCount: 2,
		rollup:       store.TaskRollup{Total: 3, Done: 1, InProgress: 1, Todo: 1, Low: 3},
		breakdown:    []model.ProjectStatusCount{{Status: "active", Count: 2}},
	}
	engine := NewStatsEngine(reader, WithClock(fixedClock))

	first, err := engine.Compute(context.Background(), scope.All())
	require.NoError(t, err)
	second, err := engine.Compute(context.Background(), scope.All())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeFailsWholeWhenOneReadFails(t *testing.T) {
	boom := errors.New("disk I/O error")
	reader := &fakeReader{failOn: "count_notes", err: boom}

	summary, err := NewStatsEngine(reader, WithClock(fixedClock)).Compute(context.Background(), scope.All())
	assert.Nil(t, summary)

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, boom)
}
