package insight

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
	"github.com/nhle/projecthub/internal/store"
)

// fakeReader serves canned rows, records every call and can fail one read.
type fakeReader struct {
	mu     sync.Mutex
	calls  []string
	preds  map[string]scope.Predicate
	failOn string
	err    error

	// gate, when set, holds every read until all expected reads arrived.
	gate *barrier

	tasks     []model.Task
	ideas     []model.Idea
	notes     []model.Note
	resources []model.Resource
	projects  []model.Project

	projectCount int
	rollup       store.TaskRollup
	ideaCount    int
	noteCount    int
	resCount     int
	activity     store.TaskActivity
	breakdown    []model.ProjectStatusCount

	today time.Time
	since time.Time
}

func (f *fakeReader) record(name string, p scope.Predicate) error {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	if f.preds == nil {
		f.preds = make(map[string]scope.Predicate)
	}
	f.preds[name] = p
	var failErr error
	if name == f.failOn {
		failErr = f.err
	}
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		if err := gate.arrive(); err != nil {
			return err
		}
	}
	return failErr
}

var errGateTimeout = errors.New("reads did not overlap")

// barrier releases its waiters only once n reads are in flight at the
// same time. Reads issued one after another time out on the first arrival.
type barrier struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func newBarrier(n int) *barrier {
	b := &barrier{timeout: 2 * time.Second}
	b.wg.Add(n)
	return b
}

func (b *barrier) arrive() error {
	b.wg.Done()

	released := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(released)
	}()

	select {
	case <-released:
		return nil
	case <-time.After(b.timeout):
		return errGateTimeout
	}
}

func (f *fakeReader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeReader) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeReader) SearchTasks(_ context.Context, _ string, p scope.Predicate) ([]model.Task, error) {
	return f.tasks, f.record("tasks", p)
}

func (f *fakeReader) SearchIdeas(_ context.Context, _ string, p scope.Predicate) ([]model.Idea, error) {
	return f.ideas, f.record("ideas", p)
}

func (f *fakeReader) SearchNotes(_ context.Context, _ string, p scope.Predicate) ([]model.Note, error) {
	return f.notes, f.record("notes", p)
}

func (f *fakeReader) SearchResources(_ context.Context, _ string, p scope.Predicate) ([]model.Resource, error) {
	return f.resources, f.record("resources", p)
}

func (f *fakeReader) SearchProjects(_ context.Context, _ string, p scope.Predicate) ([]model.Project, error) {
	return f.projects, f.record("projects", p)
}

func (f *fakeReader) CountProjects(_ context.Context, p scope.Predicate) (int, error) {
	return f.projectCount, f.record("count_projects", p)
}

func (f *fakeReader) RollupTasks(_ context.Context, p scope.Predicate, today time.Time) (store.TaskRollup, error) {
	f.mu.Lock()
	f.today = today
	f.mu.Unlock()
	return f.rollup, f.record("rollup_tasks", p)
}

func (f *fakeReader) CountIdeas(_ context.Context, p scope.Predicate) (int, error) {
	return f.ideaCount, f.record("count_ideas", p)
}

func (f *fakeReader) CountNotes(_ context.Context, p scope.Predicate) (int, error) {
	return f.noteCount, f.record("count_notes", p)
}

func (f *fakeReader) CountResources(_ context.Context, p scope.Predicate) (int, error) {
	return f.resCount, f.record("count_resources", p)
}

func (f *fakeReader) TaskActivitySince(_ context.Context, p scope.Predicate, since time.Time) (store.TaskActivity, error) {
	f.mu.Lock()
	f.since = since
	f.mu.Unlock()
	return f.activity, f.record("activity", p)
}

func (f *fakeReader) ProjectStatusBreakdown(_ context.Context) ([]model.ProjectStatusCount, error) {
	return f.breakdown, f.record("breakdown", scope.Predicate{})
}
