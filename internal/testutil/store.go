package testutil

import (
	"testing"
	"time"

	"github.com/nhle/projecthub/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T, opts ...store.Option) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:", opts...)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Clock is a settable time source for stores and engines under test.
type Clock struct {
	Now time.Time
}

// Func returns the clock as a time source.
func (c *Clock) Func() func() time.Time {
	return func() time.Time { return c.Now }
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.Now = c.Now.Add(d)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
