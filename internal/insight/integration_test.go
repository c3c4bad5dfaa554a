package insight_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projecthub/internal/insight"
	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
	"github.com/nhle/projecthub/internal/store"
	"github.com/nhle/projecthub/internal/testutil"
)

func TestSearchAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	project, err := s.CreateProject(ctx, model.Project{Name: "Redesign Sprint"})
	require.NoError(t, err)
	other, err := s.CreateProject(ctx, model.Project{Name: "Backend"})
	require.NoError(t, err)

	_, err = s.CreateTask(ctx, model.Task{Title: "UI Design Review"})
	require.NoError(t, err)
	_, err = s.CreateNote(ctx, model.Note{Title: "Standup", Content: "nothing relevant", ProjectID: other.ID})
	require.NoError(t, err)

	searcher := insight.NewSearcher(s)

	resp, err := searcher.Search(ctx, "design", scope.All())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, model.SearchTypeTask, resp.Results[0].Type)
	assert.Equal(t, "UI Design Review", resp.Results[0].DisplayName)
	assert.Equal(t, model.SearchTypeProject, resp.Results[1].Type)
	assert.Equal(t, project.ID, resp.Results[1].ID)

	scoped, err := searcher.Search(ctx, "design", scope.Resolve(project.ID))
	require.NoError(t, err)
	assert.Equal(t, 0, scoped.Total)
}

func TestSearchScopesChildrenToProject(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	web, err := s.CreateProject(ctx, model.Project{Name: "Web"})
	require.NoError(t, err)
	mobile, err := s.CreateProject(ctx, model.Project{Name: "Mobile"})
	require.NoError(t, err)

	_, err = s.CreateIdea(ctx, model.Idea{Content: "dark theme", ProjectID: &web.ID})
	require.NoError(t, err)
	_, err = s.CreateIdea(ctx, model.Idea{Content: "Dark Theme everywhere", ProjectID: &mobile.ID})
	require.NoError(t, err)
	_, err = s.CreateResource(ctx, model.Resource{
		Name: "Palette", URL: "https://example.com/palette",
		Description: testutil.Ptr("dark theme colors"), ProjectID: web.ID,
	})
	require.NoError(t, err)

	resp, err := insight.NewSearcher(s).Search(ctx, "DARK", scope.Resolve(web.ID))
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, model.SearchTypeIdea, resp.Results[0].Type)
	assert.Equal(t, "Web", *resp.Results[0].ProjectName)
	assert.Equal(t, model.SearchTypeResource, resp.Results[1].Type)
	assert.Equal(t, "Palette", resp.Results[1].DisplayName)
}

func TestStatsAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	clock := &testutil.Clock{Now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := testutil.NewTestStore(t, store.WithClock(clock.Func()))

	project, err := s.CreateProject(ctx, model.Project{Name: "Launch"})
	require.NoError(t, err)
	_, err = s.CreateProject(ctx, model.Project{Name: "Old", Status: model.ProjectStatusArchived})
	require.NoError(t, err)

	// Created well before the activity window, then touched inside it.
	stale, err := s.CreateTask(ctx, model.Task{Title: "stale", ProjectID: &project.ID})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, model.Task{Title: "untouched", Priority: model.PriorityHigh})
	require.NoError(t, err)

	clock.Now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	_, err = s.UpdateTask(ctx, stale.ID, model.TaskPatch{Status: testutil.Ptr(model.TaskStatusDone)})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, model.Task{
		Title: "late", DueDate: testutil.Ptr("2026-03-10"),
		Status: model.TaskStatusInProgress, ProjectID: &project.ID,
	})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, model.Task{Title: "due today", DueDate: testutil.Ptr("2026-03-15")})
	require.NoError(t, err)
	_, err = s.CreateIdea(ctx, model.Idea{Content: "launch party", ProjectID: &project.ID})
	require.NoError(t, err)

	engine := insight.NewStatsEngine(s, insight.WithClock(func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}))

	global, err := engine.Compute(ctx, scope.All())
	require.NoError(t, err)
	assert.Equal(t, 2, global.Overview.TotalProjects)
	assert.Equal(t, 4, global.Overview.TotalTasks)
	assert.Equal(t, 1, global.Overview.TotalIdeas)
	assert.Equal(t, 1, global.Tasks.Completed)
	assert.Equal(t, 1, global.Tasks.InProgress)
	assert.Equal(t, 2, global.Tasks.Todo)
	assert.Equal(t, 1, global.Tasks.Overdue)
	assert.Equal(t, model.PriorityCounts{High: 1, Medium: 0, Low: 3}, global.Tasks.ByPriority)
	assert.Equal(t, 25, global.Overview.CompletionRate)
	// (1*2 - 1*3 + 1*0.5) / 4 * 50 = -6.25 -> 0
	assert.Equal(t, 0, global.Overview.ProductivityScore)
	assert.Equal(t, model.ActivityStats{TasksCreatedThisWeek: 2, TasksUpdatedThisWeek: 1}, global.Activity)
	assert.Equal(t, []model.ProjectStatusCount{
		{Status: model.ProjectStatusActive, Count: 1},
		{Status: model.ProjectStatusArchived, Count: 1},
	}, global.Projects)

	scoped, err := engine.Compute(ctx, scope.Resolve(project.ID))
	require.NoError(t, err)
	assert.Equal(t, 1, scoped.Overview.TotalProjects)
	assert.Equal(t, 2, scoped.Overview.TotalTasks)
	assert.Equal(t, 50, scoped.Overview.CompletionRate)
	// (1*2 - 1*3 + 1*0.5) / 2 * 50 = -12.5 -> 0
	assert.Equal(t, 0, scoped.Overview.ProductivityScore)
	assert.Equal(t, model.ActivityStats{TasksCreatedThisWeek: 1, TasksUpdatedThisWeek: 1}, scoped.Activity)
	assert.Empty(t, scoped.Projects)

	missing, err := engine.Compute(ctx, scope.Resolve("no-such-project"))
	require.NoError(t, err)
	assert.Equal(t, model.StatsOverview{}, missing.Overview)
}
