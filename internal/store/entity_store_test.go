package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
	"github.com/nhle/projecthub/internal/store"
	"github.com/nhle/projecthub/internal/testutil"
)

func TestIdeaLifecycle(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	p, err := s.CreateProject(ctx, model.Project{Name: "Garden"})
	require.NoError(t, err)

	_, err = s.CreateIdea(ctx, model.Idea{Content: "  \n"})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Idea content is required", verr.Message)

	idea, err := s.CreateIdea(ctx, model.Idea{Content: "  raised beds  "})
	require.NoError(t, err)
	assert.Equal(t, "raised beds", idea.Content)
	assert.Nil(t, idea.ProjectID)

	idea, err = s.UpdateIdea(ctx, idea.ID, model.IdeaPatch{ProjectID: &p.ID})
	require.NoError(t, err)
	require.NotNil(t, idea.ProjectName)
	assert.Equal(t, "Garden", *idea.ProjectName)

	scoped, err := s.GetIdeas(ctx, scope.ForIdeas(scope.Resolve(p.ID)))
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	require.NoError(t, s.DeleteIdea(ctx, idea.ID))
	_, err = s.GetIdeaByID(ctx, idea.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNoteLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &testutil.Clock{Now: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
	s := testutil.NewTestStore(t, store.WithClock(clock.Func()))

	p, err := s.CreateProject(ctx, model.Project{Name: "Garden"})
	require.NoError(t, err)

	_, err = s.CreateNote(ctx, model.Note{Title: "soil", Content: "loam"})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Title, content, and project_id are required", verr.Message)

	_, err = s.CreateNote(ctx, model.Note{Title: "soil", Content: "loam", ProjectID: "nope"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Project not found", verr.Message)

	first, err := s.CreateNote(ctx, model.Note{Title: "soil", Content: "loam", ProjectID: p.ID})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = s.CreateNote(ctx, model.Note{Title: "water", Content: "daily", ProjectID: p.ID})
	require.NoError(t, err)

	clock.Advance(time.Minute)
	first, err = s.UpdateNote(ctx, first.ID, model.NotePatch{Content: testutil.Ptr("clay")})
	require.NoError(t, err)
	assert.Equal(t, "clay", first.Content)

	notes, err := s.GetNotes(ctx, scope.ForNotes(scope.Resolve(p.ID)))
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "soil", notes[0].Title)

	_, err = s.UpdateNote(ctx, first.ID, model.NotePatch{Title: testutil.Ptr("")})
	require.ErrorAs(t, err, &verr)

	require.NoError(t, s.DeleteNote(ctx, first.ID))
	assert.ErrorIs(t, s.DeleteNote(ctx, first.ID), store.ErrNotFound)
}

func TestResourceLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &testutil.Clock{Now: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
	s := testutil.NewTestStore(t, store.WithClock(clock.Func()))

	p, err := s.CreateProject(ctx, model.Project{Name: "Garden"})
	require.NoError(t, err)

	_, err = s.CreateResource(ctx, model.Resource{Name: "seeds", ProjectID: p.ID})
	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Name, URL, and project_id are required", verr.Message)

	link, err := s.CreateResource(ctx, model.Resource{
		Name: "seed shop", URL: "https://seeds.example", ProjectID: p.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultResourceType, link.Type)
	assert.Equal(t, "Garden", *link.ProjectName)

	clock.Advance(time.Minute)
	_, err = s.CreateResource(ctx, model.Resource{
		Name: "planting guide", URL: "https://guide.example/a.pdf", Type: "document", ProjectID: p.ID,
	})
	require.NoError(t, err)

	resources, err := s.GetResources(ctx, scope.ForResources(scope.Resolve(p.ID)))
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "document", resources[0].Type)
	assert.Equal(t, "link", resources[1].Type)

	link, err = s.UpdateResource(ctx, link.ID, model.ResourcePatch{
		Description: testutil.Ptr("heirloom varieties"),
	})
	require.NoError(t, err)
	assert.Equal(t, "heirloom varieties", *link.Description)

	require.NoError(t, s.DeleteResource(ctx, link.ID))
	_, err = s.GetResourceByID(ctx, link.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
