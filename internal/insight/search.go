package insight

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/scope"
	"github.com/nhle/projecthub/internal/store"
)

// MinQueryLength is the minimum trimmed query length, in characters.
const MinQueryLength = 2

// MsgQueryTooShort is returned for queries below MinQueryLength.
const MsgQueryTooShort = "Search query must be at least 2 characters"

// searchOrder is the merge order of result groups. It does not depend on
// which read finishes first.
var searchOrder = []model.SearchResultType{
	model.SearchTypeTask,
	model.SearchTypeIdea,
	model.SearchTypeNote,
	model.SearchTypeResource,
	model.SearchTypeProject,
}

// hit is one matched entity. Each variant projects itself onto the uniform
// result record.
type hit interface {
	result() model.SearchResult
}

type taskHit struct{ model.Task }

func (h taskHit) result() model.SearchResult {
	title := h.Title
	return model.SearchResult{
		Type:           model.SearchTypeTask,
		ID:             h.ID,
		DisplayName:    h.Title,
		DisplayContent: &title,
		ProjectID:      h.ProjectID,
		ProjectName:    h.ProjectName,
	}
}

type ideaHit struct{ model.Idea }

func (h ideaHit) result() model.SearchResult {
	content := h.Content
	return model.SearchResult{
		Type:           model.SearchTypeIdea,
		ID:             h.ID,
		DisplayName:    "Idea",
		DisplayContent: &content,
		ProjectID:      h.ProjectID,
		ProjectName:    h.ProjectName,
	}
}

type noteHit struct{ model.Note }

func (h noteHit) result() model.SearchResult {
	content, projectID := h.Content, h.ProjectID
	return model.SearchResult{
		Type:           model.SearchTypeNote,
		ID:             h.ID,
		DisplayName:    h.Title,
		DisplayContent: &content,
		ProjectID:      &projectID,
		ProjectName:    h.ProjectName,
	}
}

type resourceHit struct{ model.Resource }

func (h resourceHit) result() model.SearchResult {
	projectID := h.ProjectID
	return model.SearchResult{
		Type:           model.SearchTypeResource,
		ID:             h.ID,
		DisplayName:    h.Name,
		DisplayContent: h.Description,
		ProjectID:      &projectID,
		ProjectName:    h.ProjectName,
	}
}

// projectHit refers to itself as the owning project.
type projectHit struct{ model.Project }

func (h projectHit) result() model.SearchResult {
	id, name := h.ID, h.Name
	return model.SearchResult{
		Type:           model.SearchTypeProject,
		ID:             h.ID,
		DisplayName:    h.Name,
		DisplayContent: h.Description,
		ProjectID:      &id,
		ProjectName:    &name,
	}
}

func wrap[T any, H hit](rows []T, as func(T) H) []hit {
	hits := make([]hit, len(rows))
	for i, row := range rows {
		hits[i] = as(row)
	}
	return hits
}

// Searcher fans a text query out across every searchable entity type.
type Searcher struct {
	reader store.SearchReader
}

// NewSearcher creates a Searcher over the given reader.
func NewSearcher(reader store.SearchReader) *Searcher {
	return &Searcher{reader: reader}
}

// Search matches query against tasks (title), ideas (content), notes
// (title or content), resources (name or description) and, for the
// unrestricted scope only, projects (name or description). Results are
// concatenated in that fixed order without ranking or de-duplication.
func (s *Searcher) Search(ctx context.Context, query string, sc scope.Scope) (*model.SearchResponse, error) {
	term := strings.TrimSpace(query)
	if utf8.RuneCountInString(term) < MinQueryLength {
		return nil, &ValidationError{Message: MsgQueryTooShort}
	}

	fetchers := map[model.SearchResultType]func(context.Context) ([]hit, error){
		model.SearchTypeTask: func(ctx context.Context) ([]hit, error) {
			rows, err := s.reader.SearchTasks(ctx, term, scope.ForTasks(sc))
			return wrap(rows, func(t model.Task) taskHit { return taskHit{t} }), err
		},
		model.SearchTypeIdea: func(ctx context.Context) ([]hit, error) {
			rows, err := s.reader.SearchIdeas(ctx, term, scope.ForIdeas(sc))
			return wrap(rows, func(i model.Idea) ideaHit { return ideaHit{i} }), err
		},
		model.SearchTypeNote: func(ctx context.Context) ([]hit, error) {
			rows, err := s.reader.SearchNotes(ctx, term, scope.ForNotes(sc))
			return wrap(rows, func(n model.Note) noteHit { return noteHit{n} }), err
		},
		model.SearchTypeResource: func(ctx context.Context) ([]hit, error) {
			rows, err := s.reader.SearchResources(ctx, term, scope.ForResources(sc))
			return wrap(rows, func(r model.Resource) resourceHit { return resourceHit{r} }), err
		},
	}
	// Searching one project for itself is meaningless.
	if !sc.Restricted() {
		fetchers[model.SearchTypeProject] = func(ctx context.Context) ([]hit, error) {
			rows, err := s.reader.SearchProjects(ctx, term, scope.ForProjects(sc))
			return wrap(rows, func(p model.Project) projectHit { return projectHit{p} }), err
		}
	}

	groups := make([][]hit, len(searchOrder))
	g, gctx := errgroup.WithContext(ctx)
	for i, typ := range searchOrder {
		fetch, ok := fetchers[typ]
		if !ok {
			continue
		}
		g.Go(func() error {
			hits, err := fetch(gctx)
			if err != nil {
				return fmt.Errorf("searching %ss: %w", typ, err)
			}
			groups[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &StorageError{Op: "search", Err: err}
	}

	results := make([]model.SearchResult, 0)
	for _, group := range groups {
		for _, h := range group {
			results = append(results, h.result())
		}
	}

	return &model.SearchResponse{
		Query:   term,
		Total:   len(results),
		Results: results,
	}, nil
}
