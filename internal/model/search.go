package model

// SearchResultType tags which entity a search result came from.
type SearchResultType string

const (
	SearchTypeTask     SearchResultType = "task"
	SearchTypeIdea     SearchResultType = "idea"
	SearchTypeNote     SearchResultType = "note"
	SearchTypeResource SearchResultType = "resource"
	SearchTypeProject  SearchResultType = "project"
)

// SearchResult is the uniform display record every matched entity is
// projected onto.
type SearchResult struct {
	Type           SearchResultType `json:"type"`
	ID             string           `json:"id"`
	DisplayName    string           `json:"name"`
	DisplayContent *string          `json:"content"`
	ProjectID      *string          `json:"project_id"`
	ProjectName    *string          `json:"project_name"`
}

// SearchResponse is the payload of a cross-entity search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Results []SearchResult `json:"results"`
}
