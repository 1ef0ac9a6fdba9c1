package models

// ContentType selects the movie or tv content strategy.
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeTV    ContentType = "tv"
)

func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeTV
}

// SearchType is the domain a search-history entry came from.
type SearchType string

const (
	SearchTypeMovie      SearchType = "movie"
	SearchTypeTV         SearchType = "tv"
	SearchTypePerson     SearchType = "person"
	SearchTypeCollection SearchType = "collection"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeMovie, SearchTypeTV, SearchTypePerson, SearchTypeCollection:
		return true
	}
	return false
}

// Content is whatever TMDB returns for a movie, show, person or collection.
// It is passed through to the client without reshaping.
type Content map[string]any

// Page is the shape of every paged TMDB list endpoint.
type Page struct {
	Page         int       `json:"page"`
	Results      []Content `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

// Credits covers /credits, /movie_credits and /tv_credits.
type Credits struct {
	ID   int64     `json:"id"`
	Cast []Content `json:"cast"`
	Crew []Content `json:"crew"`
}
