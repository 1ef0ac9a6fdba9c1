package services

import (
	"context"
	"fmt"
	"net/url"

	"netflix-clone-backend/models"
)

// ContentStrategy is the operation set shared by movies and tv shows.
type ContentStrategy interface {
	// Trending returns one random item from the first page of the popular list.
	Trending(ctx context.Context) (models.Content, error)
	Trailers(ctx context.Context, id string) ([]models.Content, error)
	Details(ctx context.Context, id string) (models.Content, error)
	Similar(ctx context.Context, id string) ([]models.Content, error)
	Category(ctx context.Context, category string) ([]models.Content, error)
	Reviews(ctx context.Context, id string) ([]models.Content, error)
	Cast(ctx context.Context, id string) ([]models.Content, error)
	Recommendations(ctx context.Context, id string) ([]models.Content, error)
	Images(ctx context.Context, id string) (models.Content, error)
}

var (
	movieCategories = map[string]bool{"now_playing": true, "popular": true, "top_rated": true, "upcoming": true}
	tvCategories    = map[string]bool{"airing_today": true, "on_the_air": true, "popular": true, "top_rated": true}
)

type ContentService struct {
	strategies map[models.ContentType]ContentStrategy
}

// NewContentService builds the movie and tv strategies. pick chooses an index
// in [0, n) for Trending.
func NewContentService(provider MediaProvider, pick func(n int) int) *ContentService {
	return &ContentService{
		strategies: map[models.ContentType]ContentStrategy{
			models.ContentTypeMovie: &movieStrategy{tmdbStrategy{kind: models.ContentTypeMovie, provider: provider, pick: pick, categories: movieCategories}},
			models.ContentTypeTV:    &tvStrategy{tmdbStrategy{kind: models.ContentTypeTV, provider: provider, pick: pick, categories: tvCategories}},
		},
	}
}

// Strategy resolves a content-type key; anything but movie or tv is rejected
// before an upstream call can happen.
func (s *ContentService) Strategy(kind string) (ContentStrategy, error) {
	strategy, ok := s.strategies[models.ContentType(kind)]
	if !ok {
		return nil, ErrInvalidContentType
	}
	return strategy, nil
}

type tmdbStrategy struct {
	kind       models.ContentType
	provider   MediaProvider
	pick       func(n int) int
	categories map[string]bool
}

func (t *tmdbStrategy) path(id, suffix string) string {
	if suffix == "" {
		return fmt.Sprintf("/%s/%s", t.kind, id)
	}
	return fmt.Sprintf("/%s/%s/%s", t.kind, id, suffix)
}

func (t *tmdbStrategy) results(ctx context.Context, rawID, suffix string) ([]models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	page, err := t.provider.FetchPage(ctx, t.path(id, suffix), nil)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (t *tmdbStrategy) Trending(ctx context.Context) (models.Content, error) {
	page, err := t.provider.FetchPage(ctx, fmt.Sprintf("/%s/popular", t.kind), url.Values{"page": {"1"}})
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, ErrNoResults
	}
	return page.Results[t.pick(len(page.Results))], nil
}

func (t *tmdbStrategy) Trailers(ctx context.Context, id string) ([]models.Content, error) {
	return t.results(ctx, id, "videos")
}

func (t *tmdbStrategy) Details(ctx context.Context, rawID string) (models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return t.provider.FetchContent(ctx, t.path(id, ""), nil)
}

func (t *tmdbStrategy) Similar(ctx context.Context, id string) ([]models.Content, error) {
	return t.results(ctx, id, "similar")
}

func (t *tmdbStrategy) Category(ctx context.Context, category string) ([]models.Content, error) {
	if !t.categories[category] {
		return nil, ErrInvalidCategory
	}
	page, err := t.provider.FetchPage(ctx, fmt.Sprintf("/%s/%s", t.kind, category), url.Values{"page": {"1"}})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (t *tmdbStrategy) Reviews(ctx context.Context, id string) ([]models.Content, error) {
	return t.results(ctx, id, "reviews")
}

type movieStrategy struct {
	tmdbStrategy
}

func (m *movieStrategy) Cast(ctx context.Context, rawID string) ([]models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	credits, err := m.provider.FetchCredits(ctx, m.path(id, "credits"))
	if err != nil {
		return nil, err
	}
	return credits.Cast, nil
}

func (m *movieStrategy) Recommendations(ctx context.Context, id string) ([]models.Content, error) {
	return m.results(ctx, id, "recommendations")
}

func (m *movieStrategy) Images(ctx context.Context, rawID string) (models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return m.provider.FetchContent(ctx, m.path(id, "images"), url.Values{"include_image_language": {"en,null"}})
}

// tvStrategy has no cast, recommendations or images.
type tvStrategy struct {
	tmdbStrategy
}

func (*tvStrategy) Cast(context.Context, string) ([]models.Content, error) {
	return nil, ErrUnsupportedOperation
}

func (*tvStrategy) Recommendations(context.Context, string) ([]models.Content, error) {
	return nil, ErrUnsupportedOperation
}

func (*tvStrategy) Images(context.Context, string) (models.Content, error) {
	return nil, ErrUnsupportedOperation
}
