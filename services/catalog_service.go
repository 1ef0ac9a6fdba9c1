package services

import (
	"context"
	"fmt"
	"net/url"

	"netflix-clone-backend/models"
)

var (
	trendingMedia   = map[string]bool{"all": true, "movie": true, "tv": true, "person": true}
	trendingWindows = map[string]bool{"day": true, "week": true}
)

// CatalogService covers the actor, collection and trending resources. Each
// operation is one TMDB call.
type CatalogService struct {
	provider MediaProvider
}

func NewCatalogService(provider MediaProvider) *CatalogService {
	return &CatalogService{provider: provider}
}

func (s *CatalogService) PopularActors(ctx context.Context) ([]models.Content, error) {
	page, err := s.provider.FetchPage(ctx, "/person/popular", url.Values{"page": {"1"}})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *CatalogService) Actor(ctx context.Context, rawID string) (models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.provider.FetchContent(ctx, "/person/"+id, nil)
}

func (s *CatalogService) ActorMovies(ctx context.Context, rawID string) ([]models.Content, error) {
	return s.actorCredits(ctx, rawID, "movie_credits")
}

func (s *CatalogService) ActorTV(ctx context.Context, rawID string) ([]models.Content, error) {
	return s.actorCredits(ctx, rawID, "tv_credits")
}

func (s *CatalogService) actorCredits(ctx context.Context, rawID, kind string) ([]models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	credits, err := s.provider.FetchCredits(ctx, fmt.Sprintf("/person/%s/%s", id, kind))
	if err != nil {
		return nil, err
	}
	return credits.Cast, nil
}

// ActorImages returns the person's profile images.
func (s *CatalogService) ActorImages(ctx context.Context, rawID string) ([]any, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	images, err := s.provider.FetchContent(ctx, fmt.Sprintf("/person/%s/images", id), nil)
	if err != nil {
		return nil, err
	}
	profiles, _ := images["profiles"].([]any)
	if profiles == nil {
		profiles = []any{}
	}
	return profiles, nil
}

func (s *CatalogService) CollectionDetails(ctx context.Context, rawID string) (models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.provider.FetchContent(ctx, "/collection/"+id, nil)
}

func (s *CatalogService) CollectionImages(ctx context.Context, rawID string) (models.Content, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.provider.FetchContent(ctx, fmt.Sprintf("/collection/%s/images", id), url.Values{"include_image_language": {"en,null"}})
}

// Trending is TMDB's real trending list for media over window.
func (s *CatalogService) Trending(ctx context.Context, media, window string) ([]models.Content, error) {
	if !trendingMedia[media] {
		return nil, ErrInvalidMediaType
	}
	if !trendingWindows[window] {
		return nil, ErrInvalidTimeWindow
	}
	page, err := s.provider.FetchPage(ctx, fmt.Sprintf("/trending/%s/%s", media, window), nil)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
