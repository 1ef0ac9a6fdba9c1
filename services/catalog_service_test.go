package services

import (
	"context"
	"testing"

	"netflix-clone-backend/models"
	"netflix-clone-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPaths(t *testing.T) {
	provider := testutil.NewStubProvider()
	svc := NewCatalogService(provider)
	ctx := context.Background()

	_, _ = svc.PopularActors(ctx)
	_, _ = svc.Actor(ctx, "287")
	_, _ = svc.ActorMovies(ctx, "287")
	_, _ = svc.ActorTV(ctx, "287")
	_, _ = svc.ActorImages(ctx, "287")
	_, _ = svc.CollectionDetails(ctx, "10")
	_, _ = svc.CollectionImages(ctx, "10")
	_, _ = svc.Trending(ctx, "all", "week")

	var paths []string
	for _, c := range provider.Calls {
		paths = append(paths, c.Path)
	}
	assert.Equal(t, []string{
		"/person/popular",
		"/person/287",
		"/person/287/movie_credits",
		"/person/287/tv_credits",
		"/person/287/images",
		"/collection/10",
		"/collection/10/images",
		"/trending/all/week",
	}, paths)
}

func TestActorImagesProfiles(t *testing.T) {
	provider := testutil.NewStubProvider()
	provider.Contents["/person/287/images"] = models.Content{
		"id":       float64(287),
		"profiles": []any{map[string]any{"file_path": "/a.jpg"}},
	}
	svc := NewCatalogService(provider)

	profiles, err := svc.ActorImages(context.Background(), "287")
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	empty, err := svc.ActorImages(context.Background(), "1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCatalogTrendingValidation(t *testing.T) {
	provider := testutil.NewStubProvider()
	svc := NewCatalogService(provider)
	ctx := context.Background()

	_, err := svc.Trending(ctx, "company", "day")
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	_, err = svc.Trending(ctx, "movie", "month")
	assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	_, err = svc.Actor(ctx, "abc")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, provider.CallCount())
}
