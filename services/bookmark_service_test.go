package services

import (
	"context"
	"testing"

	"netflix-clone-backend/data_access"
	"netflix-clone-backend/models"
	"netflix-clone-backend/testutil"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkDuplicateRejected(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := NewBookmarkService(store, hclog.NewNullLogger())
	ctx := context.Background()
	userID := seedUser(t, store)

	req := &models.AddBookmarkRequest{ID: 550, Type: models.ContentTypeMovie, Title: "Fight Club", Image: "/p.jpg"}
	added, err := svc.Add(ctx, userID, req)
	require.NoError(t, err)
	assert.Equal(t, "/p.jpg", added.PosterPath)

	_, err = svc.Add(ctx, userID, req)
	assert.ErrorIs(t, err, data_access.ErrBookmarkExists)

	bookmarks, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}

func TestBookmarkSameIDDifferentType(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := NewBookmarkService(store, hclog.NewNullLogger())
	ctx := context.Background()
	userID := seedUser(t, store)

	_, err := svc.Add(ctx, userID, &models.AddBookmarkRequest{ID: 550, Type: models.ContentTypeMovie, Title: "Fight Club"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, &models.AddBookmarkRequest{ID: 550, Type: models.ContentTypeTV, Title: "Some Show"})
	require.NoError(t, err)

	bookmarks, _ := svc.List(ctx, userID)
	assert.Len(t, bookmarks, 2)

	// unscoped removal takes both
	require.NoError(t, svc.Remove(ctx, userID, 550, ""))
	bookmarks, _ = svc.List(ctx, userID)
	assert.Empty(t, bookmarks)
}

func TestBookmarkScopedRemove(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := NewBookmarkService(store, hclog.NewNullLogger())
	ctx := context.Background()
	userID := seedUser(t, store)

	_, _ = svc.Add(ctx, userID, &models.AddBookmarkRequest{ID: 550, Type: models.ContentTypeMovie, Title: "Fight Club"})
	_, _ = svc.Add(ctx, userID, &models.AddBookmarkRequest{ID: 550, Type: models.ContentTypeTV, Title: "Some Show"})

	require.NoError(t, svc.Remove(ctx, userID, 550, models.ContentTypeTV))
	bookmarks, _ := svc.List(ctx, userID)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, models.ContentTypeMovie, bookmarks[0].ContentType)

	assert.ErrorIs(t, svc.Remove(ctx, userID, 550, "anime"), ErrInvalidContentType)
}

func TestBookmarkInvalidType(t *testing.T) {
	store := testutil.NewMemoryStore()
	svc := NewBookmarkService(store, hclog.NewNullLogger())
	userID := seedUser(t, store)

	_, err := svc.Add(context.Background(), userID, &models.AddBookmarkRequest{ID: 1, Type: "anime", Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidContentType)
}
