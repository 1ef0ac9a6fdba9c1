package services

import (
	"context"
	"net/url"

	"netflix-clone-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the persistence the services depend on. data_access.UserRepository
// is the production implementation.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, changes models.UpdateProfileRequest) (*models.User, error)
	AddBookmark(ctx context.Context, userID primitive.ObjectID, bookmark models.Bookmark) error
	RemoveBookmark(ctx context.Context, userID primitive.ObjectID, contentID int64, contentType models.ContentType) error
	AddSearchHistory(ctx context.Context, userID primitive.ObjectID, entry models.SearchHistoryEntry) error
	RemoveSearchHistory(ctx context.Context, userID primitive.ObjectID, entryID int64) error
}

// MediaProvider is the TMDB surface used by the content, search and catalog
// services. data_access.TMDBClient is the production implementation.
type MediaProvider interface {
	FetchPage(ctx context.Context, path string, query url.Values) (*models.Page, error)
	FetchContent(ctx context.Context, path string, query url.Values) (models.Content, error)
	FetchCredits(ctx context.Context, path string) (*models.Credits, error)
}
