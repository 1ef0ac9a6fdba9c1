package services

import (
	"context"
	"strings"
	"time"

	"netflix-clone-backend/models"

	"github.com/hashicorp/go-hclog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookmarkService struct {
	userRepo UserStore
	logger   hclog.Logger
}

func NewBookmarkService(userRepo UserStore, logger hclog.Logger) *BookmarkService {
	return &BookmarkService{
		userRepo: userRepo,
		logger:   logger.Named("bookmark"),
	}
}

// Add stores the bookmark. A second bookmark for the same (id, type) is
// rejected by the store with data_access.ErrBookmarkExists.
func (s *BookmarkService) Add(ctx context.Context, userID primitive.ObjectID, req *models.AddBookmarkRequest) (*models.Bookmark, error) {
	if !req.Type.Valid() {
		return nil, ErrInvalidContentType
	}
	if req.ID <= 0 {
		return nil, ErrInvalidID
	}
	bookmark := models.Bookmark{
		ContentID:   req.ID,
		ContentType: req.Type,
		Title:       strings.TrimSpace(req.Title),
		PosterPath:  req.Image,
		AddedAt:     time.Now(),
	}
	if err := s.userRepo.AddBookmark(ctx, userID, bookmark); err != nil {
		return nil, err
	}
	s.logger.Debug("bookmark added", "user_id", userID.Hex(), "content_id", req.ID, "type", req.Type)
	return &bookmark, nil
}

// Remove drops every bookmark with contentID. contentType narrows the match
// when non-empty.
func (s *BookmarkService) Remove(ctx context.Context, userID primitive.ObjectID, contentID int64, contentType models.ContentType) error {
	if contentType != "" && !contentType.Valid() {
		return ErrInvalidContentType
	}
	return s.userRepo.RemoveBookmark(ctx, userID, contentID, contentType)
}

func (s *BookmarkService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Bookmark, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public().Bookmarks, nil
}
