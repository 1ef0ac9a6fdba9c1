package data_access

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"netflix-clone-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already exists")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrBookmarkExists = errors.New("content already bookmarked")
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection(usersCollection),
	}
}

// CreateUser inserts the user and sets its ID. Uniqueness of email and
// username is enforced by the collection's unique indexes.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.SearchHistory == nil {
		user.SearchHistory = []models.SearchHistoryEntry{}
	}
	if user.Bookmarks == nil {
		user.Bookmarks = []models.Bookmark{}
	}

	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return mapWriteError(err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the non-nil fields and returns the updated document.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, changes models.UpdateProfileRequest) (*models.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if changes.Username != nil {
		set["username"] = *changes.Username
	}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.Image != nil {
		set["image"] = *changes.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &user, nil
}

// AddBookmark appends the bookmark in one atomic update that only matches
// when no bookmark with the same (content id, content type) is present.
func (r *UserRepository) AddBookmark(ctx context.Context, userID primitive.ObjectID, bookmark models.Bookmark) error {
	filter := bson.M{
		"_id": userID,
		"bookmarks": bson.M{"$not": bson.M{"$elemMatch": bson.M{
			"content_id":   bookmark.ContentID,
			"content_type": bookmark.ContentType,
		}}},
	}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"bookmarks": bookmark}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.missOrConflict(ctx, userID, ErrBookmarkExists)
	}
	return nil
}

// RemoveBookmark pulls every bookmark with contentID. An empty contentType
// leaves the match unscoped, so a movie and a show sharing an id both go.
func (r *UserRepository) RemoveBookmark(ctx context.Context, userID primitive.ObjectID, contentID int64, contentType models.ContentType) error {
	match := bson.M{"content_id": contentID}
	if contentType != "" {
		match["content_type"] = contentType
	}
	return r.pull(ctx, userID, "bookmarks", match)
}

func (r *UserRepository) AddSearchHistory(ctx context.Context, userID primitive.ObjectID, entry models.SearchHistoryEntry) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{"search_history": entry}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) RemoveSearchHistory(ctx context.Context, userID primitive.ObjectID, entryID int64) error {
	return r.pull(ctx, userID, "search_history", bson.M{"id": entryID})
}

func (r *UserRepository) pull(ctx context.Context, userID primitive.ObjectID, field string, match bson.M) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$pull": bson.M{field: match}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) missOrConflict(ctx context.Context, userID primitive.ObjectID, conflict error) error {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return conflict
}

// mapWriteError turns unique-index violations into the matching sentinel.
func mapWriteError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, emailIndex):
		return fmt.Errorf("%w: %v", ErrEmailTaken, err)
	case strings.Contains(msg, usernameIndex):
		return fmt.Errorf("%w: %v", ErrUsernameTaken, err)
	}
	return err
}
