package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	// User information
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`

	// Embedded collections, owned exclusively by this user
	SearchHistory []SearchHistoryEntry `bson:"search_history" json:"searchHistory"`
	Bookmarks     []Bookmark           `bson:"bookmarks" json:"bookmarks"`
}

// Public returns a copy safe to send to clients: the password hash is blanked
// and nil collections are rendered as empty arrays.
func (u User) Public() User {
	u.Password = ""
	if u.SearchHistory == nil {
		u.SearchHistory = []SearchHistoryEntry{}
	}
	if u.Bookmarks == nil {
		u.Bookmarks = []Bookmark{}
	}
	return u
}

// Bookmark is unique per (ContentID, ContentType) within one user.
type Bookmark struct {
	ContentID   int64       `bson:"content_id" json:"id"`
	ContentType ContentType `bson:"content_type" json:"type"`
	Title       string      `bson:"title" json:"title"`
	PosterPath  string      `bson:"poster_path" json:"image"`
	AddedAt     time.Time   `bson:"added_at" json:"addedAt"`
}

type SearchHistoryEntry struct {
	ID         int64      `bson:"id" json:"id"`
	Image      string     `bson:"image" json:"image"`
	Title      string     `bson:"title" json:"title"`
	SearchType SearchType `bson:"search_type" json:"searchType"`
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
}
