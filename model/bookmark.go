package model

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bookmarkURLPattern accepts absolute http and https URLs only.
var bookmarkURLPattern = regexp.MustCompile(`^https?://\S+$`)

type Bookmark struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	URL         string             `bson:"url" json:"url" binding:"required"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Tags        TagList            `bson:"tags" json:"tags"`
	IsFavorite  bool               `bson:"is_favorite" json:"is_favorite"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ValidBookmarkURL reports whether s is an acceptable bookmark URL.
func ValidBookmarkURL(s string) bool {
	return bookmarkURLPattern.MatchString(s)
}
