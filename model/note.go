package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Title      string             `bson:"title" json:"title" binding:"required"`
	Content    string             `bson:"content" json:"content" binding:"required"`
	Tags       TagList            `bson:"tags" json:"tags"`
	IsFavorite bool               `bson:"is_favorite" json:"is_favorite"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
