package repository

import (
	"context"
	"time"

	"notemark/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookmarksRepo struct {
	MongoCollection *mongo.Collection
}

func GetBookmarksRepo(client *mongo.Client, dbName string) *BookmarksRepo {
	return &BookmarksRepo{
		MongoCollection: client.Database(dbName).Collection("bookmarks"),
	}
}

// CreateBookmark inserts the bookmark and fills in its generated id.
func (r *BookmarksRepo) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	result, err := r.MongoCollection.InsertOne(ctx, bookmark)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		bookmark.ID = id
	}
	return nil
}

// FindBookmarks lists the owner's bookmarks matching the query, newest first.
// Free-text search covers the URL as well as title and description.
func (r *BookmarksRepo) FindBookmarks(ctx context.Context, query ListQuery) ([]*model.Bookmark, error) {
	filter := query.Filter("title", "description", "url")

	cursor, err := r.MongoCollection.Find(ctx, filter, query.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookmarks := []*model.Bookmark{}
	if err := cursor.All(ctx, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// GetBookmark retrieves one bookmark scoped to its owner.
func (r *BookmarksRepo) GetBookmark(ctx context.Context, id primitive.ObjectID, userID string) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": id, "user_id": userID}).Decode(&bookmark)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bookmark, nil
}

// UpdateBookmark applies the given field set to an owned bookmark.
func (r *BookmarksRepo) UpdateBookmark(ctx context.Context, id primitive.ObjectID, userID string, fields bson.M) error {
	fields["updated_at"] = time.Now()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBookmark removes an owned bookmark.
func (r *BookmarksRepo) DeleteBookmark(ctx context.Context, id primitive.ObjectID, userID string) error {
	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountUserBookmarks counts all bookmarks for a user.
func (r *BookmarksRepo) CountUserBookmarks(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	return int(count), err
}

// CountFavoriteBookmarks counts the user's favorited bookmarks.
func (r *BookmarksRepo) CountFavoriteBookmarks(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "is_favorite": true})
	return int(count), err
}

// CountBookmarksByTag returns per-tag bookmark counts for a user.
func (r *BookmarksRepo) CountBookmarksByTag(ctx context.Context, userID string) (map[string]int, error) {
	return countByTag(ctx, r.MongoCollection, userID)
}
