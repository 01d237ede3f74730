package repository

import (
	"context"
	"time"

	"notemark/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, dbName string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

// CreateNote inserts the note and fills in its generated id.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	result, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		note.ID = id
	}
	return nil
}

// FindNotes lists the owner's notes matching the query, newest first.
func (r *NotesRepo) FindNotes(ctx context.Context, query ListQuery) ([]*model.Note, error) {
	filter := query.Filter("title", "content")

	cursor, err := r.MongoCollection.Find(ctx, filter, query.FindOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves one note scoped to its owner.
func (r *NotesRepo) GetNote(ctx context.Context, id primitive.ObjectID, userID string) (*model.Note, error) {
	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": id, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies the given field set to an owned note.
func (r *NotesRepo) UpdateNote(ctx context.Context, id primitive.ObjectID, userID string, fields bson.M) error {
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

// DeleteNote removes an owned note.
func (r *NotesRepo) DeleteNote(ctx context.Context, id primitive.ObjectID, userID string) error {
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

// CountUserNotes counts all notes for a user.
func (r *NotesRepo) CountUserNotes(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	return int(count), err
}

// CountFavoriteNotes counts the user's favorited notes.
func (r *NotesRepo) CountFavoriteNotes(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID, "is_favorite": true})
	return int(count), err
}

// CountNotesByTag returns per-tag note counts for a user.
func (r *NotesRepo) CountNotesByTag(ctx context.Context, userID string) (map[string]int, error) {
	return countByTag(ctx, r.MongoCollection, userID)
}

// countByTag runs the shared unwind-and-count aggregation over a collection's
// tags field.
func countByTag(ctx context.Context, coll *mongo.Collection, userID string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{"_id": "$tags", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Tag   string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Tag] = row.Count
	}
	return counts, nil
}
