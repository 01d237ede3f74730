package repository

import (
	"context"

	"notemark/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client, dbName string) *UsersRepo {
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection("users"),
	}
}

// AddUser inserts a new user. The unique username index turns concurrent
// duplicate registrations into ErrDuplicateUsername.
func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) error {
	_, err := r.MongoCollection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	return err
}

// FindUserByUsername returns the user or ErrNotFound.
func (r *UsersRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUser returns the user with the given id or ErrNotFound.
func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
