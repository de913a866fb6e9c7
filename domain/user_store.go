package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	GetAll(ctx context.Context) ([]*User, error)
	// GetByEmail returns (nil, nil) when no user matches the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	FindByEmail(ctx context.Context, email string) ([]*User, error)
	FindByRole(ctx context.Context, role Role) ([]*User, error)
	Insert(ctx context.Context, user *User) (*mongo.InsertOneResult, error)
	// UpsertProfile applies a partial $set and creates the document when
	// the id has no match.
	UpsertProfile(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role Role) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}
