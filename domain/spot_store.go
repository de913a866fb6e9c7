package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SpotStore interface {
	GetAll(ctx context.Context) ([]*Spot, error)
	// Get returns (nil, nil) when no spot matches the id.
	Get(ctx context.Context, id primitive.ObjectID) (*Spot, error)
	Insert(ctx context.Context, spot *Spot) (*mongo.InsertOneResult, error)
	FindByWishEmail(ctx context.Context, email string) ([]*Spot, error)
	AddWishEmail(ctx context.Context, id primitive.ObjectID, email string) (*mongo.UpdateResult, error)
	RemoveWishEmail(ctx context.Context, id primitive.ObjectID, email string) (*mongo.UpdateResult, error)
	SetWishlistFlag(ctx context.Context, id primitive.ObjectID, flag int) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}
