package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingStore interface {
	GetAll(ctx context.Context) ([]*Booking, error)
	// Get returns (nil, nil) when no booking matches the id.
	Get(ctx context.Context, id primitive.ObjectID) (*Booking, error)
	FindByGuideEmail(ctx context.Context, email string) ([]*Booking, error)
	FindByTouristEmail(ctx context.Context, email string) ([]*Booking, error)
	Insert(ctx context.Context, booking *Booking) (*mongo.InsertOneResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status BookingStatus) (*mongo.UpdateResult, error)
}
