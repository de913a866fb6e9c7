package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoryStore interface {
	GetAll(ctx context.Context) ([]*Story, error)
	// Get returns (nil, nil) when no story matches the id.
	Get(ctx context.Context, id primitive.ObjectID) (*Story, error)
}
