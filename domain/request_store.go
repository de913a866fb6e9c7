package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

type GuideRequestStore interface {
	GetAll(ctx context.Context) ([]*GuideRequest, error)
	// GetByEmail returns (nil, nil) when the email has no pending request.
	GetByEmail(ctx context.Context, email string) (*GuideRequest, error)
	Insert(ctx context.Context, request *GuideRequest) (*mongo.InsertOneResult, error)
}
