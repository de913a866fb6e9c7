package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
)

const requestsCollection = "requests"

type RequestMongoDBStore struct {
	requests *mongo.Collection
	tracer   trace.Tracer
}

func NewRequestMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.GuideRequestStore {
	requests := client.Database(DATABASE).Collection(requestsCollection)
	return &RequestMongoDBStore{
		requests: requests,
		tracer:   tracer,
	}
}

func (store *RequestMongoDBStore) GetAll(ctx context.Context) ([]*domain.GuideRequest, error) {
	ctx, span := store.tracer.Start(ctx, "RequestMongoDBStore.GetAll")
	defer span.End()

	cursor, err := store.requests.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*domain.GuideRequest
	for cursor.Next(ctx) {
		var request domain.GuideRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, err
		}
		requests = append(requests, &request)
	}
	return requests, cursor.Err()
}

func (store *RequestMongoDBStore) GetByEmail(ctx context.Context, email string) (*domain.GuideRequest, error) {
	ctx, span := store.tracer.Start(ctx, "RequestMongoDBStore.GetByEmail")
	defer span.End()

	result := store.requests.FindOne(ctx, bson.M{"email": email})

	var request domain.GuideRequest
	if err := result.Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (store *RequestMongoDBStore) Insert(ctx context.Context, request *domain.GuideRequest) (*mongo.InsertOneResult, error) {
	ctx, span := store.tracer.Start(ctx, "RequestMongoDBStore.Insert")
	defer span.End()

	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}

	result, err := store.requests.InsertOne(ctx, request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}
