package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
)

const storiesCollection = "stories"

type StoryMongoDBStore struct {
	stories *mongo.Collection
	tracer  trace.Tracer
}

func NewStoryMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.StoryStore {
	stories := client.Database(DATABASE).Collection(storiesCollection)
	return &StoryMongoDBStore{
		stories: stories,
		tracer:  tracer,
	}
}

func (store *StoryMongoDBStore) GetAll(ctx context.Context) ([]*domain.Story, error) {
	ctx, span := store.tracer.Start(ctx, "StoryMongoDBStore.GetAll")
	defer span.End()

	cursor, err := store.stories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stories []*domain.Story
	for cursor.Next(ctx) {
		var story domain.Story
		if err := cursor.Decode(&story); err != nil {
			return nil, err
		}
		stories = append(stories, &story)
	}
	return stories, cursor.Err()
}

func (store *StoryMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	ctx, span := store.tracer.Start(ctx, "StoryMongoDBStore.Get")
	defer span.End()

	result := store.stories.FindOne(ctx, bson.M{"_id": id})

	var story domain.Story
	if err := result.Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &story, nil
}
