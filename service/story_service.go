package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
)

// StoryService is read-only: stories are seeded into the collection
// outside this API and only listed from here.
type StoryService struct {
	store  domain.StoryStore
	tracer trace.Tracer
}

func NewStoryService(store domain.StoryStore, tracer trace.Tracer) *StoryService {
	return &StoryService{
		store:  store,
		tracer: tracer,
	}
}

func (service *StoryService) GetAll(ctx context.Context) ([]*domain.Story, error) {
	ctx, span := service.tracer.Start(ctx, "StoryService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *StoryService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Story, error) {
	ctx, span := service.tracer.Start(ctx, "StoryService.Get")
	defer span.End()

	return service.store.Get(ctx, id)
}
