package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
)

type SpotService struct {
	store  domain.SpotStore
	tracer trace.Tracer
}

func NewSpotService(store domain.SpotStore, tracer trace.Tracer) *SpotService {
	return &SpotService{
		store:  store,
		tracer: tracer,
	}
}

func (service *SpotService) GetAll(ctx context.Context) ([]*domain.Spot, error) {
	ctx, span := service.tracer.Start(ctx, "SpotService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *SpotService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Spot, error) {
	ctx, span := service.tracer.Start(ctx, "SpotService.Get")
	defer span.End()

	return service.store.Get(ctx, id)
}

func (service *SpotService) Create(ctx context.Context, spot *domain.Spot) (*mongo.InsertOneResult, error) {
	ctx, span := service.tracer.Start(ctx, "SpotService.Create")
	defer span.End()

	return service.store.Insert(ctx, spot)
}

func (service *SpotService) Wishlisted(ctx context.Context, email string) ([]*domain.Spot, error) {
	ctx, span := service.tracer.Start(ctx, "SpotService.Wishlisted")
	defer span.End()

	return service.store.FindByWishEmail(ctx, email)
}

// ToggleWish mutates the wishlist set and then recomputes the derived
// wishlist flag from the stored set. The two writes are sequential, not
// transactional: a concurrent toggle on the same spot can leave the flag
// stale until the next toggle corrects it.
func (service *SpotService) ToggleWish(ctx context.Context, id primitive.ObjectID, update *domain.WishUpdate) (*mongo.UpdateResult, error) {
	ctx, span := service.tracer.Start(ctx, "SpotService.ToggleWish")
	defer span.End()

	var result *mongo.UpdateResult
	var err error
	if update.Wish == 1 {
		result, err = service.store.AddWishEmail(ctx, id, update.WishEmail)
	} else {
		result, err = service.store.RemoveWishEmail(ctx, id, update.WishEmail)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	spot, err := service.store.Get(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}
	if spot == nil {
		return result, nil
	}

	flag := 0
	if len(spot.WishEmail) > 0 {
		flag = 1
	}
	if _, err := service.store.SetWishlistFlag(ctx, id, flag); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	return result, nil
}

func (service *SpotService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, span := service.tracer.Start(ctx, "SpotService.Delete")
	defer span.End()

	return service.store.Delete(ctx, id)
}
