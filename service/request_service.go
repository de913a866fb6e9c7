package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
	errs "github.com/tasfia236/TravelTourismServer/errors"
)

type GuideRequestService struct {
	store  domain.GuideRequestStore
	cache  domain.RequestCache
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewGuideRequestService(store domain.GuideRequestStore, cache domain.RequestCache, tracer trace.Tracer, logger *logrus.Logger) *GuideRequestService {
	return &GuideRequestService{
		store:  store,
		cache:  cache,
		tracer: tracer,
		logger: logger,
	}
}

func (service *GuideRequestService) GetAll(ctx context.Context) ([]*domain.GuideRequest, error) {
	ctx, span := service.tracer.Start(ctx, "GuideRequestService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

// Submit records a tour-guide application, at most one per email. The
// cache answers the common repeat case fast; the requests collection is
// the source of truth, so a cache error or a cold cache never admits a
// duplicate.
func (service *GuideRequestService) Submit(ctx context.Context, request *domain.GuideRequest) (*mongo.InsertOneResult, error) {
	ctx, span := service.tracer.Start(ctx, "GuideRequestService.Submit")
	defer span.End()

	if request.Email == "" {
		return nil, fmt.Errorf(errs.InvalidRequestFormatError)
	}

	seen, err := service.cache.Has(ctx, request.Email)
	if err != nil {
		service.logger.WithError(err).Warn("request cache unavailable, checking store")
		seen = false
	}
	if seen {
		return nil, fmt.Errorf(errs.DuplicateRequestError)
	}

	existing, err := service.store.GetByEmail(ctx, request.Email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if existing != nil {
		if err := service.cache.Add(ctx, request.Email); err != nil {
			service.logger.WithError(err).Warn("could not backfill request cache")
		}
		return nil, fmt.Errorf(errs.DuplicateRequestError)
	}

	result, err := service.store.Insert(ctx, request)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := service.cache.Add(ctx, request.Email); err != nil {
		service.logger.WithError(err).Warn("could not populate request cache")
	}

	return result, nil
}
