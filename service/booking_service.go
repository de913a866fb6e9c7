package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
	"github.com/tasfia236/TravelTourismServer/utils"
)

type BookingService struct {
	store  domain.BookingStore
	mailer *utils.Mailer
	tracer trace.Tracer
	logger *logrus.Logger
}

// NewBookingService accepts a nil mailer; status decisions then skip the
// notification mail.
func NewBookingService(store domain.BookingStore, mailer *utils.Mailer, tracer trace.Tracer, logger *logrus.Logger) *BookingService {
	return &BookingService{
		store:  store,
		mailer: mailer,
		tracer: tracer,
		logger: logger,
	}
}

func (service *BookingService) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *BookingService) FindByGuideEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.FindByGuideEmail")
	defer span.End()

	return service.store.FindByGuideEmail(ctx, email)
}

func (service *BookingService) FindByTouristEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.FindByTouristEmail")
	defer span.End()

	return service.store.FindByTouristEmail(ctx, email)
}

func (service *BookingService) Create(ctx context.Context, booking *domain.Booking) (*mongo.InsertOneResult, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Create")
	defer span.End()

	if booking.Status == "" {
		booking.Status = domain.BookingPending
	}

	return service.store.Insert(ctx, booking)
}

// SetStatus overwrites the booking status unconditionally: there is no
// transition validation, an already rejected booking can be re-accepted.
func (service *BookingService) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*mongo.UpdateResult, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.SetStatus")
	defer span.End()

	result, err := service.store.SetStatus(ctx, id, status)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if service.mailer != nil && result.MatchedCount > 0 {
		service.notify(ctx, id, status)
	}

	return result, nil
}

func (service *BookingService) notify(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) {
	booking, err := service.store.Get(ctx, id)
	if err != nil || booking == nil || booking.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your tour booking was %s", status)
	body := fmt.Sprintf("Your booking for %s has been %s.", booking.TourName, status)
	if err := service.mailer.Send(booking.Email, subject, body); err != nil {
		service.logger.WithError(err).Warn("booking notification mail failed")
	}
}
