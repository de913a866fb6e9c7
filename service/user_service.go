package application

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasfia236/TravelTourismServer/domain"
	errs "github.com/tasfia236/TravelTourismServer/errors"
)

type UserService struct {
	store  domain.UserStore
	tracer trace.Tracer
}

func NewUserService(store domain.UserStore, tracer trace.Tracer) *UserService {
	return &UserService{
		store:  store,
		tracer: tracer,
	}
}

func (service *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetByEmail")
	defer span.End()

	return service.store.GetByEmail(ctx, email)
}

func (service *UserService) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.FindByEmail")
	defer span.End()

	return service.store.FindByEmail(ctx, email)
}

func (service *UserService) FindByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.FindByRole")
	defer span.End()

	return service.store.FindByRole(ctx, role)
}

// Create inserts the user unless a record with the same email already
// exists, making sign-in idempotent for returning users.
func (service *UserService) Create(ctx context.Context, user *domain.User) (*mongo.InsertOneResult, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.Create")
	defer span.End()

	existing, err := service.store.GetByEmail(ctx, user.Email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf(errs.UserExistsError)
	}

	if user.Role == "" {
		user.Role = domain.RoleTourist
	}
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		user.Password = string(hash)
	}

	return service.store.Insert(ctx, user)
}

// UpdateProfile builds a $set from the fields present in the patch and
// upserts it, so an unknown id creates the profile instead of failing.
func (service *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update *domain.ProfileUpdate) (*mongo.UpdateResult, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.UpdateProfile")
	defer span.End()

	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.NewPass != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.NewPass), bcrypt.DefaultCost)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		fields["password"] = string(hash)
	}

	return service.store.UpsertProfile(ctx, id, fields)
}

func (service *UserService) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (*mongo.UpdateResult, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.SetRole")
	defer span.End()

	return service.store.SetRole(ctx, id, role)
}

func (service *UserService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.Delete")
	defer span.End()

	return service.store.Delete(ctx, id)
}
