package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/authorization"
	"github.com/tasfia236/TravelTourismServer/domain"
	application "github.com/tasfia236/TravelTourismServer/service"
)

// testEnv wires the full route table against in-memory stores.
type testEnv struct {
	router   *mux.Router
	users    *memoryUserStore
	spots    *memorySpotStore
	stories  *memoryStoryStore
	bookings *memoryBookingStore
	requests *memoryRequestStore
	cache    *memoryRequestCache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	tracer := trace.NewNoopTracerProvider().Tracer("test")

	env := &testEnv{
		router:   mux.NewRouter(),
		users:    newMemoryUserStore(),
		spots:    newMemorySpotStore(),
		stories:  newMemoryStoryStore(),
		bookings: newMemoryBookingStore(),
		requests: newMemoryRequestStore(),
		cache:    newMemoryRequestCache(),
	}

	enforcer, err := authorization.NewEnforcer("../rbac_model.conf", "../policy.csv")
	require.NoError(t, err)
	gate := authorization.NewAccessControl(env.users, enforcer, tracer, logger)

	NewAuthHandler(tracer, logger).Init(env.router)
	NewUserHandler(application.NewUserService(env.users, tracer), tracer, logger).Init(env.router, gate)
	NewSpotHandler(application.NewSpotService(env.spots, tracer), tracer, logger).Init(env.router)
	NewStoryHandler(application.NewStoryService(env.stories, tracer), tracer, logger).Init(env.router)
	NewBookingHandler(application.NewBookingService(env.bookings, nil, tracer, logger), tracer, logger).Init(env.router, gate)
	NewRequestHandler(application.NewGuideRequestService(env.requests, env.cache, tracer, logger), tracer, logger).Init(env.router)

	return env
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

func bearer(t *testing.T, email string) string {
	t.Helper()

	token, err := authorization.GenerateJWT(&domain.Claims{
		Email:     email,
		ExpiresAt: time.Now().Add(authorization.TokenTTL),
	})
	require.NoError(t, err)
	return "Bearer " + token
}

// In-memory stores backing the handler tests.

type memoryUserStore struct {
	users map[string]*domain.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]*domain.User{}}
}

func (store *memoryUserStore) GetAll(context.Context) ([]*domain.User, error) {
	users := []*domain.User{}
	for _, user := range store.users {
		users = append(users, user)
	}
	return users, nil
}

func (store *memoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return store.users[email], nil
}

func (store *memoryUserStore) FindByEmail(_ context.Context, email string) ([]*domain.User, error) {
	if user := store.users[email]; user != nil {
		return []*domain.User{user}, nil
	}
	return []*domain.User{}, nil
}

func (store *memoryUserStore) FindByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	users := []*domain.User{}
	for _, user := range store.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (store *memoryUserStore) Insert(_ context.Context, user *domain.User) (*mongo.InsertOneResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	store.users[user.Email] = user
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (store *memoryUserStore) UpsertProfile(_ context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	for _, user := range store.users {
		if user.ID != id {
			continue
		}
		applyProfileFields(user, fields)
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	user := &domain.User{ID: id}
	applyProfileFields(user, fields)
	store.users[user.Email] = user
	return &mongo.UpdateResult{UpsertedID: id}, nil
}

func applyProfileFields(user *domain.User, fields bson.M) {
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if email, ok := fields["email"].(string); ok {
		user.Email = email
	}
	if image, ok := fields["image"].(string); ok {
		user.Image = image
	}
	if password, ok := fields["password"].(string); ok {
		user.Password = password
	}
}

func (store *memoryUserStore) SetRole(_ context.Context, id primitive.ObjectID, role domain.Role) (*mongo.UpdateResult, error) {
	for _, user := range store.users {
		if user.ID == id {
			user.Role = role
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &mongo.UpdateResult{}, nil
}

func (store *memoryUserStore) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for email, user := range store.users {
		if user.ID == id {
			delete(store.users, email)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

type memorySpotStore struct {
	spots map[primitive.ObjectID]*domain.Spot
}

func newMemorySpotStore() *memorySpotStore {
	return &memorySpotStore{spots: map[primitive.ObjectID]*domain.Spot{}}
}

func (store *memorySpotStore) GetAll(context.Context) ([]*domain.Spot, error) {
	spots := []*domain.Spot{}
	for _, spot := range store.spots {
		spots = append(spots, spot)
	}
	return spots, nil
}

func (store *memorySpotStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Spot, error) {
	return store.spots[id], nil
}

func (store *memorySpotStore) Insert(_ context.Context, spot *domain.Spot) (*mongo.InsertOneResult, error) {
	if spot.ID.IsZero() {
		spot.ID = primitive.NewObjectID()
	}
	if spot.WishEmail == nil {
		spot.WishEmail = []string{}
	}
	store.spots[spot.ID] = spot
	return &mongo.InsertOneResult{InsertedID: spot.ID}, nil
}

func (store *memorySpotStore) FindByWishEmail(_ context.Context, email string) ([]*domain.Spot, error) {
	spots := []*domain.Spot{}
	for _, spot := range store.spots {
		for _, wisher := range spot.WishEmail {
			if wisher == email {
				spots = append(spots, spot)
				break
			}
		}
	}
	return spots, nil
}

func (store *memorySpotStore) AddWishEmail(_ context.Context, id primitive.ObjectID, email string) (*mongo.UpdateResult, error) {
	spot := store.spots[id]
	if spot == nil {
		return &mongo.UpdateResult{}, nil
	}
	for _, wisher := range spot.WishEmail {
		if wisher == email {
			return &mongo.UpdateResult{MatchedCount: 1}, nil
		}
	}
	spot.WishEmail = append(spot.WishEmail, email)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (store *memorySpotStore) RemoveWishEmail(_ context.Context, id primitive.ObjectID, email string) (*mongo.UpdateResult, error) {
	spot := store.spots[id]
	if spot == nil {
		return &mongo.UpdateResult{}, nil
	}
	kept := []string{}
	removed := false
	for _, wisher := range spot.WishEmail {
		if wisher == email {
			removed = true
			continue
		}
		kept = append(kept, wisher)
	}
	spot.WishEmail = kept
	result := &mongo.UpdateResult{MatchedCount: 1}
	if removed {
		result.ModifiedCount = 1
	}
	return result, nil
}

func (store *memorySpotStore) SetWishlistFlag(_ context.Context, id primitive.ObjectID, flag int) (*mongo.UpdateResult, error) {
	spot := store.spots[id]
	if spot == nil {
		return &mongo.UpdateResult{}, nil
	}
	spot.Wishlist = flag
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (store *memorySpotStore) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if store.spots[id] == nil {
		return &mongo.DeleteResult{}, nil
	}
	delete(store.spots, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type memoryStoryStore struct {
	stories map[primitive.ObjectID]*domain.Story
}

func newMemoryStoryStore() *memoryStoryStore {
	return &memoryStoryStore{stories: map[primitive.ObjectID]*domain.Story{}}
}

func (store *memoryStoryStore) GetAll(context.Context) ([]*domain.Story, error) {
	stories := []*domain.Story{}
	for _, story := range store.stories {
		stories = append(stories, story)
	}
	return stories, nil
}

func (store *memoryStoryStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Story, error) {
	return store.stories[id], nil
}

type memoryBookingStore struct {
	bookings map[primitive.ObjectID]*domain.Booking
}

func newMemoryBookingStore() *memoryBookingStore {
	return &memoryBookingStore{bookings: map[primitive.ObjectID]*domain.Booking{}}
}

func (store *memoryBookingStore) GetAll(context.Context) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	for _, booking := range store.bookings {
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (store *memoryBookingStore) Get(_ context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	return store.bookings[id], nil
}

func (store *memoryBookingStore) FindByGuideEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	for _, booking := range store.bookings {
		if booking.GuideEmail == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (store *memoryBookingStore) FindByTouristEmail(_ context.Context, email string) ([]*domain.Booking, error) {
	bookings := []*domain.Booking{}
	for _, booking := range store.bookings {
		if booking.Email == email {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (store *memoryBookingStore) Insert(_ context.Context, booking *domain.Booking) (*mongo.InsertOneResult, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	store.bookings[booking.ID] = booking
	return &mongo.InsertOneResult{InsertedID: booking.ID}, nil
}

func (store *memoryBookingStore) SetStatus(_ context.Context, id primitive.ObjectID, status domain.BookingStatus) (*mongo.UpdateResult, error) {
	booking := store.bookings[id]
	if booking == nil {
		return &mongo.UpdateResult{}, nil
	}
	booking.Status = status
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type memoryRequestStore struct {
	requests map[string]*domain.GuideRequest
}

func newMemoryRequestStore() *memoryRequestStore {
	return &memoryRequestStore{requests: map[string]*domain.GuideRequest{}}
}

func (store *memoryRequestStore) GetAll(context.Context) ([]*domain.GuideRequest, error) {
	requests := []*domain.GuideRequest{}
	for _, request := range store.requests {
		requests = append(requests, request)
	}
	return requests, nil
}

func (store *memoryRequestStore) GetByEmail(_ context.Context, email string) (*domain.GuideRequest, error) {
	return store.requests[email], nil
}

func (store *memoryRequestStore) Insert(_ context.Context, request *domain.GuideRequest) (*mongo.InsertOneResult, error) {
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	store.requests[request.Email] = request
	return &mongo.InsertOneResult{InsertedID: request.ID}, nil
}

type memoryRequestCache struct {
	seen map[string]bool
}

func newMemoryRequestCache() *memoryRequestCache {
	return &memoryRequestCache{seen: map[string]bool{}}
}

func (cache *memoryRequestCache) Has(_ context.Context, email string) (bool, error) {
	return cache.seen[email], nil
}

func (cache *memoryRequestCache) Add(_ context.Context, email string) error {
	cache.seen[email] = true
	return nil
}
