package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasfia236/TravelTourismServer/domain"
)

// In-memory stores backing the service tests.

type memoryUserStore struct {
	users       map[string]*domain.User
	upsertedID  primitive.ObjectID
	upsertedSet bson.M
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
	store.upsertedID = id
	store.upsertedSet = fields
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
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
	seen   map[string]bool
	hasErr error
	addErr error
}

func newMemoryRequestCache() *memoryRequestCache {
	return &memoryRequestCache{seen: map[string]bool{}}
}

func (cache *memoryRequestCache) Has(_ context.Context, email string) (bool, error) {
	if cache.hasErr != nil {
		return false, cache.hasErr
	}
	return cache.seen[email], nil
}

func (cache *memoryRequestCache) Add(_ context.Context, email string) error {
	if cache.addErr != nil {
		return cache.addErr
	}
	cache.seen[email] = true
	return nil
}
