package store

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
)

const booksCollection = "books"

type BookingMongoDBStore struct {
	books  *mongo.Collection
	tracer trace.Tracer
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	books := client.Database(DATABASE).Collection(booksCollection)
	return &BookingMongoDBStore{
		books:  books,
		tracer: tracer,
	}
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *BookingMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Get")
	defer span.End()

	result := store.books.FindOne(ctx, bson.M{"_id": id})

	var booking domain.Booking
	if err := result.Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding booking:", err)
		return nil, err
	}

	return &booking, nil
}

func (store *BookingMongoDBStore) FindByGuideEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.FindByGuideEmail")
	defer span.End()

	return store.filter(ctx, bson.M{"guide_email": email})
}

func (store *BookingMongoDBStore) FindByTouristEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.FindByTouristEmail")
	defer span.End()

	return store.filter(ctx, bson.M{"email": email})
}

func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*mongo.InsertOneResult, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.Insert")
	defer span.End()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	result, err := store.books.InsertOne(ctx, booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (store *BookingMongoDBStore) SetStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*mongo.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "BookingMongoDBStore.SetStatus")
	defer span.End()

	result, err := store.books.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (store *BookingMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Booking, error) {
	cursor, err := store.books.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []*domain.Booking
	for cursor.Next(ctx) {
		var booking domain.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, &booking)
	}
	return bookings, cursor.Err()
}
