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

const spotsCollection = "spots"

type SpotMongoDBStore struct {
	spots  *mongo.Collection
	tracer trace.Tracer
}

func NewSpotMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.SpotStore {
	spots := client.Database(DATABASE).Collection(spotsCollection)
	return &SpotMongoDBStore{
		spots:  spots,
		tracer: tracer,
	}
}

func (store *SpotMongoDBStore) GetAll(ctx context.Context) ([]*domain.Spot, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.GetAll")
	defer span.End()

	return store.filter(ctx, bson.M{})
}

func (store *SpotMongoDBStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Spot, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.Get")
	defer span.End()

	return store.filterOne(ctx, bson.M{"_id": id})
}

func (store *SpotMongoDBStore) Insert(ctx context.Context, spot *domain.Spot) (*mongo.InsertOneResult, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.Insert")
	defer span.End()

	if spot.ID.IsZero() {
		spot.ID = primitive.NewObjectID()
	}
	if spot.WishEmail == nil {
		spot.WishEmail = []string{}
	}

	result, err := store.spots.InsertOne(ctx, spot)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

// FindByWishEmail matches spots whose wishlist set contains the email.
func (store *SpotMongoDBStore) FindByWishEmail(ctx context.Context, email string) ([]*domain.Spot, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.FindByWishEmail")
	defer span.End()

	return store.filter(ctx, bson.M{"wish_email": email})
}

func (store *SpotMongoDBStore) AddWishEmail(ctx context.Context, id primitive.ObjectID, email string) (*mongo.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.AddWishEmail")
	defer span.End()

	result, err := store.spots.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{"wish_email": email}})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (store *SpotMongoDBStore) RemoveWishEmail(ctx context.Context, id primitive.ObjectID, email string) (*mongo.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.RemoveWishEmail")
	defer span.End()

	result, err := store.spots.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"wish_email": email}})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (store *SpotMongoDBStore) SetWishlistFlag(ctx context.Context, id primitive.ObjectID, flag int) (*mongo.UpdateResult, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.SetWishlistFlag")
	defer span.End()

	result, err := store.spots.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"wishlist": flag}})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (store *SpotMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	ctx, span := store.tracer.Start(ctx, "SpotMongoDBStore.Delete")
	defer span.End()

	result, err := store.spots.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return result, nil
}

func (store *SpotMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Spot, error) {
	cursor, err := store.spots.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var spots []*domain.Spot
	for cursor.Next(ctx) {
		var spot domain.Spot
		if err := cursor.Decode(&spot); err != nil {
			return nil, err
		}
		spots = append(spots, &spot)
	}
	return spots, cursor.Err()
}

func (store *SpotMongoDBStore) filterOne(ctx context.Context, filter interface{}) (*domain.Spot, error) {
	result := store.spots.FindOne(ctx, filter)

	var spot domain.Spot
	if err := result.Decode(&spot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		log.Println("Error decoding spot:", err)
		return nil, err
	}

	return &spot, nil
}
