package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tasfia236/TravelTourismServer/domain"
)

// RequestRedisCache remembers emails with a submitted guide request so
// repeat submissions can be rejected without a collection read. Misses and
// errors fall back to the requests collection.
type RequestRedisCache struct {
	client *redis.Client
	tracer trace.Tracer
}

func NewRequestRedisCache(client *redis.Client, tracer trace.Tracer) domain.RequestCache {
	return &RequestRedisCache{
		client: client,
		tracer: tracer,
	}
}

func (cache *RequestRedisCache) Has(ctx context.Context, email string) (bool, error) {
	_, span := cache.tracer.Start(ctx, "RequestRedisCache.Has")
	defer span.End()

	err := cache.client.Get(requestKey(email)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		span.SetStatus(codes.Error, "Error getting cached value")
		return false, err
	}
	return true, nil
}

func (cache *RequestRedisCache) Add(ctx context.Context, email string) error {
	_, span := cache.tracer.Start(ctx, "RequestRedisCache.Add")
	defer span.End()

	result := cache.client.Set(requestKey(email), "1", 0)
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error posting cached value")
		return result.Err()
	}
	return nil
}

func requestKey(email string) string {
	return fmt.Sprintf("guide_request:%s", email)
}
