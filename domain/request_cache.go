package domain

import "context"

// RequestCache is a fast path in front of the guide-request collection.
// The collection stays the system of record: a cache miss or a cache error
// always falls through to the store check.
type RequestCache interface {
	Has(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, email string) error
}
