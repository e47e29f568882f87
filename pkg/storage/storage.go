package storage

import "context"

// Storage is a string key-value store used to persist the event collection
// snapshot. Implementations must treat a missing key as (value="", found=false)
// rather than an error.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
}
