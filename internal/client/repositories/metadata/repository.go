// Package metadata stores small named values in the client's local
// database. The session store keeps the signed-in user here.
package metadata

import "context"

// Repository is a durable key/value table. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
