package profile

import "context"

// Repository persists the single serialized profile record.
type Repository interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Delete(ctx context.Context) error
}
