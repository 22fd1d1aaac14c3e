package domain

import "context"

type CafeRepository interface {
	// Write paths
	Insert(ctx context.Context, c Cafe) (int64, error)
	UpdatePrice(ctx context.Context, id int64, price *string) error
	Delete(ctx context.Context, id int64) error

	// Read paths
	ListAll(ctx context.Context) ([]Cafe, error)
	ListByName(ctx context.Context) ([]Cafe, error)
	GetByID(ctx context.Context, id int64) (Cafe, error)
	FindByLocation(ctx context.Context, location string) ([]Cafe, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
