package checkout

import (
	"context"

	"risorte/internal/domain"
)

// CartSession is the in-progress order state owned by the cart module.
type CartSession interface {
	Lines() []domain.CartLine
	Mode() domain.FulfillmentMode
	IsEmpty() bool
	Clear()
}

// ProfileLoader reads the persisted customer profile.
type ProfileLoader interface {
	Load(ctx context.Context) (domain.Profile, error)
}

// ConfigSource provides the establishment config from the catalog.
type ConfigSource interface {
	StoreConfig() domain.StoreConfig
}
