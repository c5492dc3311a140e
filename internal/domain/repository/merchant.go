package repository

import (
	"context"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

// MerchantRepository manages merchant profiles.
type MerchantRepository interface {
	Create(ctx context.Context, ownerID int64, name, channel string) (*model.Merchant, error)
	GetByOwner(ctx context.Context, ownerID int64) (*model.Merchant, error)
}

// ProductRepository manages merchant catalogs.
type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]model.Product, error)
}
