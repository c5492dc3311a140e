package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/domain/repository"
)

// MerchantUseCase manages merchant profiles and catalogs.
type MerchantUseCase struct {
	merchants repository.MerchantRepository
	products  repository.ProductRepository
}

// NewMerchantUseCase constructs MerchantUseCase.
func NewMerchantUseCase(merchants repository.MerchantRepository, products repository.ProductRepository) *MerchantUseCase {
	return &MerchantUseCase{merchants: merchants, products: products}
}

// Open creates the merchant profile of userID. A user owns at most one.
func (u *MerchantUseCase) Open(ctx context.Context, userID int64, name, channel string) (*model.Merchant, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	phone, err := NormalizePhone(channel)
	if err != nil {
		return nil, err
	}
	return u.merchants.Create(ctx, userID, name, phone)
}

// Profile returns the merchant owned by userID.
func (u *MerchantUseCase) Profile(ctx context.Context, userID int64) (*model.Merchant, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	return u.merchants.GetByOwner(ctx, userID)
}

// AddProduct adds a product to the caller's catalog. The price is rounded
// to cents before it is checked. A nil stock is untracked.
func (u *MerchantUseCase) AddProduct(ctx context.Context, userID int64, name string, price decimal.Decimal, stock *int) (*model.Product, error) {
	merchant, err := u.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	price, ok := model.NormalizePrice(price)
	if !ok {
		return nil, domainErrors.ErrInvalidPrice
	}
	if stock != nil && (*stock < 0 || *stock > model.MaxStock) {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.products.Create(ctx, model.Product{
		MerchantID: merchant.ID,
		Name:       name,
		Price:      price,
		Stock:      stock,
	})
}

// Catalog lists the products of a merchant.
func (u *MerchantUseCase) Catalog(ctx context.Context, merchantID int64) ([]model.Product, error) {
	return u.products.ListByMerchant(ctx, merchantID)
}
