package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// VerificationFacade issues and confirms phone verification codes.
type VerificationFacade interface {
	RequestVerification(ctx context.Context, userID int64, phone string) (*model.VerificationRequest, error)
	ConfirmVerification(ctx context.Context, userID int64, code string) (*model.VerificationResult, error)
}

// CartFacade covers cart mutation and order handoff.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) ([]model.CartLine, []model.MerchantGroup, error)
	AddToCart(ctx context.Context, userID, productID int64, quantity int) (*model.CartLine, error)
	UpdateCartLine(ctx context.Context, userID, lineID int64, quantity int) (*model.CartLine, error)
	RemoveCartLine(ctx context.Context, userID, lineID int64) error
	ComposeHandoff(ctx context.Context, userID, merchantID int64, excluded []int64, contact model.ContactInfo) (*model.Handoff, error)
}

// MerchantFacade covers merchant profiles and catalogs.
type MerchantFacade interface {
	OpenMerchant(ctx context.Context, userID int64, name, channel string) (*model.Merchant, error)
	AddProduct(ctx context.Context, userID int64, name string, price decimal.Decimal, stock *int) (*model.Product, error)
	MerchantProducts(ctx context.Context, userID int64) ([]model.Product, error)
	Catalog(ctx context.Context, merchantID int64) ([]model.Product, error)
}

// OrderFacade encapsulates merchant order operations exposed via HTTP.
type OrderFacade interface {
	RecordOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error)
	MerchantOrders(ctx context.Context, userID int64) ([]model.Order, error)
	MerchantOrder(ctx context.Context, userID, orderID int64) (*model.Order, error)
	OrderHistory(ctx context.Context, userID, orderID int64) ([]model.StatusChange, error)
	TransitionOrder(ctx context.Context, userID, orderID int64, status model.OrderStatus) (*model.Order, bool, error)
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	VerificationFacade
	CartFacade
	MerchantFacade
	OrderFacade
}
