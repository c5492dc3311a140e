package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

// VerificationFacadeStub provides controllable behaviour for verification endpoints.
type VerificationFacadeStub struct {
	RequestFn func(context.Context, int64, string) (*model.VerificationRequest, error)
	ConfirmFn func(context.Context, int64, string) (*model.VerificationResult, error)
}

// RequestVerification delegates to override or reports push delivery.
func (s VerificationFacadeStub) RequestVerification(ctx context.Context, userID int64, phone string) (*model.VerificationRequest, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, userID, phone)
	}
	return &model.VerificationRequest{Method: model.DeliveryAPI, ExpiresAt: time.Unix(900, 0).UTC()}, nil
}

// ConfirmVerification delegates to override or reports success.
func (s VerificationFacadeStub) ConfirmVerification(ctx context.Context, userID int64, code string) (*model.VerificationResult, error) {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, userID, code)
	}
	return &model.VerificationResult{Verified: true, Outcome: model.OutcomeVerified}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	CartFn    func(context.Context, int64) ([]model.CartLine, []model.MerchantGroup, error)
	AddFn     func(context.Context, int64, int64, int) (*model.CartLine, error)
	UpdateFn  func(context.Context, int64, int64, int) (*model.CartLine, error)
	RemoveFn  func(context.Context, int64, int64) error
	HandoffFn func(context.Context, int64, int64, []int64, model.ContactInfo) (*model.Handoff, error)
}

// Cart returns configured lines or an empty cart.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) ([]model.CartLine, []model.MerchantGroup, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return nil, nil, nil
}

// AddToCart returns the created line.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID, quantity)
	}
	return &model.CartLine{ID: 1, UserID: userID, ProductID: productID, Quantity: quantity, UnitPrice: decimal.NewFromInt(1)}, nil
}

// UpdateCartLine returns the updated line.
func (s CartFacadeStub) UpdateCartLine(ctx context.Context, userID, lineID int64, quantity int) (*model.CartLine, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, lineID, quantity)
	}
	return &model.CartLine{ID: lineID, UserID: userID, Quantity: quantity, UnitPrice: decimal.NewFromInt(1)}, nil
}

// RemoveCartLine executes configured removal handler.
func (s CartFacadeStub) RemoveCartLine(ctx context.Context, userID, lineID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, lineID)
	}
	return nil
}

// ComposeHandoff returns configured handoff or a fixed one.
func (s CartFacadeStub) ComposeHandoff(ctx context.Context, userID, merchantID int64, excluded []int64, contact model.ContactInfo) (*model.Handoff, error) {
	if s.HandoffFn != nil {
		return s.HandoffFn(ctx, userID, merchantID, excluded, contact)
	}
	return &model.Handoff{MerchantID: merchantID, MerchantName: "Shop", Total: decimal.NewFromInt(1), Message: "hi", DeepLink: "https://wa.me/1?text=hi"}, nil
}

// MerchantFacadeStub simulates merchant operations.
type MerchantFacadeStub struct {
	OpenFn     func(context.Context, int64, string, string) (*model.Merchant, error)
	AddFn      func(context.Context, int64, string, decimal.Decimal, *int) (*model.Product, error)
	ProductsFn func(context.Context, int64) ([]model.Product, error)
	CatalogFn  func(context.Context, int64) ([]model.Product, error)
}

// OpenMerchant returns the created merchant.
func (s MerchantFacadeStub) OpenMerchant(ctx context.Context, userID int64, name, channel string) (*model.Merchant, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx, userID, name, channel)
	}
	return &model.Merchant{ID: 1, OwnerID: userID, Name: name, Channel: channel}, nil
}

// AddProduct returns the created product.
func (s MerchantFacadeStub) AddProduct(ctx context.Context, userID int64, name string, price decimal.Decimal, stock *int) (*model.Product, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, name, price, stock)
	}
	return &model.Product{ID: 1, MerchantID: 1, Name: name, Price: price, Stock: stock}, nil
}

// MerchantProducts returns configured products.
func (s MerchantFacadeStub) MerchantProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, userID)
	}
	return []model.Product{{ID: 1, MerchantID: 1, Name: "Tea", Price: decimal.NewFromInt(2)}}, nil
}

// Catalog returns configured catalog.
func (s MerchantFacadeStub) Catalog(ctx context.Context, merchantID int64) ([]model.Product, error) {
	if s.CatalogFn != nil {
		return s.CatalogFn(ctx, merchantID)
	}
	return []model.Product{{ID: 1, MerchantID: merchantID, Name: "Tea", Price: decimal.NewFromInt(2)}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	RecordFn     func(context.Context, int64, model.OrderDraft) (*model.Order, error)
	OrdersFn     func(context.Context, int64) ([]model.Order, error)
	OrderFn      func(context.Context, int64, int64) (*model.Order, error)
	HistoryFn    func(context.Context, int64, int64) ([]model.StatusChange, error)
	TransitionFn func(context.Context, int64, int64, model.OrderStatus) (*model.Order, bool, error)
}

// RecordOrder returns a pending order.
func (s OrderFacadeStub) RecordOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, userID, draft)
	}
	return &model.Order{ID: 1, MerchantID: 1, Status: model.OrderStatusPending, Contact: draft.Contact}, nil
}

// MerchantOrders returns predefined orders.
func (s OrderFacadeStub) MerchantOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusPending}}, nil
}

// MerchantOrder returns one predefined order.
func (s OrderFacadeStub) MerchantOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusPending}, nil
}

// OrderHistory returns predefined history.
func (s OrderFacadeStub) OrderHistory(ctx context.Context, userID, orderID int64) ([]model.StatusChange, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID, orderID)
	}
	return nil, nil
}

// TransitionOrder reports a successful change.
func (s OrderFacadeStub) TransitionOrder(ctx context.Context, userID, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, userID, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, true, nil
}
