package app

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/metrics"
	"github.com/polkiloo/campusmart/internal/usecase"
)

// MarketFacade strings the use cases together for the HTTP layer.
type MarketFacade struct {
	auth       *usecase.AuthUseCase
	ledger     *usecase.VerificationLedger
	dispatcher *usecase.DeliveryDispatcher
	cart       *usecase.CartAggregator
	composer   *usecase.HandoffComposer
	orders     *usecase.OrderLifecycle
	merchants  *usecase.MerchantUseCase
	metrics    *metrics.Metrics
}

type facadeParams struct {
	fx.In

	Auth       *usecase.AuthUseCase
	Ledger     *usecase.VerificationLedger
	Dispatcher *usecase.DeliveryDispatcher
	Cart       *usecase.CartAggregator
	Composer   *usecase.HandoffComposer
	Orders     *usecase.OrderLifecycle
	Merchants  *usecase.MerchantUseCase
	Metrics    *metrics.Metrics
}

// NewMarketFacade constructs MarketFacade.
func NewMarketFacade(p facadeParams) *MarketFacade {
	return &MarketFacade{
		auth:       p.Auth,
		ledger:     p.Ledger,
		dispatcher: p.Dispatcher,
		cart:       p.Cart,
		composer:   p.Composer,
		orders:     p.Orders,
		merchants:  p.Merchants,
		metrics:    p.Metrics,
	}
}

func (f *MarketFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *MarketFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *MarketFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// RequestVerification issues a code and hands it to the dispatcher. The
// code itself never leaves this method except through the delivery channel.
func (f *MarketFacade) RequestVerification(ctx context.Context, userID int64, phone string) (*model.VerificationRequest, error) {
	issued, err := f.ledger.Issue(ctx, userID, phone)
	if err != nil {
		return nil, err
	}
	delivery := f.dispatcher.Send(ctx, issued.Phone, issued.Code)
	f.metrics.CodeIssued(delivery.Method)
	if delivery.Method == model.DeliveryUnavailable {
		return nil, domainErrors.ErrExternalUnavailable
	}
	return &model.VerificationRequest{
		Method:    delivery.Method,
		DeepLink:  delivery.DeepLink,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

func (f *MarketFacade) ConfirmVerification(ctx context.Context, userID int64, code string) (*model.VerificationResult, error) {
	result, err := f.ledger.Validate(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	f.metrics.VerificationAttempt(result.Outcome)
	return result, nil
}

func (f *MarketFacade) Cart(ctx context.Context, userID int64) ([]model.CartLine, []model.MerchantGroup, error) {
	lines, err := f.cart.Lines(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return lines, f.cart.Group(lines), nil
}

func (f *MarketFacade) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*model.CartLine, error) {
	return f.cart.Add(ctx, userID, productID, quantity)
}

func (f *MarketFacade) UpdateCartLine(ctx context.Context, userID, lineID int64, quantity int) (*model.CartLine, error) {
	return f.cart.UpdateQuantity(ctx, userID, lineID, quantity)
}

func (f *MarketFacade) RemoveCartLine(ctx context.Context, userID, lineID int64) error {
	return f.cart.Remove(ctx, userID, lineID)
}

// ComposeHandoff builds the handoff for one merchant of the user's cart.
// The cart itself is left untouched.
func (f *MarketFacade) ComposeHandoff(ctx context.Context, userID, merchantID int64, excluded []int64, contact model.ContactInfo) (*model.Handoff, error) {
	lines, err := f.cart.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}

	var group *model.MerchantGroup
	groups := f.cart.Group(lines)
	for i := range groups {
		if groups[i].MerchantID == merchantID {
			group = &groups[i]
			break
		}
	}
	if group == nil {
		return nil, domainErrors.ErrNotFound
	}

	handoff, err := f.composer.Compose(*group, excluded, contact)
	if err != nil {
		return nil, err
	}
	link, err := f.composer.DeepLink(group.Channel, handoff.Message)
	if err != nil {
		return nil, err
	}
	handoff.DeepLink = link
	f.metrics.HandoffComposed()
	return handoff, nil
}

func (f *MarketFacade) OpenMerchant(ctx context.Context, userID int64, name, channel string) (*model.Merchant, error) {
	return f.merchants.Open(ctx, userID, name, channel)
}

func (f *MarketFacade) AddProduct(ctx context.Context, userID int64, name string, price decimal.Decimal, stock *int) (*model.Product, error) {
	return f.merchants.AddProduct(ctx, userID, name, price, stock)
}

func (f *MarketFacade) MerchantProducts(ctx context.Context, userID int64) ([]model.Product, error) {
	merchant, err := f.merchants.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return f.merchants.Catalog(ctx, merchant.ID)
}

func (f *MarketFacade) Catalog(ctx context.Context, merchantID int64) ([]model.Product, error) {
	return f.merchants.Catalog(ctx, merchantID)
}

func (f *MarketFacade) RecordOrder(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Record(ctx, userID, draft)
}

func (f *MarketFacade) MerchantOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.List(ctx, userID)
}

func (f *MarketFacade) MerchantOrder(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *MarketFacade) OrderHistory(ctx context.Context, userID, orderID int64) ([]model.StatusChange, error) {
	return f.orders.History(ctx, userID, orderID)
}

func (f *MarketFacade) TransitionOrder(ctx context.Context, userID, orderID int64, status model.OrderStatus) (*model.Order, bool, error) {
	order, changed, err := f.orders.Transition(ctx, userID, orderID, status)
	if err != nil {
		return nil, false, err
	}
	if changed {
		f.metrics.OrderTransitioned(status)
	}
	return order, changed, nil
}
