package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/domain/repository"
)

// OrderLifecycle records merchant orders and moves them through statuses.
type OrderLifecycle struct {
	orders    repository.OrderRepository
	merchants repository.MerchantRepository
	products  repository.ProductRepository
	now       func() time.Time
}

// NewOrderLifecycle constructs OrderLifecycle.
func NewOrderLifecycle(orders repository.OrderRepository, merchants repository.MerchantRepository, products repository.ProductRepository) *OrderLifecycle {
	return &OrderLifecycle{orders: orders, merchants: merchants, products: products, now: time.Now}
}

// Record persists a pending order. Item names and prices are snapshotted
// from the merchant's current catalog.
func (l *OrderLifecycle) Record(ctx context.Context, actorID int64, input model.OrderDraft) (*model.Order, error) {
	merchant, err := l.merchantOf(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, domainErrors.ErrEmptySelection
	}
	if !input.Contact.Complete() {
		return nil, domainErrors.ErrIncompleteContactInfo
	}

	order := model.Order{
		MerchantID:  merchant.ID,
		Status:      model.OrderStatusPending,
		TotalAmount: decimal.Zero,
		Contact:     input.Contact,
	}
	for _, in := range input.Items {
		if !model.ValidQuantity(in.Quantity) {
			return nil, domainErrors.ErrInvalidQuantity
		}
		product, err := l.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product.MerchantID != merchant.ID {
			return nil, domainErrors.ErrNotFound
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		order.Items = append(order.Items, model.OrderItem{
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    in.Quantity,
			Subtotal:    subtotal,
		})
		order.TotalAmount = order.TotalAmount.Add(subtotal)
	}
	if order.TotalAmount.GreaterThan(model.MaxAmount) {
		return nil, domainErrors.ErrInvalidQuantity
	}

	return l.orders.Create(ctx, order)
}

// Transition moves an order to next. Only the owning merchant may do so;
// others get ErrNotFound. Requesting the current status is a no-op and
// reports changed=false.
func (l *OrderLifecycle) Transition(ctx context.Context, actorID, orderID int64, next model.OrderStatus) (*model.Order, bool, error) {
	order, err := l.owned(ctx, actorID, orderID)
	if err != nil {
		return nil, false, err
	}
	if order.Status == next {
		return order, false, nil
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, false, domainErrors.ErrIllegalTransition
	}

	change := model.StatusChange{
		OrderID:   order.ID,
		From:      order.Status,
		To:        next,
		ActorID:   actorID,
		ChangedAt: l.now(),
	}
	updatedAt, err := l.orders.UpdateStatus(ctx, order.MerchantID, change)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrConflict) {
			return nil, false, err
		}
		current, getErr := l.orders.GetByID(ctx, orderID)
		if getErr == nil && current.Status == next {
			return current, false, nil
		}
		return nil, false, err
	}

	order.Status = next
	order.UpdatedAt = updatedAt
	return order, true, nil
}

// List returns the actor's merchant orders, newest first.
func (l *OrderLifecycle) List(ctx context.Context, actorID int64) ([]model.Order, error) {
	merchant, err := l.merchantOf(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return l.orders.ListByMerchant(ctx, merchant.ID)
}

// Get returns one order with its items.
func (l *OrderLifecycle) Get(ctx context.Context, actorID, orderID int64) (*model.Order, error) {
	return l.owned(ctx, actorID, orderID)
}

// History returns the status changes of an order, oldest first.
func (l *OrderLifecycle) History(ctx context.Context, actorID, orderID int64) ([]model.StatusChange, error) {
	if _, err := l.owned(ctx, actorID, orderID); err != nil {
		return nil, err
	}
	return l.orders.History(ctx, orderID)
}

func (l *OrderLifecycle) owned(ctx context.Context, actorID, orderID int64) (*model.Order, error) {
	merchant, err := l.merchantOf(ctx, actorID)
	if err != nil {
		return nil, err
	}
	order, err := l.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.MerchantID != merchant.ID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

func (l *OrderLifecycle) merchantOf(ctx context.Context, actorID int64) (*model.Merchant, error) {
	if actorID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	return l.merchants.GetByOwner(ctx, actorID)
}
