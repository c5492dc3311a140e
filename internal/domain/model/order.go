package model

import (
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
)

// OrderStatus describes the merchant-driven order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var forwardTransitions = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusConfirmed,
	OrderStatusConfirmed: OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusCompleted,
}

// ParseOrderStatus converts raw input into a known status.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return s, nil
	}
	return "", domainErrors.ErrInvalidStatus
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
// Cancellation is reachable from every non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return forwardTransitions[s] == next
}

// Order is a persisted purchase recorded by a merchant.
type Order struct {
	ID          int64
	MerchantID  int64
	Status      OrderStatus
	TotalAmount decimal.Decimal
	Contact     ContactInfo
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is a frozen snapshot of a product at order time.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

// StatusChange is one entry of an order's status history.
type StatusChange struct {
	OrderID   int64
	From      OrderStatus
	To        OrderStatus
	ActorID   int64
	ChangedAt time.Time
}

// OrderDraft is an order as entered by a merchant, before snapshotting.
type OrderDraft struct {
	Contact ContactInfo
	Items   []OrderDraftItem
}

// OrderDraftItem references a merchant product and the ordered quantity.
type OrderDraftItem struct {
	ProductID int64
	Quantity  int
}
