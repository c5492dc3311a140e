package repository

import (
	"context"
	"time"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]model.Order, error)
	// UpdateStatus applies change only if the order still belongs to
	// merchantID and is in change.From. Returns ErrConflict otherwise.
	UpdateStatus(ctx context.Context, merchantID int64, change model.StatusChange) (time.Time, error)
	History(ctx context.Context, orderID int64) ([]model.StatusChange, error)
}
