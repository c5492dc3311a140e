package repository

import (
	"context"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

// CartRepository persists cart lines. Reads join live product and merchant data.
type CartRepository interface {
	Lines(ctx context.Context, userID int64) ([]model.CartLine, error)
	GetLine(ctx context.Context, userID, lineID int64) (*model.CartLine, error)
	FindByProduct(ctx context.Context, userID, productID int64) (*model.CartLine, error)
	Insert(ctx context.Context, userID, productID int64, quantity int) (int64, error)
	UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error
	Delete(ctx context.Context, userID, lineID int64) error
}
