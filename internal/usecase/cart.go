package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/domain/repository"
)

// CartAggregator mutates a user's cart and groups it by merchant.
type CartAggregator struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartAggregator constructs CartAggregator.
func NewCartAggregator(carts repository.CartRepository, products repository.ProductRepository) *CartAggregator {
	return &CartAggregator{carts: carts, products: products}
}

// Add puts quantity of productID into the cart, merging with an existing
// line. The resulting quantity is clamped to MaxQuantity and tracked stock.
func (a *CartAggregator) Add(ctx context.Context, userID, productID int64, quantity int) (*model.CartLine, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	if !model.ValidQuantity(quantity) {
		return nil, domainErrors.ErrInvalidQuantity
	}

	product, err := a.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	existing, err := a.carts.FindByProduct(ctx, userID, productID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		qty, err := clampQuantity(min(existing.Quantity+quantity, model.MaxQuantity), product.Stock)
		if err != nil {
			return nil, err
		}
		if err := a.carts.UpdateQuantity(ctx, userID, existing.ID, qty); err != nil {
			return nil, err
		}
		return a.carts.GetLine(ctx, userID, existing.ID)
	}

	qty, err := clampQuantity(quantity, product.Stock)
	if err != nil {
		return nil, err
	}
	lineID, err := a.carts.Insert(ctx, userID, productID, qty)
	if err != nil {
		return nil, err
	}
	return a.carts.GetLine(ctx, userID, lineID)
}

// UpdateQuantity sets the quantity of a line, clamped to tracked stock.
func (a *CartAggregator) UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) (*model.CartLine, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	if !model.ValidQuantity(quantity) {
		return nil, domainErrors.ErrInvalidQuantity
	}

	line, err := a.carts.GetLine(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}
	qty, err := clampQuantity(quantity, line.Stock)
	if err != nil {
		return nil, err
	}
	if err := a.carts.UpdateQuantity(ctx, userID, lineID, qty); err != nil {
		return nil, err
	}
	line.Quantity = qty
	return line, nil
}

// Remove deletes a line. Persisted orders are unaffected.
func (a *CartAggregator) Remove(ctx context.Context, userID, lineID int64) error {
	if userID <= 0 {
		return domainErrors.ErrAuthenticationRequired
	}
	return a.carts.Delete(ctx, userID, lineID)
}

// Lines returns the user's cart in insertion order.
func (a *CartAggregator) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	return a.carts.Lines(ctx, userID)
}

// Group splits lines by merchant. See GroupByMerchant.
func (a *CartAggregator) Group(lines []model.CartLine) []model.MerchantGroup {
	return GroupByMerchant(lines)
}

// GroupByMerchant partitions lines into one group per merchant, ordered by
// first appearance. Each line lands in exactly one group and keeps its
// relative order.
func GroupByMerchant(lines []model.CartLine) []model.MerchantGroup {
	index := make(map[int64]int)
	var groups []model.MerchantGroup
	for _, line := range lines {
		i, ok := index[line.MerchantID]
		if !ok {
			i = len(groups)
			index[line.MerchantID] = i
			groups = append(groups, model.MerchantGroup{
				MerchantID:   line.MerchantID,
				MerchantName: line.MerchantName,
				Channel:      line.MerchantChannel,
				Subtotal:     decimal.Zero,
			})
		}
		groups[i].Lines = append(groups[i].Lines, line)
		groups[i].Subtotal = groups[i].Subtotal.Add(line.Subtotal())
	}
	return groups
}

func clampQuantity(quantity int, stock *int) (int, error) {
	if !model.ValidQuantity(quantity) {
		return 0, domainErrors.ErrInvalidQuantity
	}
	if stock == nil || quantity <= *stock {
		return quantity, nil
	}
	if *stock < 1 {
		return 0, domainErrors.ErrInvalidQuantity
	}
	return *stock, nil
}
