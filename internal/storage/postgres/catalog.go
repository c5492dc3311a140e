package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
)

type merchantRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

func (r *merchantRepository) Create(ctx context.Context, ownerID int64, name, channel string) (*model.Merchant, error) {
	const query = `INSERT INTO merchants (owner_id, name, channel) VALUES ($1, $2, $3) RETURNING id, created_at`
	m := model.Merchant{OwnerID: ownerID, Name: name, Channel: channel}
	if err := r.storage.pool.QueryRow(ctx, query, ownerID, name, channel).Scan(&m.ID, &m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &m, nil
}

func (r *merchantRepository) GetByOwner(ctx context.Context, ownerID int64) (*model.Merchant, error) {
	const query = `SELECT id, owner_id, name, channel, created_at FROM merchants WHERE owner_id=$1`
	var m model.Merchant
	if err := r.storage.pool.QueryRow(ctx, query, ownerID).Scan(&m.ID, &m.OwnerID, &m.Name, &m.Channel, &m.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

const selectProduct = `SELECT id, merchant_id, name, price::text, stock, created_at FROM products`

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (merchant_id, name, price, stock)
                   VALUES ($1, $2, $3::numeric, $4) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, product.MerchantID, product.Name, formatAmount(product.Price), product.Stock).
		Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = selectProduct + ` WHERE id=$1`
	var (
		p     model.Product
		price string
	)
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.MerchantID, &p.Name, &price, &p.Stock, &p.CreatedAt); err != nil {
		return nil, notFound(err)
	}
	amount, err := parseAmount(price)
	if err != nil {
		return nil, err
	}
	p.Price = amount
	return &p, nil
}

func (r *productRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]model.Product, error) {
	const query = selectProduct + ` WHERE merchant_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var (
			p     model.Product
			price string
		)
		if err := rows.Scan(&p.ID, &p.MerchantID, &p.Name, &price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		if p.Price, err = parseAmount(price); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
