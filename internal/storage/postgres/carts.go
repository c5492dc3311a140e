package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
)

type cartRepository struct {
	storage *Storage
}

const selectCartLine = `SELECT c.id, c.user_id, c.product_id, p.name, p.price::text, c.quantity, p.stock,
                               m.id, m.name, m.channel
                        FROM cart_lines c
                        JOIN products p ON p.id = c.product_id
                        JOIN merchants m ON m.id = p.merchant_id
                        WHERE c.user_id=$1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCartLine(row rowScanner) (model.CartLine, error) {
	var (
		line  model.CartLine
		price string
	)
	err := row.Scan(&line.ID, &line.UserID, &line.ProductID, &line.ProductName, &price, &line.Quantity, &line.Stock,
		&line.MerchantID, &line.MerchantName, &line.MerchantChannel)
	if err != nil {
		return model.CartLine{}, err
	}
	line.UnitPrice, err = parseAmount(price)
	return line, err
}

func (r *cartRepository) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	const query = selectCartLine + ` ORDER BY c.id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		line, err := scanCartLine(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) GetLine(ctx context.Context, userID, lineID int64) (*model.CartLine, error) {
	const query = selectCartLine + ` AND c.id=$2`
	line, err := scanCartLine(r.storage.pool.QueryRow(ctx, query, userID, lineID))
	if err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (r *cartRepository) FindByProduct(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	const query = selectCartLine + ` AND c.product_id=$2`
	line, err := scanCartLine(r.storage.pool.QueryRow(ctx, query, userID, productID))
	if err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (r *cartRepository) Insert(ctx context.Context, userID, productID int64, quantity int) (int64, error) {
	const query = `INSERT INTO cart_lines (user_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`
	var id int64
	if err := r.storage.pool.QueryRow(ctx, query, userID, productID, quantity).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, domainErrors.ErrAlreadyExists
		}
		return 0, err
	}
	return id, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, lineID int64, quantity int) error {
	const query = `UPDATE cart_lines SET quantity=$3 WHERE user_id=$1 AND id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, lineID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, userID, lineID int64) error {
	const query = `DELETE FROM cart_lines WHERE user_id=$1 AND id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, userID, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
