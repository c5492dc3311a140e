package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const selectOrder = `SELECT id, merchant_id, status, total_amount::text, first_name, last_name, location, phone,
                            created_at, updated_at
                     FROM orders`

func scanOrder(row rowScanner) (model.Order, error) {
	var (
		o      model.Order
		status string
		total  string
	)
	err := row.Scan(&o.ID, &o.MerchantID, &status, &total, &o.Contact.FirstName, &o.Contact.LastName,
		&o.Contact.Location, &o.Contact.Phone, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return model.Order{}, err
	}
	o.Status = model.OrderStatus(status)
	o.TotalAmount, err = parseAmount(total)
	return o, err
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (merchant_id, status, total_amount, first_name, last_name, location, phone)
                         VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
                         RETURNING id, created_at, updated_at`
	const insertItem = `INSERT INTO order_items (order_id, product_name, price, quantity, subtotal)
                        VALUES ($1, $2, $3::numeric, $4, $5::numeric)
                        RETURNING id`

	items := make([]model.OrderItem, len(order.Items))
	copy(items, order.Items)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		c := order.Contact
		err := tx.QueryRow(ctx, insertOrder, order.MerchantID, string(order.Status), formatAmount(order.TotalAmount),
			c.FirstName, c.LastName, c.Location, c.Phone).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			err := tx.QueryRow(ctx, insertItem, order.ID, items[i].ProductName, formatAmount(items[i].Price),
				items[i].Quantity, formatAmount(items[i].Subtotal)).Scan(&items[i].ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = selectOrder + ` WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	if order.Items, err = r.items(ctx, id); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_name, price::text, quantity, subtotal::text
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItem
	for rows.Next() {
		var (
			it              model.OrderItem
			price, subtotal string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &price, &it.Quantity, &subtotal); err != nil {
			return nil, err
		}
		if it.Price, err = parseAmount(price); err != nil {
			return nil, err
		}
		if it.Subtotal, err = parseAmount(subtotal); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListByMerchant returns order headers without items, newest first.
func (r *orderRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]model.Order, error) {
	const query = selectOrder + ` WHERE merchant_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, merchantID int64, change model.StatusChange) (time.Time, error) {
	const updateQuery = `UPDATE orders SET status=$1, updated_at=$2
                         WHERE id=$3 AND merchant_id=$4 AND status=$5
                         RETURNING updated_at`
	const historyQuery = `INSERT INTO order_status_history (order_id, from_status, to_status, actor_id, changed_at)
                          VALUES ($1, $2, $3, $4, $5)`

	var updatedAt time.Time
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, updateQuery, string(change.To), change.ChangedAt, change.OrderID, merchantID, string(change.From)).
			Scan(&updatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrConflict
			}
			return err
		}
		_, err = tx.Exec(ctx, historyQuery, change.OrderID, string(change.From), string(change.To), change.ActorID, change.ChangedAt)
		return err
	})
	if err != nil {
		return time.Time{}, err
	}
	return updatedAt, nil
}

func (r *orderRepository) History(ctx context.Context, orderID int64) ([]model.StatusChange, error) {
	const query = `SELECT order_id, from_status, to_status, actor_id, changed_at
                   FROM order_status_history WHERE order_id=$1 ORDER BY changed_at, id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusChange
	for rows.Next() {
		var (
			c        model.StatusChange
			from, to string
		)
		if err := rows.Scan(&c.OrderID, &from, &to, &c.ActorID, &c.ChangedAt); err != nil {
			return nil, err
		}
		c.From, c.To = model.OrderStatus(from), model.OrderStatus(to)
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
