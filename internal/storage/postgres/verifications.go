package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

type verificationRepository struct {
	storage *Storage
}

func (r *verificationRepository) Create(ctx context.Context, code model.VerificationCode) error {
	const query = `INSERT INTO verification_codes (id, owner_id, phone, code, created_at, expires_at)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.pool.Exec(ctx, query, code.ID, code.OwnerID, code.Phone, code.Code, code.CreatedAt, code.ExpiresAt)
	return err
}

// Consume only ever targets the owner's newest row, so a superseded code
// cannot be consumed even while it is still within its TTL.
func (r *verificationRepository) Consume(ctx context.Context, ownerID int64, code string, now time.Time) (string, bool, error) {
	const consumeQuery = `UPDATE verification_codes SET consumed_at=$3
                          WHERE id = (
                              SELECT id FROM verification_codes
                              WHERE owner_id=$1
                              ORDER BY created_at DESC, id DESC
                              LIMIT 1
                          )
                          AND code=$2 AND consumed_at IS NULL AND expires_at > $3
                          RETURNING phone`
	const markVerified = `UPDATE users SET phone=$1, phone_verified_at=$2 WHERE id=$3`

	var (
		phone    string
		consumed bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, consumeQuery, ownerID, code, now).Scan(&phone); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		if _, err := tx.Exec(ctx, markVerified, phone, now, ownerID); err != nil {
			return err
		}
		consumed = true
		return nil
	})
	if err != nil {
		return "", false, err
	}
	return phone, consumed, nil
}

func (r *verificationRepository) Latest(ctx context.Context, ownerID int64) (*model.VerificationCode, error) {
	const query = `SELECT id, owner_id, phone, code, created_at, expires_at, consumed_at
                   FROM verification_codes WHERE owner_id=$1
                   ORDER BY created_at DESC, id DESC LIMIT 1`
	var c model.VerificationCode
	err := r.storage.pool.QueryRow(ctx, query, ownerID).Scan(&c.ID, &c.OwnerID, &c.Phone, &c.Code, &c.CreatedAt, &c.ExpiresAt, &c.ConsumedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}
