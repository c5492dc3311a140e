package repository

import (
	"context"
	"time"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

// VerificationRepository stores one-time phone codes.
type VerificationRepository interface {
	Create(ctx context.Context, code model.VerificationCode) error
	// Consume atomically marks the owner's latest code consumed when it
	// matches and is still pending at now. On success the owner's phone is
	// marked verified and returned. ok is false when nothing was consumed.
	Consume(ctx context.Context, ownerID int64, code string, now time.Time) (phone string, ok bool, err error)
	// Latest returns the most recently issued code for the owner.
	Latest(ctx context.Context, ownerID int64) (*model.VerificationCode, error)
}
