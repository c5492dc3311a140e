package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/polkiloo/campusmart/internal/config"
	domainErrors "github.com/polkiloo/campusmart/internal/domain/errors"
	"github.com/polkiloo/campusmart/internal/domain/model"
	"github.com/polkiloo/campusmart/internal/domain/repository"
	"github.com/polkiloo/campusmart/internal/pkg/throttle"
)

var codeSpace = big.NewInt(1_000_000)

// IssuedCode is what the caller needs to deliver a fresh code.
type IssuedCode struct {
	Code      string
	Phone     string
	ExpiresAt time.Time
}

// VerificationLedger issues and validates one-time phone codes.
type VerificationLedger struct {
	codes    repository.VerificationRepository
	limiter  throttle.Limiter
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
	generate func() (string, error)
}

// NewVerificationLedger constructs VerificationLedger.
func NewVerificationLedger(codes repository.VerificationRepository, limiter throttle.Limiter, cfg *config.Config, logger *slog.Logger) *VerificationLedger {
	return &VerificationLedger{
		codes:    codes,
		limiter:  limiter,
		ttl:      cfg.CodeTTL,
		logger:   logger,
		now:      time.Now,
		generate: randomCode,
	}
}

// Issue creates a new pending code for userID and phone. Older pending
// codes of the same user stop validating.
func (l *VerificationLedger) Issue(ctx context.Context, userID int64, rawPhone string) (*IssuedCode, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	phone, err := NormalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"user:" + strconv.FormatInt(userID, 10), "phone:" + phone} {
		allowed, err := l.limiter.Allow(ctx, key)
		if err != nil {
			return nil, err
		}
		if !allowed {
			l.logger.Warn("verification issue throttled", slog.Int64("user_id", userID))
			return nil, domainErrors.ErrTooManyRequests
		}
	}

	code, err := l.generate()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	now := l.now()
	record := model.VerificationCode{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Phone:     phone,
		Code:      code,
		OwnerID:   userID,
		CreatedAt: now,
		ExpiresAt: now.Add(l.ttl),
	}
	if err := l.codes.Create(ctx, record); err != nil {
		return nil, err
	}

	return &IssuedCode{Code: code, Phone: phone, ExpiresAt: record.ExpiresAt}, nil
}

// Validate consumes the user's latest code when it matches and is still
// pending. A failed attempt is not an error; the outcome says why.
func (l *VerificationLedger) Validate(ctx context.Context, userID int64, code string) (*model.VerificationResult, error) {
	if userID <= 0 {
		return nil, domainErrors.ErrAuthenticationRequired
	}
	code = strings.TrimSpace(code)
	if !isCode(code) {
		return nil, domainErrors.ErrInvalidCode
	}

	now := l.now()
	phone, ok, err := l.codes.Consume(ctx, userID, code, now)
	if err != nil {
		return nil, err
	}
	if ok {
		return &model.VerificationResult{Verified: true, Outcome: model.OutcomeVerified, Phone: phone}, nil
	}

	outcome, err := l.classify(ctx, userID, code, now)
	if err != nil {
		return nil, err
	}
	return &model.VerificationResult{Outcome: outcome}, nil
}

func (l *VerificationLedger) classify(ctx context.Context, userID int64, code string, now time.Time) (model.VerificationOutcome, error) {
	latest, err := l.codes.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.OutcomeNoCode, nil
		}
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(latest.Code), []byte(code)) != 1 {
		return model.OutcomeMismatch, nil
	}
	switch latest.StatusAt(now) {
	case model.CodeStatusConsumed:
		return model.OutcomeConsumed, nil
	case model.CodeStatusExpired:
		return model.OutcomeExpired, nil
	default:
		return model.OutcomeMismatch, nil
	}
}

func isCode(s string) bool {
	if len(s) != model.CodeLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", model.CodeLength, n.Int64()), nil
}
