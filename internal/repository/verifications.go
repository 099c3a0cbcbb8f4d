package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"UGEM_BACK-END/internal/models"
)

// VerificationRepository stores password reset verification codes
type VerificationRepository struct {
	db *pgxpool.Pool
}

// NewVerificationRepository creates a new VerificationRepository instance
func NewVerificationRepository(db *pgxpool.Pool) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create stores a fresh verification code for the user
func (r *VerificationRepository) Create(ctx context.Context, userID uuid.UUID, email, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO auth_verifications (user_id, email, code, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, NOW())`,
		userID, email, code, expiresAt)
	if err != nil {
		return fmt.Errorf("insert verification code: %w", err)
	}
	return nil
}

// ActiveCodeExpiry returns the expiry of the newest unused, unexpired code
// for the user, if one exists.
func (r *VerificationRepository) ActiveCodeExpiry(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	var expiresAt time.Time
	err := r.db.QueryRow(ctx,
		`SELECT expires_at FROM auth_verifications
		  WHERE user_id = $1 AND used = FALSE AND expires_at > NOW()
		  ORDER BY created_at DESC LIMIT 1`, userID).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, models.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("find active code: %w", err)
	}
	return expiresAt, nil
}

// Consume marks a matching unexpired code as used and returns the owning
// user id. The UPDATE doubles as the validity check.
func (r *VerificationRepository) Consume(ctx context.Context, email, code string) (uuid.UUID, error) {
	var userID uuid.UUID
	err := r.db.QueryRow(ctx,
		`UPDATE auth_verifications SET used = TRUE
		  WHERE id = (
		        SELECT id FROM auth_verifications
		         WHERE email = $1 AND code = $2 AND used = FALSE AND expires_at > NOW()
		         ORDER BY created_at DESC LIMIT 1)
		  RETURNING user_id`, email, code).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, models.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("consume verification code: %w", err)
	}
	return userID, nil
}
