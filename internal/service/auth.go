package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"UGEM_BACK-END/internal/config"
	"UGEM_BACK-END/internal/middleware"
	"UGEM_BACK-END/internal/models"
)

// UserStore defines the user data access interface consumed by AuthService.
type UserStore interface {
	Create(ctx context.Context, u models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, firstName, lastName string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteWithCandidates(ctx context.Context, id uuid.UUID) error
}

// VerificationStore stores password reset codes.
type VerificationStore interface {
	Create(ctx context.Context, userID uuid.UUID, email, code string, expiresAt time.Time) error
	ActiveCodeExpiry(ctx context.Context, userID uuid.UUID) (time.Time, error)
	Consume(ctx context.Context, email, code string) (uuid.UUID, error)
}

// CodeSender delivers verification codes to members. utils.EmailService is
// the SMTP implementation.
type CodeSender interface {
	SendVerificationCode(to, code string) error
}

// ErrResetCodePending is returned while a previously issued code is still valid.
var ErrResetCodePending = errors.New("reset code still valid")

const resetCodeTTL = 3 * time.Minute

// AuthService implements signup, login, profile management, account
// deletion with the candidate cascade, and the password reset flow.
type AuthService struct {
	users         UserStore
	verifications VerificationStore
	email         CodeSender
	jwtCfg        *config.JWTConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, verifications VerificationStore, email CodeSender, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{
		users:         users,
		verifications: verifications,
		email:         email,
		jwtCfg:        jwtCfg,
	}
}

// Signup creates the credential (bcrypt hash) together with the mirrored
// profile row. Returns ErrConflict when the email is already registered.
func (s *AuthService) Signup(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, models.ErrConflict
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Login verifies the credentials and returns the member's profile.
// Returns ErrUnauthorized for an unknown email or a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, models.ErrUnauthorized
	}

	return user, nil
}

// GenerateToken issues the session JWT for the user
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	return middleware.GenerateToken(user.ID, user.Email, s.jwtCfg)
}

// GetUser retrieves a member's profile by id
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile changes the member's first and last name
func (s *AuthService) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string) (*models.User, error) {
	return s.users.UpdateName(ctx, id, firstName, lastName)
}

// DeleteAccount removes the member's candidates and profile row in one
// transaction.
func (s *AuthService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return models.ErrUnauthorized
	}
	return s.users.DeleteWithCandidates(ctx, id)
}

// RequestPasswordReset emails a 6-digit code to the member. While an earlier
// code is still valid, ErrResetCodePending is returned instead of a new code.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (time.Duration, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	if expiresAt, err := s.verifications.ActiveCodeExpiry(ctx, user.ID); err == nil {
		if remaining := time.Until(expiresAt); remaining > 0 {
			return remaining, ErrResetCodePending
		}
	} else if !errors.Is(err, models.ErrNotFound) {
		return 0, fmt.Errorf("check active code: %w", err)
	}

	code, err := generateVerificationCode(6)
	if err != nil {
		return 0, fmt.Errorf("generate code: %w", err)
	}

	if err := s.verifications.Create(ctx, user.ID, email, code, time.Now().Add(resetCodeTTL)); err != nil {
		return 0, err
	}

	if err := s.email.SendVerificationCode(email, code); err != nil {
		return 0, fmt.Errorf("send verification code: %w", err)
	}

	return resetCodeTTL, nil
}

// VerifyResetCode consumes an emailed code and issues a short-lived reset token
func (s *AuthService) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	userID, err := s.verifications.Consume(ctx, email, code)
	if err != nil {
		return "", err
	}
	return middleware.GenerateResetToken(userID, email, code, s.jwtCfg)
}

// ResetPassword validates the reset token and stores the new password hash
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := middleware.ValidateResetToken(resetToken, s.jwtCfg)
	if err != nil {
		return models.ErrUnauthorized
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, claims.UserID, string(hashed))
}

// generateVerificationCode returns n random decimal digits
func generateVerificationCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
