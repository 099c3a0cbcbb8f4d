package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"UGEM_BACK-END/internal/config"
	"UGEM_BACK-END/internal/models"
)

type fakeUserStore struct {
	users      map[uuid.UUID]models.User
	candidates *fakeCandidateStore
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:      make(map[uuid.UUID]models.User),
		candidates: newFakeCandidateStore(),
	}
}

func (s *fakeUserStore) Create(ctx context.Context, u models.User) error {
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.ErrConflict
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakeUserStore) UpdateName(ctx context.Context, id uuid.UUID, firstName, lastName string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return &u, nil
}

func (s *fakeUserStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return models.ErrNotFound
	}
	u.PasswordHash = passwordHash
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) DeleteWithCandidates(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return models.ErrNotFound
	}
	for cid, c := range s.candidates.candidates {
		if c.CreatorID == id {
			delete(s.candidates.candidates, cid)
		}
	}
	delete(s.users, id)
	return nil
}

type fakeVerificationStore struct {
	codes map[string]struct {
		userID    uuid.UUID
		code      string
		expiresAt time.Time
		used      bool
	}
}

func newFakeVerificationStore() *fakeVerificationStore {
	return &fakeVerificationStore{codes: make(map[string]struct {
		userID    uuid.UUID
		code      string
		expiresAt time.Time
		used      bool
	})}
}

func (s *fakeVerificationStore) Create(ctx context.Context, userID uuid.UUID, email, code string, expiresAt time.Time) error {
	s.codes[email] = struct {
		userID    uuid.UUID
		code      string
		expiresAt time.Time
		used      bool
	}{userID, code, expiresAt, false}
	return nil
}

func (s *fakeVerificationStore) ActiveCodeExpiry(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	for _, entry := range s.codes {
		if entry.userID == userID && !entry.used && entry.expiresAt.After(time.Now()) {
			return entry.expiresAt, nil
		}
	}
	return time.Time{}, models.ErrNotFound
}

func (s *fakeVerificationStore) Consume(ctx context.Context, email, code string) (uuid.UUID, error) {
	entry, ok := s.codes[email]
	if !ok || entry.used || entry.code != code || entry.expiresAt.Before(time.Now()) {
		return uuid.Nil, models.ErrNotFound
	}
	entry.used = true
	s.codes[email] = entry
	return entry.userID, nil
}

type fakeCodeSender struct {
	sent []string
}

func (s *fakeCodeSender) SendVerificationCode(to, code string) error {
	s.sent = append(s.sent, code)
	return nil
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
		ResetTokenTTL:  10 * time.Minute,
	}
}

func newTestAuthService() (*AuthService, *fakeUserStore, *fakeVerificationStore, *fakeCodeSender) {
	users := newFakeUserStore()
	verifications := newFakeVerificationStore()
	sender := &fakeCodeSender{}
	return NewAuthService(users, verifications, sender, testJWTConfig()), users, verifications, sender
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates member with hashed password", func(t *testing.T) {
		svc, users, _, _ := newTestAuthService()

		user, err := svc.Signup(ctx, "amal@example.com", "secret123", "أمل", "الصالح")
		require.NoError(t, err)
		assert.Equal(t, "amal@example.com", user.Email)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
		assert.Len(t, users.users, 1)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _, _, _ := newTestAuthService()

		_, err := svc.Signup(ctx, "amal@example.com", "secret123", "أمل", "الصالح")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, "amal@example.com", "other456", "ليلى", "العمري")
		assert.ErrorIs(t, err, models.ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestAuthService()

	created, err := svc.Signup(ctx, "amal@example.com", "secret123", "أمل", "الصالح")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "amal@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "amal@example.com", "wrongpass")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	svc, users, _, _ := newTestAuthService()
	candidateSvc := NewCandidateService(users.candidates)

	user, err := svc.Signup(ctx, "amal@example.com", "secret123", "أمل", "الصالح")
	require.NoError(t, err)

	_, err = candidateSvc.Create(ctx, user.ID, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, user.ID))

	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	remaining, err := candidateSvc.GetByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteAccountUnauthorized(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	err := svc.DeleteAccount(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()
	svc, _, _, sender := newTestAuthService()

	_, err := svc.Signup(ctx, "amal@example.com", "secret123", "أمل", "الصالح")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.RequestPasswordReset(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("full flow", func(t *testing.T) {
		ttl, err := svc.RequestPasswordReset(ctx, "amal@example.com")
		require.NoError(t, err)
		assert.Equal(t, resetCodeTTL, ttl)
		require.Len(t, sender.sent, 1)
		code := sender.sent[0]
		assert.Len(t, code, 6)

		resetToken, err := svc.VerifyResetCode(ctx, "amal@example.com", code)
		require.NoError(t, err)
		require.NotEmpty(t, resetToken)

		require.NoError(t, svc.ResetPassword(ctx, resetToken, "newpass456"))

		_, err = svc.Login(ctx, "amal@example.com", "newpass456")
		assert.NoError(t, err)
		_, err = svc.Login(ctx, "amal@example.com", "secret123")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("second request while code pending", func(t *testing.T) {
		_, err := svc.RequestPasswordReset(ctx, "amal@example.com")
		require.NoError(t, err)
		_, err = svc.RequestPasswordReset(ctx, "amal@example.com")
		assert.ErrorIs(t, err, ErrResetCodePending)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		_, err := svc.VerifyResetCode(ctx, "amal@example.com", "000000")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("garbage reset token is rejected", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "not-a-token", "whatever1")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})
}
