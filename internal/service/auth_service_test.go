package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"wayfinder/internal/auth"
	"wayfinder/internal/domain"
)

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *domain.User) (int64, error)
	getByIDFn        func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	emailExistsFn    func(ctx context.Context, email string, excludeID int64) (bool, error)
	updatePasswordFn func(ctx context.Context, id int64, hash string) error
}

func (m *mockUserRepo) Init(context.Context) error { return nil }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return 1, nil
}

func (m *mockUserRepo) Update(context.Context, *domain.User) error { return nil }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, hash)
	}
	return nil
}

func newTestAuthDeps(t *testing.T) (*auth.PasswordHasher, *auth.TokenService) {
	t.Helper()

	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens, err := auth.NewTokenService("sign-secret", "enc-secret", "wayfinder-api", "wayfinder-client", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}
	return hasher, tokens
}

func TestAuthRegister_Success(t *testing.T) {
	t.Parallel()

	hasher, tokens := newTestAuthDeps(t)
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, hasher, tokens)

	user, token, err := svc.Register(context.Background(), "a@x.com", "secret1", "", "", "")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatal("returned user must not carry the password hash")
	}

	identity, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if identity.UserID != user.ID {
		t.Fatalf("token subject mismatch: got %d want %d", identity.UserID, user.ID)
	}
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	hasher, tokens := newTestAuthDeps(t)
	repo := &mockUserRepo{
		emailExistsFn: func(context.Context, string, int64) (bool, error) { return true, nil },
	}
	svc := NewAuthService(repo, hasher, tokens)

	if _, _, err := svc.Register(context.Background(), "a@x.com", "secret1", "", "", ""); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthLogin_UndifferentiatedFailure(t *testing.T) {
	t.Parallel()

	hasher, tokens := newTestAuthDeps(t)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := &domain.User{ID: 5, Email: "a@x.com", PasswordHash: hash}

	repo := &mockUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if strings.EqualFold(email, stored.Email) {
				clone := *stored
				return &clone, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := NewAuthService(repo, hasher, tokens)
	ctx := context.Background()

	// Unknown email and wrong password must be indistinguishable.
	_, _, missErr := svc.Login(ctx, "nobody@x.com", "secret1")
	_, _, wrongErr := svc.Login(ctx, "a@x.com", "wrong")
	if !errors.Is(missErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", missErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if missErr.Error() != wrongErr.Error() {
		t.Fatalf("login failures must share one message: %q vs %q", missErr, wrongErr)
	}
}

func TestAuthLogin_Success(t *testing.T) {
	t.Parallel()

	hasher, tokens := newTestAuthDeps(t)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &mockUserRepo{
		getByEmailFn: func(context.Context, string) (*domain.User, error) {
			return &domain.User{ID: 5, Email: "a@x.com", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(repo, hasher, tokens)

	user, token, err := svc.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	identity, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if identity.UserID != user.ID || identity.UserID != 5 {
		t.Fatalf("token subject mismatch: got %d", identity.UserID)
	}
}

func TestChangePassword_RequiresCurrent(t *testing.T) {
	t.Parallel()

	hasher, tokens := newTestAuthDeps(t)

	hash, err := hasher.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	var updatedHash string
	repo := &mockUserRepo{
		getByIDFn: func(context.Context, int64) (*domain.User, error) {
			return &domain.User{ID: 5, Email: "a@x.com", PasswordHash: hash}, nil
		},
		updatePasswordFn: func(_ context.Context, _ int64, h string) error {
			updatedHash = h
			return nil
		},
	}
	svc := NewAuthService(repo, hasher, tokens)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, 5, "wrong", "newsecret"); !errors.Is(err, ErrCurrentPasswordIncorrect) {
		t.Fatalf("expected ErrCurrentPasswordIncorrect, got %v", err)
	}
	if updatedHash != "" {
		t.Fatal("password must not change on failed verification")
	}

	if err := svc.ChangePassword(ctx, 5, "secret1", "newsecret"); err != nil {
		t.Fatalf("ChangePassword error: %v", err)
	}
	if !hasher.Verify("newsecret", updatedHash) {
		t.Fatal("expected new password to verify against stored hash")
	}
}
