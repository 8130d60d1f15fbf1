package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wayfinder/internal/auth"
	"wayfinder/internal/domain"
	"wayfinder/internal/repository"
)

// ErrCurrentPasswordIncorrect is returned by ChangePassword when the caller's
// current password does not verify.
var ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

// AuthService implements the register/login/change-password flows by
// composing the password hasher with the token service.
type AuthService interface {
	Register(ctx context.Context, email, password, color1, color2, color3 string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password, color1, color2, color3 string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, "", errors.New("email is required")
	}
	if password == "" {
		return nil, "", errors.New("password is required")
	}

	exists, err := s.users.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Color1:       color1,
		Color2:       color2,
		Color3:       color3,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

// Login deliberately returns the same error for an unknown email and a wrong
// password so the endpoint cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return sanitizeUser(user), token, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if newPassword == "" {
		return errors.New("new password is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return ErrCurrentPasswordIncorrect
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, userID, hash)
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clone := *user
	clone.PasswordHash = ""
	return &clone
}
