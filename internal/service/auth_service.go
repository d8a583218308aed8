package service

import (
	"context"
	"fmt"
	"time"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// authService implements ports.AuthService. It is the identity layer the
// ledger core relies on: principals register once and authenticate with a
// JWT whose subject becomes the caller identity on every ledger operation.
type authService struct {
	principalRepo ports.PrincipalRepository
	hashSvc       ports.HashService
	tokenSvc      ports.TokenService
}

// NewAuthService creates a new auth service.
func NewAuthService(
	principalRepo ports.PrincipalRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
) ports.AuthService {
	return &authService{
		principalRepo: principalRepo,
		hashSvc:       hashSvc,
		tokenSvc:      tokenSvc,
	}
}

// Register creates a new principal with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.Principal, error) {
	existing, err := s.principalRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	principal := &domain.Principal{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.principalRepo.Create(ctx, principal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create principal: %w", err))
	}

	return principal, nil
}

// Login verifies credentials and issues a JWT.
func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	principal, err := s.principalRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("lookup username: %w", err))
	}
	if principal == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	ok, err := s.hashSvc.Verify(password, principal.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(principal.ID, principal.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
