package service

import (
	"context"
	"fmt"

	"meatmarket/internal/auth"
	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

// AuthService issues and revokes bearer tokens.
type AuthService interface {
	// Token authenticates username and password and returns a signed token.
	Token(ctx context.Context, username, password string) (string, error)
	// Register creates a buyer account and returns a token for it.
	Register(ctx context.Context, user *model.User) (string, error)
	// RegisterSeller creates a seller account and returns a token for it.
	RegisterSeller(ctx context.Context, user *model.User, seller *model.Seller) (string, error)
	// Logout revokes the token described by claims until it expires.
	Logout(ctx context.Context, claims *auth.Claims) error
	// Verify validates a raw token and rejects revoked ones.
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

type authService struct {
	users      UserService
	sellers    SellerService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(users UserService, sellers SellerService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		users:      users,
		sellers:    sellers,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (s *authService) Token(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.issue(user)
}

func (s *authService) Register(ctx context.Context, user *model.User) (string, error) {
	user.IsSeller = false
	created, err := s.users.Register(ctx, user)
	if err != nil {
		return "", err
	}
	return s.issue(created)
}

func (s *authService) RegisterSeller(ctx context.Context, user *model.User, seller *model.Seller) (string, error) {
	if _, err := s.sellers.Register(ctx, user, seller); err != nil {
		return "", err
	}
	return s.issue(user)
}

func (s *authService) issue(user *model.User) (string, error) {
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.tokenStore.Revoke(ctx, claims.ID, claims.Remaining()); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *authService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid token")
	}
	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, apperr.Unauthorized("Token has been revoked")
	}
	return claims, nil
}
