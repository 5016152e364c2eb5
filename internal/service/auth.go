package service

import (
	"context"
	"fmt"

	"github.com/sposioggi/espositori-api/internal/authclient"
)

var ErrInvalidCredentials = authclient.ErrInvalidCredentials

type SessionProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (authclient.Session, error)
	GetUser(ctx context.Context, accessToken string) (authclient.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

type AuthService struct {
	provider SessionProvider
}

func NewAuthService(provider SessionProvider) *AuthService {
	return &AuthService{
		provider: provider,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (authclient.Session, error) {
	session, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return authclient.Session{}, fmt.Errorf("s.provider.SignInWithPassword -> %w", err)
	}

	return session, nil
}

// CurrentSession resolves the bearer token to the user behind it, so a
// client can ask "is there a live session" without decoding the token.
func (s *AuthService) CurrentSession(ctx context.Context, accessToken string) (authclient.User, error) {
	user, err := s.provider.GetUser(ctx, accessToken)
	if err != nil {
		return authclient.User{}, fmt.Errorf("s.provider.GetUser -> %w", err)
	}

	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	if err := s.provider.SignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("s.provider.SignOut -> %w", err)
	}

	return nil
}
