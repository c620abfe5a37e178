package services

import (
	"context"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/pkg/logging"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

type AuthResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// AuthService wraps the /auth endpoints. Successful login/registration
// persists the returned bearer token before the call resolves.
type AuthService struct {
	Client *api.Client
	Tokens api.TokenSource
}

func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.Client.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := s.Tokens.Store(resp.AccessToken); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

func (s *AuthService) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.Client.Post(ctx, "/auth/register", reg, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := s.Tokens.Store(resp.AccessToken); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Logout tells the backend best-effort and clears the local token no
// matter what the backend said.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.Client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		logging.FromContext(ctx).Warn("logout request failed", "error", err)
	}
	return s.Tokens.Clear()
}
