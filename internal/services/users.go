package services

import (
	"context"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
)

type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UserService wraps /users/profile and /users/addresses.
type UserService struct {
	Client *api.Client
}

func (s *UserService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.Client.Get(ctx, "/users/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.Client.Put(ctx, "/users/profile", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Addresses(ctx context.Context) ([]models.Address, error) {
	var addrs []models.Address
	if err := s.Client.Get(ctx, "/users/addresses", &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

func (s *UserService) AddAddress(ctx context.Context, addr models.Address) ([]models.Address, error) {
	var addrs []models.Address
	if err := s.Client.Post(ctx, "/users/addresses", addr, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

func (s *UserService) DeleteAddress(ctx context.Context, id string) error {
	return s.Client.Delete(ctx, "/users/addresses/"+id, nil)
}
