package services

import (
	"context"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
)

// CartResponse is what every cart endpoint returns: the full cart plus the
// backend-computed summary. Mutation responses carry the post-mutation
// state, so callers never need a follow-up fetch.
type CartResponse struct {
	Cart    []models.CartLine  `json:"cart"`
	Summary models.CartSummary `json:"summary"`
}

// CartService wraps /users/cart.
type CartService struct {
	Client *api.Client
}

func (s *CartService) Get(ctx context.Context) (*CartResponse, error) {
	var resp CartResponse
	if err := s.Client.Get(ctx, "/users/cart", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CartService) Add(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	var resp CartResponse
	if err := s.Client.Post(ctx, "/users/cart", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CartService) Update(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	var resp CartResponse
	if err := s.Client.Put(ctx, "/users/cart", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CartService) Remove(ctx context.Context, productID string) (*CartResponse, error) {
	var resp CartResponse
	if err := s.Client.Delete(ctx, "/users/cart/"+productID, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.Client.Delete(ctx, "/users/cart", nil)
}
