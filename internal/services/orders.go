package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
)

type CreateOrderRequest struct {
	ShippingAddress models.Address `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

type OrderResponse struct {
	Order models.Order `json:"order"`
}

type OrderPage struct {
	Orders     []models.Order    `json:"orders"`
	Pagination models.Pagination `json:"pagination"`
}

// OrderService wraps /orders and the public tracking endpoint.
type OrderService struct {
	Client *api.Client
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	var resp OrderResponse
	if err := s.Client.Post(ctx, "/orders", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (s *OrderService) List(ctx context.Context, page, limit int) (*OrderPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/orders"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp OrderPage
	if err := s.Client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	var resp OrderResponse
	if err := s.Client.Get(ctx, "/orders/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (s *OrderService) Cancel(ctx context.Context, id string) (*models.Order, error) {
	var resp OrderResponse
	if err := s.Client.Put(ctx, "/orders/"+id+"/cancel", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// Track looks an order up by its public order number, no auth required.
func (s *OrderService) Track(ctx context.Context, orderNumber string) (*models.Order, error) {
	var resp OrderResponse
	if err := s.Client.Get(ctx, "/track/"+orderNumber, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}
