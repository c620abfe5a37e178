package services

import (
	"context"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
)

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"category"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsFeatured  bool    `json:"isFeatured,omitempty"`
}

type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// AdminService wraps the /admin CRUD surface. The backend enforces the
// admin role; the view layer additionally guards on IsAdmin before calling.
type AdminService struct {
	Client *api.Client
}

func (s *AdminService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	var product models.Product
	if err := s.Client.Post(ctx, "/admin/products", in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	var product models.Product
	if err := s.Client.Put(ctx, "/admin/products/"+id, in, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id string) error {
	return s.Client.Delete(ctx, "/admin/products/"+id, nil)
}

func (s *AdminService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.Client.Post(ctx, "/admin/categories", in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.Client.Put(ctx, "/admin/categories/"+id, in, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id string) error {
	return s.Client.Delete(ctx, "/admin/categories/"+id, nil)
}
