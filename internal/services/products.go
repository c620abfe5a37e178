package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
)

// ListParams are the shop page's query filters. Zero values are omitted
// from the query string.
type ListParams struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
	Sort     string
	Page     int
	Limit    int
}

func (p ListParams) encode() string {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

type ProductPage struct {
	Products   []models.Product  `json:"products"`
	Pagination models.Pagination `json:"pagination"`
}

// ProductService wraps the public catalog endpoints.
type ProductService struct {
	Client *api.Client
}

func (s *ProductService) List(ctx context.Context, params ListParams) (*ProductPage, error) {
	var page ProductPage
	if err := s.Client.Get(ctx, "/products"+params.encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.Client.Get(ctx, "/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.Client.Get(ctx, "/products/featured", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.Client.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
