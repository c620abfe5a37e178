package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
)

type memTokens struct{ token string }

func (m *memTokens) Token() string        { return m.token }
func (m *memTokens) Store(t string) error { m.token = t; return nil }
func (m *memTokens) Clear() error         { m.token = ""; return nil }

func TestListParams_Encode(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ListParams{}.encode())

	q := ListParams{Search: "blue shirt", Category: "c1", MinPrice: 10, MaxPrice: 99.5, Sort: "-price", Page: 2, Limit: 20}.encode()
	assert.Equal(t, "?category=c1&limit=20&maxPrice=99.5&minPrice=10&page=2&search=blue+shirt&sort=-price", q)

	assert.Equal(t, "?page=3", ListParams{Page: 3}.encode())
}

func TestProductService_ListPassesFilters(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/products", func(c echo.Context) error {
		assert.Equal(t, "shirt", c.QueryParam("search"))
		assert.Equal(t, "2", c.QueryParam("page"))
		return c.JSON(http.StatusOK, ProductPage{
			Products:   []models.Product{{ID: "P1", Name: "Shirt", Price: 20, Stock: 3}},
			Pagination: models.Pagination{Page: 2, TotalPages: 4, Total: 31},
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	svc := &ProductService{Client: api.NewClient(srv.URL, 5*time.Second, &memTokens{})}
	page, err := svc.List(context.Background(), ListParams{Search: "shirt", Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Shirt", page.Products[0].Name)
	assert.Equal(t, 4, page.Pagination.TotalPages)
}

func TestAuthService_LoginStoresToken(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, AuthResponse{
			User:        models.User{ID: "u1", Email: "john@example.com", Role: "user"},
			AccessToken: "issued",
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	tokens := &memTokens{}
	svc := &AuthService{Client: api.NewClient(srv.URL, 5*time.Second, tokens), Tokens: tokens}

	resp, err := svc.Login(context.Background(), Credentials{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.User.Role)
	assert.Equal(t, "issued", tokens.Token())
}

func TestAuthService_LogoutAlwaysClears(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.POST("/auth/logout", func(c echo.Context) error {
		return c.NoContent(http.StatusBadGateway)
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	tokens := &memTokens{token: "held"}
	svc := &AuthService{Client: api.NewClient(srv.URL, 5*time.Second, tokens), Tokens: tokens}

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, tokens.Token())
}
