package cli

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
	"github.com/shopeasy/storefront/internal/services"
	"github.com/shopeasy/storefront/internal/session"
)

type memTokens struct{ token string }

func (m *memTokens) Token() string        { return m.token }
func (m *memTokens) Store(t string) error { m.token = t; return nil }
func (m *memTokens) Clear() error         { m.token = ""; return nil }

func sessionWithRole(t *testing.T, role string) *session.Store {
	t.Helper()
	e := echo.New()
	e.POST("/auth/login", func(c echo.Context) error {
		return c.JSON(http.StatusOK, services.AuthResponse{
			User:        models.User{ID: "u1", FirstName: "John", Email: "john@example.com", Role: role},
			AccessToken: "tok",
		})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	tokens := &memTokens{}
	client := api.NewClient(srv.URL, 5*time.Second, tokens)
	store := session.NewStore(&services.AuthService{Client: client, Tokens: tokens}, &services.UserService{Client: client}, tokens)

	if role != "" {
		_, err := store.Login(context.Background(), services.Credentials{Email: "john@example.com", Password: "password123"})
		require.NoError(t, err)
	}
	return store
}

func TestRequireAuth_Unauthenticated(t *testing.T) {
	t.Parallel()

	app := &App{Session: sessionWithRole(t, "")}
	assert.ErrorIs(t, requireAuth(app), errLoginRequired)
	assert.ErrorIs(t, requireAdmin(app), errLoginRequired)
}

func TestRequireAdmin_RegularUserIsRedirected(t *testing.T) {
	t.Parallel()

	app := &App{Session: sessionWithRole(t, "user")}
	assert.NoError(t, requireAuth(app))
	assert.ErrorIs(t, requireAdmin(app), errAdminOnly)
}

func TestRequireAdmin_Admin(t *testing.T) {
	t.Parallel()

	app := &App{Session: sessionWithRole(t, "admin")}
	assert.NoError(t, requireAdmin(app))
}
