package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"

	"github.com/shopeasy/storefront/pkg/logging"
)

// TokenSource holds the bearer token across requests. It is the only
// cross-request shared mutable resource; Store/Clear are called by
// login, refresh and logout only.
type TokenSource interface {
	Token() string
	Store(token string) error
	Clear() error
}

// Client is the JSON round-trip core every service wrapper goes through.
// It injects the bearer token and performs at most one refresh-and-retry
// when an authenticated request comes back 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do issues one JSON request and decodes the response into out (out may be
// nil). A 401 on a request that carried a token triggers exactly one
// refresh followed by one replay; a 401 on the replay surfaces as
// ErrUnauthorized with the token discarded.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	token := c.tokens.Token()

	err := c.roundTrip(ctx, method, path, body, out, token)
	if err == nil || !errors.Is(err, ErrUnauthorized) || token == "" {
		return err
	}

	l := logging.FromContext(ctx).With("method", method, "path", path)
	l.Info("got 401, attempting token refresh")

	newToken, refreshErr := c.refresh(ctx, token)
	if refreshErr != nil {
		l.Warn("token refresh failed", "error", refreshErr)
		c.tokens.Clear()
		return &Error{Status: http.StatusUnauthorized, Message: "session expired"}
	}

	// One replay only. A second 401 means the new token is rejected too.
	err = c.roundTrip(ctx, method, path, body, out, newToken)
	if err != nil && errors.Is(err, ErrUnauthorized) {
		c.tokens.Clear()
	}
	return err
}

// roundTrip performs exactly one HTTP exchange: transport failures wrap
// ErrUnavailable, non-2xx responses come back as classified *Error.
func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any, token string) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) refresh(ctx context.Context, staleToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh-token", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if staleToken != "" {
		req.Header.Set("Authorization", "Bearer "+staleToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh failed with status: %d", resp.StatusCode)
	}

	var result struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("refresh returned empty token")
	}

	if err := c.tokens.Store(result.AccessToken); err != nil {
		return "", fmt.Errorf("store refreshed token: %w", err)
	}
	return result.AccessToken, nil
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &Error{Status: resp.StatusCode, Message: payload.Message}
}
