package session

import (
	"context"
	"sync"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/internal/services"
	"github.com/shopeasy/storefront/pkg/logging"
	"github.com/shopeasy/storefront/pkg/tokens"
)

// Session is the authenticated identity for the current login. The bearer
// token itself lives in the token source, not here.
type Session struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// Store holds the current session and notifies subscribers on every
// authenticated/unauthenticated transition.
type Store struct {
	auth   *services.AuthService
	users  *services.UserService
	tokens api.TokenSource

	mu      sync.RWMutex
	current *Session
	nextID  int
	subs    map[int]func(authenticated bool)
}

func NewStore(auth *services.AuthService, users *services.UserService, tokens api.TokenSource) *Store {
	return &Store{
		auth:   auth,
		users:  users,
		tokens: tokens,
		subs:   make(map[int]func(bool)),
	}
}

// Initialize restores the session from a persisted token. It never returns
// an error: any failure resolves to the unauthenticated state. The profile
// fetch already gets one refresh-and-retry on 401 from the API client; a
// second failure of any kind discards the token.
func (s *Store) Initialize(ctx context.Context) {
	l := logging.FromContext(ctx).With("svc", "session.initialize")

	if s.tokens.Token() == "" {
		l.Info("no stored token, starting unauthenticated")
		s.set(nil)
		return
	}

	user, err := s.users.Profile(ctx)
	if err != nil {
		l.Warn("profile fetch failed, retrying once", "error", err)
		user, err = s.users.Profile(ctx)
	}
	if err != nil {
		l.Warn("session restore failed, discarding token", "error", err)
		s.tokens.Clear()
		s.set(nil)
		return
	}

	l.Info("session restored", "email", user.Email, "role", user.Role)
	s.set(fromUser(user))
}

// Login exchanges credentials for a token and profile. Backend errors
// (invalid credentials included) propagate to the caller unchanged.
func (s *Store) Login(ctx context.Context, creds services.Credentials) (*Session, error) {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	sess := fromUser(&resp.User)
	s.set(sess)
	return sess, nil
}

func (s *Store) Register(ctx context.Context, reg services.Registration) (*Session, error) {
	resp, err := s.auth.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	sess := fromUser(&resp.User)
	s.set(sess)
	return sess, nil
}

// Logout informs the backend best-effort and unconditionally clears the
// local session and token.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		logging.FromContext(ctx).Warn("clearing token failed", "error", err)
	}
	s.set(nil)
}

func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Role == "admin"
}

// TokenClaims decodes the held bearer token without verifying it, the
// way the original client reads identity hints before the backend has
// confirmed the session. Returns nil when no token is held.
func (s *Store) TokenClaims() (*tokens.AccessClaims, error) {
	raw := s.tokens.Token()
	if raw == "" {
		return nil, nil
	}
	return tokens.Decode(raw)
}

// Subscribe registers fn to run on every transition; it fires immediately
// with the current state so late subscribers converge. Returns unsubscribe.
func (s *Store) Subscribe(fn func(authenticated bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	authenticated := s.current != nil
	s.mu.Unlock()

	fn(authenticated)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) set(sess *Session) {
	s.mu.Lock()
	was := s.current != nil
	s.current = sess
	now := s.current != nil
	fns := make([]func(bool), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	if was == now {
		return
	}
	for _, fn := range fns {
		fn(now)
	}
}

func fromUser(u *models.User) *Session {
	return &Session{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}
