package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/internal/notify"
	"github.com/shopeasy/storefront/internal/services"
	"github.com/shopeasy/storefront/pkg/logging"
)

var (
	ErrQuantityOutOfRange = errors.New("quantity out of range")
	ErrNotInCart          = errors.New("product not in cart")
)

// Store mirrors the backend cart. The backend is the sole source of truth
// for totals: local state is only ever replaced wholesale by a backend
// response, never adjusted by local arithmetic. Failed mutations leave the
// prior state untouched.
type Store struct {
	svc    *services.CartService
	notify *notify.Bus

	mu      sync.RWMutex
	lines   []models.CartLine
	summary models.CartSummary

	unbind func()
}

func NewStore(svc *services.CartService, bus *notify.Bus) *Store {
	return &Store{svc: svc, notify: bus}
}

// SessionSource is the slice of the session store the cart observes.
type SessionSource interface {
	Subscribe(fn func(authenticated bool)) func()
}

// BindSession makes the store reactive to authentication transitions:
// fetch on login, reset (no network) on logout.
func (s *Store) BindSession(ctx context.Context, sess SessionSource) {
	s.unbind = sess.Subscribe(func(authenticated bool) {
		if authenticated {
			if err := s.Fetch(ctx); err != nil {
				logging.FromContext(ctx).Warn("cart fetch on login failed", "error", err)
			}
			return
		}
		s.reset()
	})
}

func (s *Store) Unbind() {
	if s.unbind != nil {
		s.unbind()
		s.unbind = nil
	}
}

func (s *Store) Fetch(ctx context.Context) error {
	resp, err := s.svc.Get(ctx)
	if err != nil {
		return err
	}
	s.apply(resp)
	return nil
}

// Add puts quantity of product in the cart. The bounds check runs before
// any network call; the backend may still reject.
func (s *Store) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 || quantity > product.Stock {
		s.notify.Error(fmt.Sprintf("quantity must be between 1 and %d", product.Stock))
		return fmt.Errorf("add %q quantity %d, stock %d: %w", product.Name, quantity, product.Stock, ErrQuantityOutOfRange)
	}

	resp, err := s.svc.Add(ctx, product.ID, quantity)
	if err != nil {
		s.notify.Error(api.UserMessage(err))
		return err
	}
	s.apply(resp)
	s.notify.Success("Added to cart!")
	return nil
}

// Update sets the quantity of a line already in the cart.
func (s *Store) Update(ctx context.Context, productID string, quantity int) error {
	line, ok := s.line(productID)
	if !ok {
		s.notify.Error("that product is not in your cart")
		return fmt.Errorf("update %q: %w", productID, ErrNotInCart)
	}
	if quantity < 1 || quantity > line.Product.Stock {
		s.notify.Error(fmt.Sprintf("quantity must be between 1 and %d", line.Product.Stock))
		return fmt.Errorf("update %q quantity %d, stock %d: %w", productID, quantity, line.Product.Stock, ErrQuantityOutOfRange)
	}

	resp, err := s.svc.Update(ctx, productID, quantity)
	if err != nil {
		s.notify.Error(api.UserMessage(err))
		return err
	}
	s.apply(resp)
	s.notify.Success("Cart updated!")
	return nil
}

func (s *Store) Remove(ctx context.Context, productID string) error {
	resp, err := s.svc.Remove(ctx, productID)
	if err != nil {
		s.notify.Error(api.UserMessage(err))
		return err
	}
	s.apply(resp)
	s.notify.Success("Removed from cart!")
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.svc.Clear(ctx); err != nil {
		s.notify.Error("Failed to clear cart")
		return err
	}
	s.reset()
	s.notify.Success("Cart cleared!")
	return nil
}

func (s *Store) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Summary() models.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}

func (s *Store) line(productID string) (models.CartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lines {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return models.CartLine{}, false
}

// apply replaces local state with a backend response. Mutation responses
// already carry post-mutation state, so no follow-up fetch is issued.
func (s *Store) apply(resp *services.CartResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = resp.Cart
	s.summary = resp.Summary
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.summary = models.CartSummary{}
}
