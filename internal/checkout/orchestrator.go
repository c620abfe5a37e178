package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopeasy/storefront/internal/cart"
	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/internal/notify"
	"github.com/shopeasy/storefront/internal/services"
	"github.com/shopeasy/storefront/pkg/logging"
)

// State of a single checkout attempt.
type State int

const (
	StateIdle State = iota
	StateCollectingAddress
	StateCollectingPayment
	StatePlacingOrder
	StateAwaitingOnlinePayment
	StateCompleted
	StateFailed
	StateCancelled
	StateRedirectToCart
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollectingAddress:
		return "collecting_address"
	case StateCollectingPayment:
		return "collecting_payment"
	case StatePlacingOrder:
		return "placing_order"
	case StateAwaitingOnlinePayment:
		return "awaiting_online_payment"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	case StateRedirectToCart:
		return "redirect_to_cart"
	}
	return "unknown"
}

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrIncompleteAddress  = errors.New("incomplete address")
	ErrInvalidPayment     = errors.New("invalid payment method")
	ErrWrongState         = errors.New("operation not valid in current state")
	ErrPaymentCancelled   = errors.New("payment cancelled")
	ErrVerificationFailed = errors.New("payment verification failed")
)

// WidgetCallback is the success payload the hosted payment widget hands
// back for server-side verification.
type WidgetCallback struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

// ErrWidgetDismissed is returned by a widget when the user closes it
// without paying. It maps to the Cancelled terminal state.
var ErrWidgetDismissed = errors.New("payment widget dismissed")

// PaymentWidget abstracts the external hosted checkout. Open blocks until
// the widget reports success, dismissal or failure; there is no client-side
// timeout.
type PaymentWidget interface {
	Open(ctx context.Context, session services.GatewaySession) (*WidgetCallback, error)
}

// Orchestrator drives one checkout attempt: address collection, order
// creation, then payment completion. It is single use; create a fresh one
// per attempt.
type Orchestrator struct {
	cart     *cart.Store
	orders   *services.OrderService
	payments *services.PaymentService
	widget   PaymentWidget
	notify   *notify.Bus

	mu      sync.Mutex
	state   State
	address models.Address
	method  string
	order   *models.Order
}

func New(c *cart.Store, orders *services.OrderService, payments *services.PaymentService, widget PaymentWidget, bus *notify.Bus) *Orchestrator {
	return &Orchestrator{
		cart:     c,
		orders:   orders,
		payments: payments,
		widget:   widget,
		notify:   bus,
		state:    StateIdle,
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Order is the order created by this attempt, if any.
func (o *Orchestrator) Order() *models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.order == nil {
		return nil
	}
	cp := *o.order
	return &cp
}

// Start enters the flow. An empty cart exits straight to the
// redirect-to-cart terminal state.
func (o *Orchestrator) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateIdle {
		return fmt.Errorf("start in state %s: %w", o.state, ErrWrongState)
	}
	if o.cart.IsEmpty() {
		o.state = StateRedirectToCart
		return ErrEmptyCart
	}
	o.state = StateCollectingAddress
	return nil
}

// SelectAddress resolves the shipping address, either a stored one or a
// freshly entered one. All fields but isDefault are required.
func (o *Orchestrator) SelectAddress(addr models.Address) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateCollectingAddress {
		return fmt.Errorf("select address in state %s: %w", o.state, ErrWrongState)
	}
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" || addr.Country == "" {
		return ErrIncompleteAddress
	}
	o.address = addr
	o.state = StateCollectingPayment
	return nil
}

func (o *Orchestrator) SelectPayment(method string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != StateCollectingPayment {
		return fmt.Errorf("select payment in state %s: %w", o.state, ErrWrongState)
	}
	if method != models.PaymentCOD && method != models.PaymentGateway {
		return fmt.Errorf("method %q: %w", method, ErrInvalidPayment)
	}
	o.method = method
	return nil
}

// PlaceOrder creates the remote order and completes payment. Cash on
// delivery completes on creation alone; the online gateway hands control
// to the widget and waits for its callback. Order-creation failure is
// never retried automatically: the flow returns to address collection with
// the error surfaced.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (*models.Order, error) {
	o.mu.Lock()
	if o.state != StateCollectingPayment || o.method == "" {
		state := o.state
		o.mu.Unlock()
		return nil, fmt.Errorf("place order in state %s: %w", state, ErrWrongState)
	}
	if o.cart.IsEmpty() {
		o.state = StateRedirectToCart
		o.mu.Unlock()
		return nil, ErrEmptyCart
	}
	o.state = StatePlacingOrder
	address, method := o.address, o.method
	o.mu.Unlock()

	l := logging.FromContext(ctx).With("svc", "checkout", "method", method)

	order, err := o.orders.Create(ctx, services.CreateOrderRequest{
		ShippingAddress: address,
		PaymentMethod:   method,
	})
	if err != nil {
		l.Warn("order creation failed", "error", err)
		o.setState(StateCollectingAddress)
		return nil, err
	}

	o.mu.Lock()
	o.order = order
	o.mu.Unlock()
	l.Info("order created", "order_number", order.OrderNumber)
	o.notify.Success("Order placed successfully!")

	if method == models.PaymentCOD {
		o.setState(StateCompleted)
		return order, nil
	}

	o.setState(StateAwaitingOnlinePayment)
	if err := o.completeOnlinePayment(ctx, order); err != nil {
		return order, err
	}
	o.setState(StateCompleted)
	o.notify.Success("Payment successful!")
	return order, nil
}

// completeOnlinePayment runs the gateway leg: create a payment session,
// open the widget, verify the callback. Dismissal cancels with no order
// mutation; a failed verification is terminal and the order stays pending
// server-side.
func (o *Orchestrator) completeOnlinePayment(ctx context.Context, order *models.Order) error {
	l := logging.FromContext(ctx).With("svc", "checkout.payment", "order_id", order.ID)

	session, err := o.payments.CreateGatewayOrder(ctx, order.ID)
	if err != nil {
		l.Warn("gateway session creation failed", "error", err)
		o.setState(StateFailed)
		o.notify.Error("Failed to initiate payment")
		return err
	}

	callback, err := o.widget.Open(ctx, *session)
	if err != nil {
		if errors.Is(err, ErrWidgetDismissed) {
			l.Info("payment widget dismissed")
			o.setState(StateCancelled)
			o.notify.Error("Payment cancelled")
			return ErrPaymentCancelled
		}
		l.Warn("payment widget failed", "error", err)
		o.setState(StateFailed)
		o.notify.Error("Payment failed. Please contact support.")
		return err
	}

	verify := services.VerifyRequest{
		GatewayOrderID:   callback.GatewayOrderID,
		GatewayPaymentID: callback.GatewayPaymentID,
		GatewaySignature: callback.GatewaySignature,
		OrderID:          order.ID,
	}
	if err := o.payments.Verify(ctx, verify); err != nil {
		// A charge may already have happened; never retry automatically.
		l.Error("payment verification failed", "error", err)
		o.setState(StateFailed)
		o.notify.Error("Payment verification failed. Please contact support.")
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	l.Info("payment verified")
	return nil
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
}
