package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/cart"
	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/internal/notify"
	"github.com/shopeasy/storefront/internal/services"
)

type memTokens struct{ token string }

func (m *memTokens) Token() string        { return m.token }
func (m *memTokens) Store(t string) error { m.token = t; return nil }
func (m *memTokens) Clear() error         { m.token = ""; return nil }

// scriptedWidget stands in for the hosted payment widget.
type scriptedWidget struct {
	opened   int
	callback *WidgetCallback
	err      error
}

func (w *scriptedWidget) Open(ctx context.Context, session services.GatewaySession) (*WidgetCallback, error) {
	w.opened++
	if w.err != nil {
		return nil, w.err
	}
	cb := *w.callback
	cb.GatewayOrderID = session.GatewayOrderID
	return &cb, nil
}

type checkoutBackend struct {
	mu              sync.Mutex
	orderCreates    int
	orderMutations  int
	sessionCreates  int
	verifies        int
	failOrderCreate bool
	failVerify      bool
	lastOrderReq    services.CreateOrderRequest
}

func newCheckoutEnv(t *testing.T) (*cart.Store, *checkoutBackend, *services.OrderService, *services.PaymentService, *notify.Bus) {
	t.Helper()
	b := &checkoutBackend{}

	cartLines := []models.CartLine{
		{Product: models.Product{ID: "P1", Name: "Widget", Price: 49.5, Stock: 5}, Quantity: 2},
	}

	e := echo.New()
	e.GET("/users/cart", func(c echo.Context) error {
		return c.JSON(http.StatusOK, services.CartResponse{
			Cart:    cartLines,
			Summary: models.CartSummary{TotalItems: 2, TotalAmount: 99, ItemCount: 1},
		})
	})
	e.DELETE("/users/cart", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/orders", func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.orderCreates++
		if b.failOrderCreate {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "address rejected"})
		}
		require.NoError(t, c.Bind(&b.lastOrderReq))
		return c.JSON(http.StatusCreated, services.OrderResponse{Order: models.Order{
			ID:          "o1",
			OrderNumber: "SE-1001",
			Status:      models.OrderPending,
			PaymentDetails: models.PaymentDetails{
				Method: b.lastOrderReq.PaymentMethod,
				Status: models.OrderPending,
			},
			TotalAmount: 99,
		}})
	})
	e.PUT("/orders/:id/cancel", func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.orderMutations++
		return c.JSON(http.StatusOK, services.OrderResponse{})
	})
	e.POST("/payments/create-order", func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.sessionCreates++
		return c.JSON(http.StatusOK, map[string]any{
			"key":      "rzp_test",
			"amount":   9900,
			"currency": "INR",
			"orderId":  "rzp_o1",
			"order":    map[string]string{"orderNumber": "SE-1001"},
		})
	})
	e.POST("/payments/verify-payment", func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.verifies++
		if b.failVerify {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "signature mismatch"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "paid"})
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 5*time.Second, &memTokens{token: "valid"})
	bus := notify.NewBus()
	cartStore := cart.NewStore(&services.CartService{Client: client}, bus)
	require.NoError(t, cartStore.Fetch(context.Background()))

	return cartStore, b, &services.OrderService{Client: client}, &services.PaymentService{Client: client}, bus
}

func testAddress() models.Address {
	return models.Address{
		Street:  "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		ZipCode: "560001",
		Country: "India",
	}
}

func TestCheckout_CashOnDeliveryNeverOpensWidget(t *testing.T) {
	t.Parallel()

	cartStore, backend, orders, payments, bus := newCheckoutEnv(t)
	widget := &scriptedWidget{}
	flow := New(cartStore, orders, payments, widget, bus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.SelectAddress(testAddress()))
	require.NoError(t, flow.SelectPayment(models.PaymentCOD))

	order, err := flow.PlaceOrder(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, flow.State())
	assert.Equal(t, "SE-1001", order.OrderNumber)
	assert.Zero(t, widget.opened, "cash on delivery must never invoke the widget")
	assert.Zero(t, backend.sessionCreates)
	assert.Equal(t, models.PaymentCOD, backend.lastOrderReq.PaymentMethod)
}

func TestCheckout_EmptyCartExitsBeforeOrderCreation(t *testing.T) {
	t.Parallel()

	cartStore, backend, orders, payments, bus := newCheckoutEnv(t)
	require.NoError(t, cartStore.Clear(context.Background()))

	flow := New(cartStore, orders, payments, &scriptedWidget{}, bus)
	err := flow.Start()
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StateRedirectToCart, flow.State())
	assert.Zero(t, backend.orderCreates)
}

func TestCheckout_GatewaySuccess(t *testing.T) {
	t.Parallel()

	cartStore, backend, orders, payments, bus := newCheckoutEnv(t)
	widget := &scriptedWidget{callback: &WidgetCallback{
		GatewayPaymentID: "pay_1",
		GatewaySignature: "sig_1",
	}}
	flow := New(cartStore, orders, payments, widget, bus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.SelectAddress(testAddress()))
	require.NoError(t, flow.SelectPayment(models.PaymentGateway))

	order, err := flow.PlaceOrder(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateCompleted, flow.State())
	assert.Equal(t, "SE-1001", order.OrderNumber)
	assert.Equal(t, 1, widget.opened)
	assert.Equal(t, 1, backend.verifies)
}

func TestCheckout_WidgetDismissalCancelsWithoutOrderMutation(t *testing.T) {
	t.Parallel()

	cartStore, backend, orders, payments, bus := newCheckoutEnv(t)
	widget := &scriptedWidget{err: ErrWidgetDismissed}
	flow := New(cartStore, orders, payments, widget, bus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.SelectAddress(testAddress()))
	require.NoError(t, flow.SelectPayment(models.PaymentGateway))

	order, err := flow.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrPaymentCancelled)

	assert.Equal(t, StateCancelled, flow.State())
	require.NotNil(t, order, "the pending order survives the dismissal")
	assert.Zero(t, backend.verifies)
	assert.Zero(t, backend.orderMutations, "dismissal must not mutate the order")
}

func TestCheckout_VerificationFailureIsTerminal(t *testing.T) {
	t.Parallel()

	cartStore, backend, orders, payments, bus := newCheckoutEnv(t)
	backend.failVerify = true
	widget := &scriptedWidget{callback: &WidgetCallback{
		GatewayPaymentID: "pay_1",
		GatewaySignature: "sig_bad",
	}}
	flow := New(cartStore, orders, payments, widget, bus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.SelectAddress(testAddress()))
	require.NoError(t, flow.SelectPayment(models.PaymentGateway))

	_, err := flow.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Equal(t, StateFailed, flow.State())
	assert.Equal(t, 1, backend.verifies, "verification is never retried")
}

func TestCheckout_OrderCreationFailureReturnsToCollection(t *testing.T) {
	t.Parallel()

	cartStore, backend, orders, payments, bus := newCheckoutEnv(t)
	backend.failOrderCreate = true
	flow := New(cartStore, orders, payments, &scriptedWidget{}, bus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.SelectAddress(testAddress()))
	require.NoError(t, flow.SelectPayment(models.PaymentCOD))

	_, err := flow.PlaceOrder(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrValidation)
	assert.Equal(t, 1, backend.orderCreates, "creation is never retried automatically")
	assert.Equal(t, StateCollectingAddress, flow.State())

	// the flow is re-enterable from address collection
	require.NoError(t, flow.SelectAddress(testAddress()))
}

func TestCheckout_GuardsAgainstWrongState(t *testing.T) {
	t.Parallel()

	cartStore, _, orders, payments, bus := newCheckoutEnv(t)
	flow := New(cartStore, orders, payments, &scriptedWidget{}, bus)

	assert.ErrorIs(t, flow.SelectAddress(testAddress()), ErrWrongState)

	require.NoError(t, flow.Start())
	_, err := flow.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrWrongState)

	assert.ErrorIs(t, flow.SelectAddress(models.Address{Street: "x"}), ErrIncompleteAddress)
}

func TestCheckout_PaymentMethodValidation(t *testing.T) {
	t.Parallel()

	cartStore, _, orders, payments, bus := newCheckoutEnv(t)
	flow := New(cartStore, orders, payments, &scriptedWidget{}, bus)

	require.NoError(t, flow.Start())
	require.NoError(t, flow.SelectAddress(testAddress()))
	assert.ErrorIs(t, flow.SelectPayment("bitcoin"), ErrInvalidPayment)
	require.NoError(t, flow.SelectPayment(models.PaymentGateway))
}
