package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopeasy/storefront/internal/checkout"
	"github.com/shopeasy/storefront/internal/services"
)

// TerminalWidget is the hosted payment widget's terminal stand-in: it
// prints the gateway session and waits for the operator to paste the
// gateway callback, or to dismiss. Like the hosted widget, it waits
// indefinitely.
type TerminalWidget struct {
	In  io.Reader
	Out io.Writer
}

func (w *TerminalWidget) Open(ctx context.Context, session services.GatewaySession) (*checkout.WidgetCallback, error) {
	fmt.Fprintf(w.Out, "Pay %d %s for order %s (gateway order %s)\n",
		session.Amount, session.Currency, session.Order.OrderNumber, session.GatewayOrderID)
	fmt.Fprintln(w.Out, "Enter '<payment-id> <signature>' to confirm, or press Enter to cancel:")

	scanner := bufio.NewScanner(w.In)
	if !scanner.Scan() {
		return nil, checkout.ErrWidgetDismissed
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) == 0 {
		return nil, checkout.ErrWidgetDismissed
	}
	if len(fields) != 2 {
		return nil, fmt.Errorf("expected '<payment-id> <signature>', got %d fields", len(fields))
	}

	return &checkout.WidgetCallback{
		GatewayOrderID:   session.GatewayOrderID,
		GatewayPaymentID: fields[0],
		GatewaySignature: fields[1],
	}, nil
}
