package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopeasy/storefront/internal/checkout"
	"github.com/shopeasy/storefront/internal/models"
)

func newCheckoutCmd(app *App) *cobra.Command {
	var (
		addr      models.Address
		method    string
		addressID string
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the current cart",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAuth(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := app.ctx()
			flow := checkout.New(app.Cart, app.Orders, app.Payments, app.Widget, app.Notify)

			if err := flow.Start(); err != nil {
				if errors.Is(err, checkout.ErrEmptyCart) {
					fmt.Fprintln(app.Out, "Your cart is empty, add something first.")
					return nil
				}
				return err
			}

			shipTo, err := resolveAddress(app, addr, addressID)
			if err != nil {
				return err
			}
			if err := flow.SelectAddress(*shipTo); err != nil {
				return err
			}
			if err := flow.SelectPayment(method); err != nil {
				return err
			}

			order, err := flow.PlaceOrder(ctx)
			switch {
			case errors.Is(err, checkout.ErrPaymentCancelled):
				fmt.Fprintf(app.Out, "Payment cancelled. Order %s is still pending.\n", order.OrderNumber)
				return nil
			case err != nil:
				return err
			}

			renderOrder(app.Out, order)
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", models.PaymentGateway, "payment method (cod|razorpay)")
	cmd.Flags().StringVar(&addressID, "address-id", "", "use a stored address by id")
	cmd.Flags().StringVar(&addr.Street, "street", "", "street for a new address")
	cmd.Flags().StringVar(&addr.City, "city", "", "city for a new address")
	cmd.Flags().StringVar(&addr.State, "state", "", "state for a new address")
	cmd.Flags().StringVar(&addr.ZipCode, "zip", "", "zip code for a new address")
	cmd.Flags().StringVar(&addr.Country, "country", "India", "country for a new address")
	return cmd
}

// resolveAddress picks the shipping address the way the checkout page
// does: an explicitly entered one wins, then a stored address by id, then
// the default stored address, then the first stored address.
func resolveAddress(app *App, entered models.Address, addressID string) (*models.Address, error) {
	if entered.Street != "" {
		return &entered, nil
	}

	addrs, err := app.Users.Addresses(app.ctx())
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, errors.New("no stored addresses, pass --street/--city/--state/--zip")
	}
	if addressID != "" {
		for _, a := range addrs {
			if a.ID == addressID {
				return &a, nil
			}
		}
		return nil, fmt.Errorf("address %q not found", addressID)
	}
	for _, a := range addrs {
		if a.IsDefault {
			return &a, nil
		}
	}
	return &addrs[0], nil
}
