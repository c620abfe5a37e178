package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopeasy/storefront/internal/models"
)

func newOrdersCmd(app *App) *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Show order history",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAuth(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Orders.List(app.ctx(), page, limit)
			if err != nil {
				return err
			}
			if len(resp.Orders) == 0 {
				fmt.Fprintln(app.Out, "No orders yet.")
				return nil
			}
			renderOrders(app.Out, resp.Orders)
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")

	show := &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := app.ctx()
			order, err := app.Orders.Get(ctx, args[0])
			if err != nil {
				return err
			}
			renderOrder(app.Out, order)

			// gateway orders can settle after checkout; show the live status
			if order.PaymentDetails.Method == models.PaymentGateway {
				if status, err := app.Payments.Status(ctx, order.ID); err == nil {
					fmt.Fprintf(app.Out, "Payment status: %s\n", status.Status)
				}
			}
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.Orders.Cancel(app.ctx(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Order %s is now %s\n", order.OrderNumber, order.Status)
			return nil
		},
	}

	cmd.AddCommand(show, cancel)
	return cmd
}

// newTrackCmd is public: tracking by order number needs no session.
func newTrackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track <order-number>",
		Short: "Track an order by its order number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := app.Orders.Track(app.ctx(), args[0])
			if err != nil {
				return err
			}
			renderOrder(app.Out, order)
			return nil
		},
	}
}
