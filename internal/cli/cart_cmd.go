package cli

import (
	"github.com/spf13/cobra"
)

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the shopping cart",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAuth(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCart(app.Out, app.Cart.Lines(), app.Cart.Summary())
			return nil
		},
	}

	var qty int

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := app.ctx()
			product, err := app.Products.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return app.Cart.Add(ctx, *product, qty)
		},
	}
	add.Flags().IntVar(&qty, "quantity", 1, "quantity to add")

	var updQty int
	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Cart.Update(app.ctx(), args[0], updQty)
		},
	}
	update.Flags().IntVar(&updQty, "quantity", 1, "new quantity")
	update.MarkFlagRequired("quantity")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Cart.Remove(app.ctx(), args[0])
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Cart.Clear(app.ctx())
		},
	}

	cmd.AddCommand(add, update, remove, clear)
	return cmd
}
