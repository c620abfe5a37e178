package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopeasy/storefront/internal/services"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin console (products and categories)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAdmin(app)
		},
	}
	cmd.AddCommand(newAdminProductCmd(app), newAdminCategoryCmd(app))
	return cmd
}

func newAdminProductCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Product CRUD",
	}

	var in services.ProductInput
	productFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&in.Name, "name", "", "product name")
		c.Flags().StringVar(&in.Description, "description", "", "product description")
		c.Flags().Float64Var(&in.Price, "price", 0, "unit price")
		c.Flags().IntVar(&in.Stock, "stock", 0, "stock count")
		c.Flags().StringVar(&in.CategoryID, "category", "", "category id")
		c.Flags().StringVar(&in.ImageURL, "image-url", "", "image URL")
		c.Flags().BoolVar(&in.IsFeatured, "featured", false, "feature on the landing page")
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Admin.CreateProduct(app.ctx(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created product %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	productFlags(create)
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("price")
	create.MarkFlagRequired("category")

	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Admin.UpdateProduct(app.ctx(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated product %s\n", p.ID)
			return nil
		},
	}
	productFlags(update)

	del := &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Admin.DeleteProduct(app.ctx(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Product deleted")
			return nil
		},
	}

	cmd.AddCommand(create, update, del)
	return cmd
}

func newAdminCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category CRUD",
	}

	var in services.CategoryInput

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Admin.CreateCategory(app.ctx(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Created category %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}
	create.Flags().StringVar(&in.Name, "name", "", "category name")
	create.Flags().StringVar(&in.Slug, "slug", "", "category slug")
	create.MarkFlagRequired("name")

	update := &cobra.Command{
		Use:   "update <category-id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Admin.UpdateCategory(app.ctx(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Updated category %s\n", c.ID)
			return nil
		},
	}
	update.Flags().StringVar(&in.Name, "name", "", "category name")
	update.Flags().StringVar(&in.Slug, "slug", "", "category slug")

	del := &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Admin.DeleteCategory(app.ctx(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Category deleted")
			return nil
		},
	}

	cmd.AddCommand(create, update, del)
	return cmd
}
