package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/internal/services"
)

// newHomeCmd is the landing view: featured products and categories are
// independent fetches with no ordering dependency, so they load in
// parallel.
func newHomeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show featured products and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				featured   []models.Product
				categories []models.Category
			)
			g, ctx := errgroup.WithContext(app.ctx())
			g.Go(func() error {
				var err error
				featured, err = app.Products.Featured(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				categories, err = app.Products.Categories(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintln(app.Out, "Featured products:")
			renderProducts(app.Out, featured)
			fmt.Fprintln(app.Out, "\nCategories:")
			for _, c := range categories {
				fmt.Fprintf(app.Out, "  %s\t%s\n", c.ID, c.Name)
			}
			return nil
		},
	}
}

func newShopCmd(app *App) *cobra.Command {
	var params services.ListParams
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := app.Products.List(app.ctx(), params)
			if err != nil {
				return err
			}
			renderProducts(app.Out, page.Products)
			if page.Pagination.TotalPages > 1 {
				fmt.Fprintf(app.Out, "\npage %d of %d (%d products)\n",
					page.Pagination.Page, page.Pagination.TotalPages, page.Pagination.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Search, "search", "", "search term")
	cmd.Flags().StringVar(&params.Category, "category", "", "category id")
	cmd.Flags().Float64Var(&params.MinPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&params.MaxPrice, "max-price", 0, "maximum price")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort order (price|-price|name)")
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "page size")
	return cmd
}

func newProductCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Products.Get(app.ctx(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s\n%s\n\nPrice: %.2f\nStock: %d\nCategory: %s\n",
				p.Name, p.Description, p.Price, p.Stock, p.Category.Name)
			return nil
		},
	}
}
