package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shopeasy/storefront/internal/cart"
	"github.com/shopeasy/storefront/internal/checkout"
	"github.com/shopeasy/storefront/internal/notify"
	"github.com/shopeasy/storefront/internal/services"
	"github.com/shopeasy/storefront/internal/session"
	"github.com/shopeasy/storefront/pkg/logging"
)

// App bundles the stores and service wrappers the commands dispatch into.
// Commands only read store state and call store/orchestrator methods; all
// backend traffic happens behind those.
type App struct {
	Session  *session.Store
	Cart     *cart.Store
	Products *services.ProductService
	Orders   *services.OrderService
	Payments *services.PaymentService
	Users    *services.UserService
	Admin    *services.AdminService
	Notify   *notify.Bus
	Widget   checkout.PaymentWidget

	Log *slog.Logger
	Out io.Writer
}

func (a *App) ctx() context.Context {
	return logging.IntoContext(context.Background(), a.Log)
}

// NewRoot builds the command tree.
func NewRoot(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "ShopEasy terminal storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newHomeCmd(app),
		newShopCmd(app),
		newProductCmd(app),
		newCartCmd(app),
		newCheckoutCmd(app),
		newOrdersCmd(app),
		newTrackCmd(app),
		newProfileCmd(app),
		newAdminCmd(app),
	)
	return root
}
