package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopeasy/storefront/internal/api"
	"github.com/shopeasy/storefront/internal/cart"
	"github.com/shopeasy/storefront/internal/cli"
	"github.com/shopeasy/storefront/internal/config"
	"github.com/shopeasy/storefront/internal/notify"
	"github.com/shopeasy/storefront/internal/services"
	"github.com/shopeasy/storefront/internal/session"
	"github.com/shopeasy/storefront/internal/tokenstore"
	"github.com/shopeasy/storefront/pkg/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	tokens, err := tokenstore.Open(cfg.StateDBPath)
	if err != nil {
		log.Fatalf("open token store: %v", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, tokens)

	auth := &services.AuthService{Client: client, Tokens: tokens}
	users := &services.UserService{Client: client}
	products := &services.ProductService{Client: client}
	cartSvc := &services.CartService{Client: client}
	orders := &services.OrderService{Client: client}
	payments := &services.PaymentService{Client: client}
	admin := &services.AdminService{Client: client}

	bus := notify.NewBus()
	bus.Subscribe(func(n notify.Notification) {
		switch n.Level {
		case notify.LevelError:
			fmt.Fprintf(os.Stderr, "✗ %s\n", n.Message)
		default:
			fmt.Fprintf(os.Stdout, "✓ %s\n", n.Message)
		}
	})

	sessions := session.NewStore(auth, users, tokens)
	cartStore := cart.NewStore(cartSvc, bus)

	app := &cli.App{
		Session:  sessions,
		Cart:     cartStore,
		Products: products,
		Orders:   orders,
		Payments: payments,
		Users:    users,
		Admin:    admin,
		Notify:   bus,
		Widget:   &cli.TerminalWidget{In: os.Stdin, Out: os.Stdout},
		Log:      logger,
		Out:      os.Stdout,
	}

	root := cli.NewRoot(app)
	root.SetIn(os.Stdin)
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	// Cart follows the session: fetched on login, reset on logout.
	startCtx := logging.IntoContext(context.Background(), logger)
	cartStore.BindSession(startCtx, sessions)
	sessions.Initialize(startCtx)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
