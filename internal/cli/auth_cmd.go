package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopeasy/storefront/internal/services"
)

func newLoginCmd(app *App) *cobra.Command {
	var creds services.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Session.Login(app.ctx(), creds)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Welcome back, %s!\n", sess.FirstName)
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var reg services.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Session.Register(app.ctx(), reg)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Welcome to ShopEasy, %s!\n", sess.FirstName)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&reg.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "account password")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "phone number")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout(app.ctx())
			fmt.Fprintln(app.Out, "Logged out successfully")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.Session.Current()
			if sess == nil {
				if claims, err := app.Session.TokenClaims(); err == nil && claims != nil {
					fmt.Fprintf(app.Out, "not logged in (stale token for subject %s, role %s)\n",
						claims.Subject, claims.Role)
					return nil
				}
				fmt.Fprintln(app.Out, "not logged in")
				return nil
			}
			fmt.Fprintf(app.Out, "%s %s <%s> role=%s\n", sess.FirstName, sess.LastName, sess.Email, sess.Role)
			return nil
		},
	}
}
