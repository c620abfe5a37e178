package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopeasy/storefront/internal/models"
	"github.com/shopeasy/storefront/internal/services"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit the user profile",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return requireAuth(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Users.Profile(app.ctx())
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			if user.Phone != "" {
				fmt.Fprintf(app.Out, "Phone: %s\n", user.Phone)
			}
			for _, a := range user.Addresses {
				marker := " "
				if a.IsDefault {
					marker = "*"
				}
				fmt.Fprintf(app.Out, "%s %s  %s, %s, %s %s, %s\n",
					marker, a.ID, a.Street, a.City, a.State, a.ZipCode, a.Country)
			}
			return nil
		},
	}

	var upd services.ProfileUpdate
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Users.UpdateProfile(app.ctx(), upd)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Profile updated: %s %s\n", user.FirstName, user.LastName)
			return nil
		},
	}
	update.Flags().StringVar(&upd.FirstName, "first-name", "", "first name")
	update.Flags().StringVar(&upd.LastName, "last-name", "", "last name")
	update.Flags().StringVar(&upd.Phone, "phone", "", "phone number")

	var addr models.Address
	addAddr := &cobra.Command{
		Use:   "add-address",
		Short: "Add a shipping address",
		RunE: func(cmd *cobra.Command, args []string) error {
			addrs, err := app.Users.AddAddress(app.ctx(), addr)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Saved, %d addresses on file\n", len(addrs))
			return nil
		},
	}
	addAddr.Flags().StringVar(&addr.Street, "street", "", "street")
	addAddr.Flags().StringVar(&addr.City, "city", "", "city")
	addAddr.Flags().StringVar(&addr.State, "state", "", "state")
	addAddr.Flags().StringVar(&addr.ZipCode, "zip", "", "zip code")
	addAddr.Flags().StringVar(&addr.Country, "country", "India", "country")
	addAddr.Flags().BoolVar(&addr.IsDefault, "default", false, "make this the default address")
	addAddr.MarkFlagRequired("street")
	addAddr.MarkFlagRequired("city")
	addAddr.MarkFlagRequired("state")
	addAddr.MarkFlagRequired("zip")

	rmAddr := &cobra.Command{
		Use:   "rm-address <address-id>",
		Short: "Delete a shipping address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.DeleteAddress(app.ctx(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(app.Out, "Address removed")
			return nil
		},
	}

	cmd.AddCommand(update, addAddr, rmAddr)
	return cmd
}
