package cli

import "errors"

var (
	errLoginRequired = errors.New("you are not logged in, run: storefront login")
	errAdminOnly     = errors.New("admin access required, redirecting to /")
)

// requireAuth is the ProtectedRoute equivalent: authenticated-only
// commands refuse before dispatching anything.
func requireAuth(app *App) error {
	if !app.Session.IsAuthenticated() {
		return errLoginRequired
	}
	return nil
}

func requireAdmin(app *App) error {
	if err := requireAuth(app); err != nil {
		return err
	}
	if !app.Session.IsAdmin() {
		return errAdminOnly
	}
	return nil
}
