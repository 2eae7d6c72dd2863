package cli

import "context"

// Static informational screens. They never touch the network, so they are
// safe to show before login and while the backend is unreachable.

func (a *App) renderHome(ctx context.Context) error {
	a.printf("\n== InventoryPro ==\n")
	a.printf("Track products, stock and sales from one place.\n")
	if a.isLoggedIn() {
		u := a.store.User()
		a.printf("Signed in as %s.\n", u.Username)
		a.printf("Try: products, stock, sales, dashboard, profile, notices\n")
	} else {
		a.printf("Try: login, signup, about, contact, location\n")
	}
	return nil
}

func (a *App) renderAbout(ctx context.Context) error {
	a.printf("\n== About ==\n")
	a.printf("InventoryPro is a lightweight inventory and sales manager\n")
	a.printf("for small teams. Add products, record stock movements and\n")
	a.printf("sales, and watch the totals on the dashboard.\n")
	return nil
}

func (a *App) renderContact(ctx context.Context) error {
	a.printf("\n== Contact ==\n")
	a.printf("Email:   support@inventorypro.example\n")
	a.printf("Phone:   +1 (555) 010-4477\n")
	a.printf("Hours:   Mon-Fri 9:00-18:00\n")
	return nil
}

func (a *App) renderLocation(ctx context.Context) error {
	a.printf("\n== Location ==\n")
	a.printf("InventoryPro HQ\n")
	a.printf("221 Market Street, Suite 400\n")
	a.printf("San Francisco, CA 94105\n")
	return nil
}
