package cli

import "context"

// viewID names a screen. The REPL maps commands onto these.
type viewID string

const (
	viewHome      viewID = "home"
	viewAbout     viewID = "about"
	viewContact   viewID = "contact"
	viewLocation  viewID = "location"
	viewLogin     viewID = "login"
	viewSignup    viewID = "signup"
	viewForgot    viewID = "forgot"
	viewProducts  viewID = "products"
	viewStock     viewID = "stock"
	viewSales     viewID = "sales"
	viewDashboard viewID = "dashboard"
	viewProfile   viewID = "profile"
	viewNotices   viewID = "notices"
)

// viewEntry pairs a render function with its auth requirement. The table is
// the single place deciding which screens sit behind the login gate.
type viewEntry struct {
	requiresAuth bool
	render       func(a *App, ctx context.Context) error
}

var views = map[viewID]viewEntry{
	viewHome:      {render: (*App).renderHome},
	viewAbout:     {render: (*App).renderAbout},
	viewContact:   {render: (*App).renderContact},
	viewLocation:  {render: (*App).renderLocation},
	viewLogin:     {render: (*App).renderLogin},
	viewSignup:    {render: (*App).renderSignup},
	viewForgot:    {render: (*App).renderForgot},
	viewProducts:  {requiresAuth: true, render: (*App).renderProducts},
	viewStock:     {requiresAuth: true, render: (*App).renderStock},
	viewSales:     {requiresAuth: true, render: (*App).renderSales},
	viewDashboard: {requiresAuth: true, render: (*App).renderDashboard},
	viewProfile:   {requiresAuth: true, render: (*App).renderProfile},
	viewNotices:   {requiresAuth: true, render: (*App).renderNotices},
}

// Open selects and renders a view by name. Unknown names fall back to home.
// A protected view requested while unauthenticated renders the login screen
// in its place; the requested name is still persisted, so a later login
// lands where the user was heading.
func (a *App) Open(ctx context.Context, name string) error {
	id := viewID(name)
	entry, ok := views[id]
	if !ok {
		id, entry = viewHome, views[viewHome]
	}

	if err := a.store.SetActiveView(ctx, string(id)); err != nil {
		a.log.Warn(ctx, "persisting active view failed", "view", id, "error", err)
	}

	if entry.requiresAuth && !a.isLoggedIn() {
		a.printf("You should login or sign up first.\n")
		return a.renderLogin(ctx)
	}

	return entry.render(a, ctx)
}
