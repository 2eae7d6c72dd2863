package cli

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/inventorypro/cli/internal/client/api"
	"github.com/inventorypro/cli/internal/client/session"
	"github.com/inventorypro/cli/internal/common"
)

var validate = validator.New()

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signupForm struct {
	Username string `validate:"required,min=3,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// formMessage turns a validator error into the inline text shown near the
// form, mirroring the backend's own rules.
func formMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid input."
	}
	e := verrs[0]
	switch e.Field() {
	case "Email":
		return "Please enter a valid email address."
	case "Password":
		if e.Tag() == "min" {
			return "Password must be at least 6 characters long."
		}
		return "Please enter your password."
	case "Username":
		return "Username must be 3-30 characters."
	default:
		return "Invalid input."
	}
}

func (a *App) renderLogin(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.renderHome(ctx)
	}
	a.printf("--- Login ---\n")

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := loginForm{Email: email, Password: string(password)}
	if err := validate.Struct(form); err != nil {
		a.printf("%s\n", formMessage(err))
		return nil
	}

	a.printf("Logging in...\n")
	user, err := a.gw.Login(ctx, form.Email, form.Password)
	if err != nil {
		a.showAuthError(ctx, err)
		return nil
	}

	if err := a.store.SetUser(ctx, user); err != nil {
		a.log.Error(ctx, "saving session failed", "error", err)
	}
	if err := a.store.SetActiveView(ctx, session.DefaultView); err != nil {
		a.log.Warn(ctx, "persisting active view failed", "error", err)
	}
	a.log.Info(ctx, "logged in", "user_id", user.ID)
	a.printf("Login successful!\n")
	return a.renderHome(ctx)
}

func (a *App) renderSignup(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.renderHome(ctx)
	}
	a.printf("--- Sign up ---\n")

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := signupForm{Username: username, Email: email, Password: string(password)}
	if err := validate.Struct(form); err != nil {
		a.printf("%s\n", formMessage(err))
		return nil
	}

	a.printf("Creating account...\n")
	user, err := a.gw.Signup(ctx, form.Username, form.Email, form.Password)
	if err != nil {
		a.showAuthError(ctx, err)
		return nil
	}

	if err := a.store.SetUser(ctx, user); err != nil {
		a.log.Error(ctx, "saving session failed", "error", err)
	}
	if err := a.store.SetActiveView(ctx, session.DefaultView); err != nil {
		a.log.Warn(ctx, "persisting active view failed", "error", err)
	}
	a.printf("Welcome, %s!\n", user.Username)
	return a.renderHome(ctx)
}

// showAuthError renders a login or signup failure. There is no session to
// tear down yet, so a 401 here is a rejected credential, not an expiry; the
// server's own message is shown.
func (a *App) showAuthError(ctx context.Context, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		a.printf("%s\n", apiErr.Error())
		return
	}
	a.handleCallError(ctx, err)
}

// logout is one-click with a confirmation dialog; no password re-entry.
// Remote logout failures are ignored: the local session is torn down either
// way.
func (a *App) logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.printf("Not logged in.\n")
		return nil
	}
	ok, err := a.confirm("Log out?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.gw.Logout(ctx); err != nil {
		a.log.Warn(ctx, "remote logout failed", "error", err)
	}
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}
