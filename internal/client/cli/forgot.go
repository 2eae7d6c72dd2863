package cli

import (
	"context"
	"errors"

	"github.com/inventorypro/cli/internal/client/recovery"
	"github.com/inventorypro/cli/internal/common"
)

// wizardMessage maps the wizard's validation errors to the inline text shown
// near the form.
func wizardMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, recovery.ErrEmailRequired):
		return "Please enter your email.", true
	case errors.Is(err, recovery.ErrEmailInvalid):
		return "Please enter a valid email address.", true
	case errors.Is(err, recovery.ErrCodeFormat):
		return "Verification code must be 6 digits.", true
	case errors.Is(err, recovery.ErrPasswordTooShort):
		return "Password must be at least 6 characters long.", true
	default:
		return "", false
	}
}

// renderForgot drives the three-step reset wizard. Entering the screen
// always starts a fresh wizard, so earlier partial attempts leave nothing
// behind. Typing "back" at any prompt exits the machine entirely; there is
// no stepping backward.
func (a *App) renderForgot(ctx context.Context) error {
	if a.isLoggedIn() {
		return a.renderHome(ctx)
	}

	w := recovery.New(a.gw, func() {
		a.printf("Password reset successful! You can now login with your new password.\n")
	})
	a.wizard = w

	a.printf("--- Forgot password --- (type 'back' to return to login)\n")

	for {
		switch w.State() {
		case recovery.AwaitingEmail:
			in, err := getSimpleText(a.reader, "Email", a.out)
			if err != nil {
				return err
			}
			if in == "back" {
				return a.renderLogin(ctx)
			}
			a.printf("Sending code...\n")
			msg, err := w.SubmitEmail(ctx, in)
			if err != nil {
				a.showWizardError(ctx, err)
				continue
			}
			if msg == "" {
				msg = "Verification code sent to your email."
			}
			a.printf("%s\n", msg)

		case recovery.AwaitingCode:
			in, err := getSimpleText(a.reader, "Verification code", a.out)
			if err != nil {
				return err
			}
			if in == "back" {
				return a.renderLogin(ctx)
			}
			a.printf("Verifying...\n")
			if err := w.SubmitCode(ctx, in); err != nil {
				a.showWizardError(ctx, err)
				continue
			}
			a.printf("Code verified successfully.\n")

		case recovery.AwaitingNewPassword:
			pw, err := getPassword("New password", a.out)
			if err != nil {
				return err
			}
			a.printf("Resetting...\n")
			serr := w.SubmitPassword(ctx, string(pw))
			common.WipeByteArray(pw)
			if serr != nil {
				a.showWizardError(ctx, serr)
				continue
			}

		case recovery.Done:
			return a.renderLogin(ctx)
		}
	}
}

func (a *App) showWizardError(ctx context.Context, err error) {
	if msg, ok := wizardMessage(err); ok {
		a.printf("%s\n", msg)
		return
	}
	a.handleCallError(ctx, err)
}
