package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/inventorypro/cli/internal/common"
)

func (a *App) renderProfile(ctx context.Context) error {
	for {
		user, err := a.gw.GetProfile(ctx)
		if err != nil {
			a.handleCallError(ctx, err)
			return nil
		}

		a.printf("--- Profile ---\n")
		a.printf("Username: %s\nEmail:    %s\nRole:     %s\n", user.Username, user.Email, user.Role)
		if user.AvatarURL != "" {
			a.printf("Avatar:   %s\n", user.AvatarURL)
		}

		actions := "Action: edit, password, avatar, delete, logout, back"
		if user.IsAdmin() {
			actions = "Action: edit, password, avatar, delete, logout, users, deluser, back"
		}
		action, err := getSimpleText(a.reader, actions, a.out)
		if err != nil {
			return err
		}
		switch action {
		case "edit":
			a.editProfile(ctx, user.ID)
		case "password":
			a.changePassword(ctx, user.ID)
		case "avatar":
			a.uploadAvatar(ctx)
		case "delete":
			if a.deleteAccount(ctx) {
				return nil
			}
		case "logout":
			if err := a.logout(ctx); err != nil {
				return err
			}
			if !a.isLoggedIn() {
				return nil
			}
		case "users":
			if user.IsAdmin() {
				a.listUsers(ctx)
			} else {
				a.printf("Unknown action: %s\n", action)
			}
		case "deluser":
			if user.IsAdmin() {
				a.deleteUserByAdmin(ctx)
			} else {
				a.printf("Unknown action: %s\n", action)
			}
		case "back", "":
			return nil
		default:
			a.printf("Unknown action: %s\n", action)
		}
	}
}

func (a *App) editProfile(ctx context.Context, id int64) {
	username, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "New email", a.out)
	if err != nil {
		return
	}

	form := struct {
		Username string `validate:"required,min=3,max=30"`
		Email    string `validate:"required,email"`
	}{username, email}
	if err := validate.Struct(form); err != nil {
		a.printf("%s\n", formMessage(err))
		return
	}

	a.printf("Saving...\n")
	user, err := a.gw.UpdateProfile(ctx, id, username, email)
	if err != nil {
		a.handleCallError(ctx, err)
		return
	}
	// The session copy follows the profile so the header and views agree.
	if err := a.store.SetUser(ctx, user); err != nil {
		a.log.Error(ctx, "saving session failed", "error", err)
	}
	a.printf("Profile updated.\n")
}

func (a *App) changePassword(ctx context.Context, id int64) {
	oldPw, err := getPassword("Current password", a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(oldPw)
	newPw, err := getPassword("New password", a.out)
	if err != nil {
		return
	}
	defer common.WipeByteArray(newPw)

	if len(newPw) < 6 {
		a.printf("Password must be at least 6 characters long.\n")
		return
	}

	a.printf("Changing password...\n")
	if err := a.gw.ChangePassword(ctx, id, string(oldPw), string(newPw)); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Password changed.\n")
}

func (a *App) uploadAvatar(ctx context.Context) {
	path, err := getSimpleText(a.reader, "Path to image file", a.out)
	if err != nil || path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		a.printf("Cannot open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	a.printf("Uploading...\n")
	url, err := a.gw.UploadAvatar(ctx, filepath.Base(path), f)
	if err != nil {
		a.handleCallError(ctx, err)
		return
	}

	if u := a.store.User(); u != nil {
		u.AvatarURL = url
		if err := a.store.SetUser(ctx, u); err != nil {
			a.log.Error(ctx, "saving session failed", "error", err)
		}
	}
	a.printf("Avatar updated: %s\n", url)
}

// deleteAccount removes the user's own account. The backend wants the
// current password as confirmation. Returns true when the account is gone
// and the profile screen must close.
func (a *App) deleteAccount(ctx context.Context) bool {
	ok, err := a.confirm("Really delete your account? This cannot be undone.")
	if err != nil || !ok {
		return false
	}
	pw, err := getPassword("Password", a.out)
	if err != nil {
		return false
	}
	defer common.WipeByteArray(pw)

	a.printf("Deleting account...\n")
	if err := a.gw.DeleteAccount(ctx, string(pw)); err != nil {
		a.handleCallError(ctx, err)
		return false
	}

	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "session teardown failed", "error", err)
	}
	a.printf("Account deleted.\n")
	return true
}

func (a *App) listUsers(ctx context.Context) {
	users, err := a.gw.GetAllUsers(ctx)
	if err != nil {
		a.handleCallError(ctx, err)
		return
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tPRODUCTS\tSALES")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", u.ID, u.Username, u.Email, u.Role, u.ProductCount, u.SaleCount)
	}
	tw.Flush()
}

func (a *App) deleteUserByAdmin(ctx context.Context) {
	id, err := a.getInt64("User id")
	if err != nil {
		return
	}
	ok, err := a.confirm("Delete this user?")
	if err != nil || !ok {
		return
	}

	if err := a.gw.DeleteUserByAdmin(ctx, id); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("User deleted.\n")
}
