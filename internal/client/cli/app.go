// Package cli implements the interactive terminal UI: the REPL, the view
// registry, and one render function per screen. Screens own no durable
// state; every view refetches its collection from the backend on entry and
// issues one request per user action.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"sync/atomic"

	"github.com/inventorypro/cli/internal/client/api"
	"github.com/inventorypro/cli/internal/client/config"
	"github.com/inventorypro/cli/internal/client/models"
	"github.com/inventorypro/cli/internal/client/recovery"
	"github.com/inventorypro/cli/internal/client/session"
	"github.com/inventorypro/cli/internal/logging"
)

// Gateway is the backend surface the screens depend on. *api.Client
// implements it; tests substitute a fake.
type Gateway interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, password string) error

	GetProducts(ctx context.Context) ([]models.Product, error)
	AddProduct(ctx context.Context, p api.ProductInput) error
	UpdateProduct(ctx context.Context, id int64, p api.ProductInput) error
	DeleteProduct(ctx context.Context, id int64) error

	GetStock(ctx context.Context) ([]models.StockEntry, error)
	AddStock(ctx context.Context, productID, quantity int64, notes string) error
	UpdateStock(ctx context.Context, id, quantity int64, notes string) error
	DeleteStock(ctx context.Context, id int64) error

	GetSales(ctx context.Context) ([]models.SaleEntry, error)
	AddSale(ctx context.Context, productID, quantity int64, price float64, notes string) error
	DeleteSale(ctx context.Context, id int64) error

	GetProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, id int64, username, email string) (*models.User, error)
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
	DeleteAccount(ctx context.Context, password string) error
	DeleteUserByAdmin(ctx context.Context, id int64) error
	GetAllUsers(ctx context.Context) ([]models.UserListItem, error)
	UploadAvatar(ctx context.Context, filename string, file io.Reader) (string, error)

	GetNotifications(ctx context.Context) ([]models.Notification, error)
	AddNotification(ctx context.Context, message, targetComponent string) error
	DeleteNotifications(ctx context.Context) error
	MarkNotificationsSeen(ctx context.Context) error

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// App wires the gateway, the session store and the terminal together.
type App struct {
	config *config.Config
	gw     Gateway
	store  *session.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	wizard *recovery.Wizard
	unseen atomic.Int64
}

// NewApp builds the application: opens the local state database, restores
// the session, and constructs the API gateway.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		log.Error(ctx, "state database init failed", "path", c.StateDBPath, "error", err)
		return nil, err
	}

	store, err := session.NewStore(ctx, db)
	if err != nil {
		return nil, err
	}

	apiClient, err := api.New(c.BaseURL, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		gw:     apiClient,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.LoggedIn()
}

// Run restores the last active view, starts the notification watcher, and
// enters the REPL. It returns when the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	go a.StartNotificationWatcher(ctx, a.config.PollInterval)

	// Land on the view the user last had open.
	_ = a.Open(ctx, a.store.ActiveView())

	a.repl(ctx)
}

// handleCallError maps a gateway failure to what the user sees. A 401-family
// error tears down the session and routes to the login screen; everything
// else renders inline near the triggering form.
func (a *App) handleCallError(ctx context.Context, err error) {
	switch {
	case api.IsUnauthorized(err):
		a.log.Info(ctx, "session expired, clearing local session")
		if cerr := a.store.Clear(ctx); cerr != nil {
			a.log.Error(ctx, "session teardown failed", "error", cerr)
		}
		a.printf("Session expired. Please log in again.\n")
	case isNetworkError(err):
		a.printf("Network error. Please try again.\n")
	default:
		a.printf("Error: %v\n", err)
	}
}

func isNetworkError(err error) bool {
	return errors.Is(err, api.ErrUnavailable)
}
