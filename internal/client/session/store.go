// Package session holds the only cross-view mutable state of the client:
// the authenticated user record and the name of the active view. Both are
// persisted to a local sqlite state database so a restart lands the user
// where they left off. Every other package goes through Store; none touches
// persistence directly.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/inventorypro/cli/internal/client/models"
	"github.com/inventorypro/cli/internal/dbx"
)

// Persisted keys. These two are the entire durable client-side state.
const (
	keyUser       = "user"
	keyActiveView = "active_view"
)

// DefaultView is where the shell lands without a persisted view.
const DefaultView = "home"

// Store is the process-wide session holder. Written on explicit
// login/logout/profile-update actions, read reactively by dependent views.
// Safe for concurrent use.
type Store struct {
	db *sql.DB

	mu         sync.RWMutex
	user       *models.User
	activeView string
	subs       []func(*models.User)
}

// NewStore builds a Store over db and restores the persisted user and
// active view.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db, activeView: DefaultView}
	repo := newStateRepo(db)

	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		return nil, fmt.Errorf("restore user: %w", err)
	}
	if raw != nil {
		var u models.User
		if err := json.Unmarshal(raw, &u); err == nil {
			s.user = &u
		}
		// A corrupt record is treated as "not logged in".
	}

	view, err := repo.Get(ctx, keyActiveView)
	if err != nil {
		return nil, fmt.Errorf("restore active view: %w", err)
	}
	if len(view) > 0 {
		s.activeView = string(view)
	}

	return s, nil
}

// User returns a copy of the authenticated user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether an authenticated user is present.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SetUser persists u as the authenticated user and notifies subscribers.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := newStateRepo(s.db).Set(ctx, keyUser, data); err != nil {
		return err
	}

	s.mu.Lock()
	copied := *u
	s.user = &copied
	s.mu.Unlock()

	s.notify()
	return nil
}

// Clear tears the session down: the user record is removed and the active
// view returns to the default, in one transaction. Subscribers are notified
// with nil.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := newStateRepo(tx)
		if err := repo.Delete(ctx, keyUser); err != nil {
			return err
		}
		return repo.Set(ctx, keyActiveView, []byte(DefaultView))
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.activeView = DefaultView
	s.mu.Unlock()

	s.notify()
	return nil
}

// ActiveView returns the name of the last selected view.
func (s *Store) ActiveView() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeView
}

// SetActiveView persists name as the active view.
func (s *Store) SetActiveView(ctx context.Context, name string) error {
	if err := newStateRepo(s.db).Set(ctx, keyActiveView, []byte(name)); err != nil {
		return err
	}
	s.mu.Lock()
	s.activeView = name
	s.mu.Unlock()
	return nil
}

// Subscribe registers fn to run on every user change (login, logout,
// profile update). The callback receives the new user, nil on logout.
// Callbacks run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(*models.User), len(s.subs))
	copy(subs, s.subs)
	u := s.user
	var copied *models.User
	if u != nil {
		c := *u
		copied = &c
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(copied)
	}
}
