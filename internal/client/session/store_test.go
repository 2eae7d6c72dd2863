package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/inventorypro/cli/internal/client/models"
)

var dbSeq atomic.Int64

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:session_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE state (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func newStore(t *testing.T, db *sql.DB) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), db)
	require.NoError(t, err)
	return s
}

func TestStore_EmptyDefaults(t *testing.T) {
	s := newStore(t, setupDB(t))
	assert.Nil(t, s.User())
	assert.False(t, s.LoggedIn())
	assert.Equal(t, DefaultView, s.ActiveView())
}

func TestStore_SetUser_PersistsAcrossRestart(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := newStore(t, db)
	u := &models.User{ID: 3, Username: "amira", Email: "amira@shop.io", Role: models.RoleAdmin}
	require.NoError(t, s.SetUser(ctx, u))
	require.NoError(t, s.SetActiveView(ctx, "products"))

	// A new Store over the same DB simulates a process restart.
	s2 := newStore(t, db)
	got := s2.User()
	require.NotNil(t, got)
	assert.Equal(t, "amira", got.Username)
	assert.True(t, s2.LoggedIn())
	assert.Equal(t, "products", s2.ActiveView())
}

func TestStore_User_ReturnsCopy(t *testing.T) {
	db := setupDB(t)
	s := newStore(t, db)
	require.NoError(t, s.SetUser(context.Background(), &models.User{ID: 1, Username: "amira"}))

	got := s.User()
	got.Username = "mutated"
	assert.Equal(t, "amira", s.User().Username)
}

func TestStore_Clear_TearsDownAndResetsView(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := newStore(t, db)
	require.NoError(t, s.SetUser(ctx, &models.User{ID: 1, Username: "amira"}))
	require.NoError(t, s.SetActiveView(ctx, "dashboard"))

	require.NoError(t, s.Clear(ctx))
	assert.Nil(t, s.User())
	assert.Equal(t, DefaultView, s.ActiveView())

	s2 := newStore(t, db)
	assert.Nil(t, s2.User())
	assert.Equal(t, DefaultView, s2.ActiveView())
}

func TestStore_Subscribe_NotifiedOnChanges(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := newStore(t, db)

	var gotUsers []*models.User
	s.Subscribe(func(u *models.User) { gotUsers = append(gotUsers, u) })

	require.NoError(t, s.SetUser(ctx, &models.User{ID: 1, Username: "amira"}))
	require.NoError(t, s.SetUser(ctx, &models.User{ID: 1, Username: "amira2"}))
	require.NoError(t, s.Clear(ctx))

	require.Len(t, gotUsers, 3)
	assert.Equal(t, "amira", gotUsers[0].Username)
	assert.Equal(t, "amira2", gotUsers[1].Username)
	assert.Nil(t, gotUsers[2])
}

func TestStore_CorruptUserRecord_TreatedAsLoggedOut(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO state(key, value) VALUES ('user', 'not-json')`)
	require.NoError(t, err)

	s := newStore(t, db)
	assert.Nil(t, s.User())
	assert.False(t, s.LoggedIn())
}
