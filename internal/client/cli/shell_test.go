package cli

import (
	"context"
	"strings"
	"testing"
)

func TestOpen_UnknownFallsBackToHome(t *testing.T) {
	a, out := newTestApp(t, &fakeGateway{})

	if err := a.Open(context.Background(), "no-such-view"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := a.store.ActiveView(); got != "home" {
		t.Fatalf("active view = %q, want home", got)
	}
	if !strings.Contains(out.String(), "InventoryPro") {
		t.Fatalf("home screen not rendered: %q", out.String())
	}
}

func TestOpen_ProtectedWhileLoggedOut(t *testing.T) {
	a, out := newTestApp(t, &fakeGateway{})

	defer stubInputs(t, "")()
	defer stubPassword(t, "")()

	if err := a.Open(context.Background(), "products"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !strings.Contains(out.String(), "You should login or sign up first.") {
		t.Fatalf("missing gate message: %q", out.String())
	}
	if !strings.Contains(out.String(), "--- Login ---") {
		t.Fatalf("login screen not shown: %q", out.String())
	}
	// The requested view is persisted so login lands back there.
	if got := a.store.ActiveView(); got != "products" {
		t.Fatalf("active view = %q, want products", got)
	}
}

func TestOpen_ProtectedWhileLoggedIn(t *testing.T) {
	gw := &fakeGateway{}
	a, out := newTestApp(t, gw)
	loginTestUser(t, a)

	defer stubInputs(t, "back")()

	if err := a.Open(context.Background(), "products"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !strings.Contains(out.String(), "0 product(s)") {
		t.Fatalf("products screen not rendered: %q", out.String())
	}
}

func TestOpen_PersistsPublicView(t *testing.T) {
	a, _ := newTestApp(t, &fakeGateway{})

	if err := a.Open(context.Background(), "about"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := a.store.ActiveView(); got != "about" {
		t.Fatalf("active view = %q, want about", got)
	}
}
