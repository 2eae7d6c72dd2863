package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/inventorypro/cli/internal/client/models"
)

func TestPollNotifications_CountsUnseen(t *testing.T) {
	gw := &fakeGateway{notifications: []models.Notification{
		{ID: 1, Message: "Product added: Mouse", Seen: true},
		{ID: 2, Message: "Stock added: product 3 x10", Seen: false},
		{ID: 3, Message: "Sale recorded", Seen: false},
	}}
	a, _ := newTestApp(t, gw)
	loginTestUser(t, a)

	a.pollNotifications(context.Background())
	if got := a.unseen.Load(); got != 2 {
		t.Fatalf("unseen = %d, want 2", got)
	}
}

func TestPollNotifications_FailureKeepsCount(t *testing.T) {
	gw := &fakeGateway{notifyErr: context.DeadlineExceeded}
	a, _ := newTestApp(t, gw)
	a.unseen.Store(5)

	a.pollNotifications(context.Background())
	if got := a.unseen.Load(); got != 5 {
		t.Fatalf("unseen = %d, want 5 after a failed poll", got)
	}
}

func TestRenderNotices_MarksSeen(t *testing.T) {
	gw := &fakeGateway{notifications: []models.Notification{
		{ID: 1, Message: "Product added: Mouse", Seen: false, CreatedAt: "2026-08-30 10:00:00"},
	}}
	a, out := newTestApp(t, gw)
	loginTestUser(t, a)
	a.unseen.Store(1)

	defer stubInputs(t, "n")()

	if err := a.renderNotices(context.Background()); err != nil {
		t.Fatalf("renderNotices: %v", err)
	}
	if !gw.seenCalled {
		t.Fatalf("MarkNotificationsSeen not called")
	}
	if gw.clearedFeed {
		t.Fatalf("declined clear still deleted the feed")
	}
	if a.unseen.Load() != 0 {
		t.Fatalf("unseen badge not reset")
	}
	if !strings.Contains(out.String(), "* 2026-08-30 10:00:00  Product added: Mouse") {
		t.Fatalf("unseen marker missing: %q", out.String())
	}
}

func TestRenderNotices_ClearAll(t *testing.T) {
	gw := &fakeGateway{notifications: []models.Notification{{ID: 1, Message: "x", Seen: true}}}
	a, out := newTestApp(t, gw)
	loginTestUser(t, a)

	defer stubInputs(t, "y")()

	if err := a.renderNotices(context.Background()); err != nil {
		t.Fatalf("renderNotices: %v", err)
	}
	if !gw.clearedFeed {
		t.Fatalf("DeleteNotifications not called")
	}
	if !strings.Contains(out.String(), "Notifications cleared.") {
		t.Fatalf("missing message: %q", out.String())
	}
}

func TestRenderNotices_Empty(t *testing.T) {
	a, out := newTestApp(t, &fakeGateway{})
	loginTestUser(t, a)

	if err := a.renderNotices(context.Background()); err != nil {
		t.Fatalf("renderNotices: %v", err)
	}
	if !strings.Contains(out.String(), "No notifications.") {
		t.Fatalf("missing message: %q", out.String())
	}
}
