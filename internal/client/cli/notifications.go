package cli

import (
	"context"
	"time"
)

// StartNotificationWatcher polls the notification feed on a fixed interval
// until ctx is cancelled. The request runs synchronously in the tick loop,
// so polls never overlap: a tick arriving while the previous request is
// still in flight is simply dropped by the ticker. Failures are logged and
// skipped; the feed is decoration, not a screen.
func (a *App) StartNotificationWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			tctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			a.pollNotifications(tctx)
			cancel()

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) pollNotifications(ctx context.Context) {
	items, err := a.gw.GetNotifications(ctx)
	if err != nil {
		a.log.Warn(ctx, "notification poll failed", "error", err)
		return
	}
	var unseen int64
	for _, n := range items {
		if !n.Seen {
			unseen++
		}
	}
	a.unseen.Store(unseen)
}

// renderNotices lists the notification feed and marks it seen.
func (a *App) renderNotices(ctx context.Context) error {
	items, err := a.gw.GetNotifications(ctx)
	if err != nil {
		a.handleCallError(ctx, err)
		return nil
	}

	if len(items) == 0 {
		a.printf("No notifications.\n")
		return nil
	}
	for _, n := range items {
		marker := " "
		if !n.Seen {
			marker = "*"
		}
		a.printf("%s %s  %s\n", marker, n.CreatedAt, n.Message)
	}

	if err := a.gw.MarkNotificationsSeen(ctx); err != nil {
		a.log.Warn(ctx, "marking notifications seen failed", "error", err)
	} else {
		a.unseen.Store(0)
	}

	clearAll, err := a.confirm("Clear all notifications?")
	if err != nil {
		return err
	}
	if clearAll {
		if err := a.gw.DeleteNotifications(ctx); err != nil {
			a.handleCallError(ctx, err)
			return nil
		}
		a.printf("Notifications cleared.\n")
	}
	return nil
}
