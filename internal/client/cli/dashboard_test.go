package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/inventorypro/cli/internal/client/models"
)

func TestRenderDashboard(t *testing.T) {
	gw := &fakeGateway{stats: &models.DashboardStats{
		TotalProducts:     12,
		TotalSales:        4,
		TotalStockEntries: 150,
		TotalSalesAmount:  1234.5,
		DailySales: []models.DailySale{
			{Date: "2026-08-29", Total: 100},
			{Date: "2026-08-30", Total: 1134.5},
		},
	}}
	a, out := newTestApp(t, gw)
	loginTestUser(t, a)

	if err := a.renderDashboard(context.Background()); err != nil {
		t.Fatalf("renderDashboard: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Total products:      12",
		"150 (Medium)",
		"$1234.50",
		"2026-08-29",
		"1134.50",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderDashboard_NetworkError(t *testing.T) {
	gw := &fakeGateway{statsErr: context.DeadlineExceeded}
	a, out := newTestApp(t, gw)
	loginTestUser(t, a)

	if err := a.renderDashboard(context.Background()); err != nil {
		t.Fatalf("renderDashboard: %v", err)
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Fatalf("error not surfaced: %q", out.String())
	}
}
