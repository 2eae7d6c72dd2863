package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// renderDashboard fetches the aggregate statistics in one call and renders
// them read-only, the daily sales series as a text table.
func (a *App) renderDashboard(ctx context.Context) error {
	stats, err := a.gw.GetDashboardStats(ctx)
	if err != nil {
		a.handleCallError(ctx, err)
		return nil
	}

	a.printf("--- Dashboard ---\n")
	a.printf("Total products:      %d\n", stats.TotalProducts)
	a.printf("Sales today:         %d\n", stats.TotalSales)
	a.printf("Stock entries:       %d (%s)\n", stats.TotalStockEntries, stats.StockLevel())
	a.printf("Total sales amount:  $%.2f\n", stats.TotalSalesAmount)

	if len(stats.DailySales) > 0 {
		a.printf("\nDaily sales:\n")
		tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tTOTAL")
		for _, d := range stats.DailySales {
			fmt.Fprintf(tw, "%s\t%.2f\n", d.Date, d.Total)
		}
		tw.Flush()
	}
	return nil
}
