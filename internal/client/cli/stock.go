package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (a *App) renderStock(ctx context.Context) error {
	for {
		entries, err := a.gw.GetStock(ctx)
		if err != nil {
			a.handleCallError(ctx, err)
			return nil
		}

		tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tPRODUCT\tQUANTITY\tNOTES\tDATE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", e.ID, e.ProductName, e.Quantity, e.Notes, e.CreatedAt)
		}
		tw.Flush()
		a.printf("%d stock entr(ies)\n", len(entries))

		action, err := getSimpleText(a.reader, "Action: add, update, delete, refresh, back", a.out)
		if err != nil {
			return err
		}
		switch action {
		case "add":
			a.addStock(ctx)
		case "update":
			a.updateStock(ctx)
		case "delete":
			a.deleteStock(ctx)
		case "refresh":
		case "back", "":
			return nil
		default:
			a.printf("Unknown action: %s\n", action)
		}
	}
}

func (a *App) addStock(ctx context.Context) {
	productID, err := a.getInt64("Product id")
	if err != nil {
		return
	}
	quantity, err := a.getInt64("Quantity")
	if err != nil {
		return
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return
	}

	a.printf("Adding...\n")
	if err := a.gw.AddStock(ctx, productID, quantity, notes); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Stock entry added.\n")
	a.notifyBestEffort(ctx, fmt.Sprintf("Stock added: product %d x%d", productID, quantity), "stock")
}

func (a *App) updateStock(ctx context.Context) {
	id, err := a.getInt64("Stock entry id")
	if err != nil {
		return
	}
	quantity, err := a.getInt64("Quantity")
	if err != nil {
		return
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return
	}

	a.printf("Updating...\n")
	if err := a.gw.UpdateStock(ctx, id, quantity, notes); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Stock entry updated.\n")
}

func (a *App) deleteStock(ctx context.Context) {
	id, err := a.getInt64("Stock entry id")
	if err != nil {
		return
	}
	ok, err := a.confirm("Delete this stock entry?")
	if err != nil || !ok {
		return
	}

	if err := a.gw.DeleteStock(ctx, id); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Stock entry deleted.\n")
}
