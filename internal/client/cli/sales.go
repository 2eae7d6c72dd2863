package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (a *App) renderSales(ctx context.Context) error {
	for {
		sales, err := a.gw.GetSales(ctx)
		if err != nil {
			a.handleCallError(ctx, err)
			return nil
		}

		var total float64
		tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tPRODUCT\tQUANTITY\tPRICE\tNOTES\tDATE")
		for _, s := range sales {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%s\t%s\n", s.ID, s.ProductName, s.Quantity, s.Price, s.Notes, s.CreatedAt)
			total += s.Price * float64(s.Quantity)
		}
		tw.Flush()
		a.printf("%d sale(s), %.2f total\n", len(sales), total)

		action, err := getSimpleText(a.reader, "Action: add, delete, refresh, back", a.out)
		if err != nil {
			return err
		}
		switch action {
		case "add":
			a.addSale(ctx)
		case "delete":
			a.deleteSale(ctx)
		case "refresh":
		case "back", "":
			return nil
		default:
			a.printf("Unknown action: %s\n", action)
		}
	}
}

func (a *App) addSale(ctx context.Context) {
	productID, err := a.getInt64("Product id")
	if err != nil {
		return
	}
	quantity, err := a.getInt64("Quantity")
	if err != nil {
		return
	}
	price, err := a.getFloat("Price")
	if err != nil {
		return
	}
	notes, err := getSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return
	}

	a.printf("Adding...\n")
	if err := a.gw.AddSale(ctx, productID, quantity, price, notes); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Sale recorded.\n")
	a.notifyBestEffort(ctx, fmt.Sprintf("Sale recorded: product %d x%d", productID, quantity), "sale")
}

func (a *App) deleteSale(ctx context.Context) {
	id, err := a.getInt64("Sale id")
	if err != nil {
		return
	}
	ok, err := a.confirm("Delete this sale?")
	if err != nil || !ok {
		return
	}

	if err := a.gw.DeleteSale(ctx, id); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Sale deleted.\n")
}
