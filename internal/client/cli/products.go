package cli

import (
	"context"
	"fmt"
	"regexp"
	"text/tabwriter"

	"github.com/inventorypro/cli/internal/client/api"
)

// Product names may contain only letters, digits and spaces, same rule the
// backend enforces.
var validProductName = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

func (a *App) renderProducts(ctx context.Context) error {
	for {
		products, err := a.gw.GetProducts(ctx)
		if err != nil {
			a.handleCallError(ctx, err)
			return nil
		}

		tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tDESCRIPTION")
		for _, p := range products {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.Description)
		}
		tw.Flush()
		a.printf("%d product(s)\n", len(products))

		action, err := getSimpleText(a.reader, "Action: add, update, delete, refresh, back", a.out)
		if err != nil {
			return err
		}
		switch action {
		case "add":
			a.addProduct(ctx)
		case "update":
			a.updateProduct(ctx)
		case "delete":
			a.deleteProduct(ctx)
		case "refresh":
		case "back", "":
			return nil
		default:
			a.printf("Unknown action: %s\n", action)
		}
	}
}

// promptProductInput collects the user-editable product fields. Name is
// required; description and category are optional.
func (a *App) promptProductInput() (api.ProductInput, bool, error) {
	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return api.ProductInput{}, false, err
	}
	if name == "" {
		a.printf("Product name is required\n")
		return api.ProductInput{}, false, nil
	}
	if !validProductName.MatchString(name) {
		a.printf("Product name can contain only letters, numbers, and spaces\n")
		return api.ProductInput{}, false, nil
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return api.ProductInput{}, false, err
	}
	category, err := getSimpleText(a.reader, "Category (optional)", a.out)
	if err != nil {
		return api.ProductInput{}, false, err
	}
	return api.ProductInput{Name: name, Description: description, Category: category}, true, nil
}

func (a *App) addProduct(ctx context.Context) {
	input, ok, err := a.promptProductInput()
	if err != nil || !ok {
		return
	}

	a.printf("Adding...\n")
	if err := a.gw.AddProduct(ctx, input); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Product added: %s\n", input.Name)
	a.notifyBestEffort(ctx, "Product added: "+input.Name, "product")
}

func (a *App) updateProduct(ctx context.Context) {
	id, err := a.getInt64("Product id")
	if err != nil {
		return
	}
	input, ok, err := a.promptProductInput()
	if err != nil || !ok {
		return
	}

	a.printf("Updating...\n")
	if err := a.gw.UpdateProduct(ctx, id, input); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Product updated.\n")
	a.notifyBestEffort(ctx, "Product updated: "+input.Name, "product")
}

func (a *App) deleteProduct(ctx context.Context) {
	id, err := a.getInt64("Product id")
	if err != nil {
		return
	}
	ok, err := a.confirm("Delete this product?")
	if err != nil || !ok {
		return
	}

	if err := a.gw.DeleteProduct(ctx, id); err != nil {
		a.handleCallError(ctx, err)
		return
	}
	a.printf("Product deleted.\n")
}

// notifyBestEffort posts an activity notification; failures are logged,
// never shown, so a broken notification feed cannot fail a mutation that
// already succeeded.
func (a *App) notifyBestEffort(ctx context.Context, message, target string) {
	if err := a.gw.AddNotification(ctx, message, target); err != nil {
		a.log.Warn(ctx, "posting notification failed", "error", err)
	}
}
