package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/shopspring/decimal"
)

func (a *App) Vendors(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		return a.listVendors(ctx)
	case "add":
		return a.addVendor(ctx)
	case "delete":
		if len(args) != 2 {
			printlnFn("Usage: vendors delete <id>")
			return nil
		}
		if err := a.vendors.Delete(ctx, a.tenant, args[1]); err != nil {
			log.Printf("error deleting vendor: %v", err)
			return err
		}
		return nil
	default:
		printlnFn("Usage: vendors [list|add|delete <id>]")
		return nil
	}
}

func (a *App) listVendors(ctx context.Context) error {
	if err := a.vendors.Load(ctx, a.tenant); err != nil {
		log.Printf("error loading vendors: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Vendors (booked total %s, outstanding %s):",
		a.vendors.TotalContracted(), a.vendors.TotalOutstanding()))
	for _, v := range a.vendors.Collection() {
		printlnFn(fmt.Sprintf("  %s  %-25s %-12s %-12s %s", v.ID, v.Name, v.Category, v.Status, v.ContractAmount))
	}
	return nil
}

func (a *App) addVendor(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Vendor name", os.Stdout)
	if err != nil {
		return err
	}
	category, err := GetSimpleText(a.reader, "Category (venue, catering, photo, ...)", os.Stdout)
	if err != nil {
		return err
	}
	amountStr, err := GetSimpleText(a.reader, "Contract amount (0 if unknown)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		printlnFn("Invalid amount:", amountStr)
		return nil
	}

	draft := models.Vendor{Name: name, Category: category, ContractAmount: amount}
	if err := a.vendors.Add(ctx, a.tenant, draft); err != nil {
		log.Printf("error adding vendor: %v", err)
		return err
	}
	printlnFn("Vendor added")
	return nil
}
