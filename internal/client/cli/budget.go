package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/shopspring/decimal"
)

func (a *App) BudgetCmd(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	sub := "summary"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "summary":
		return a.budgetSummary(ctx)
	case "addcat":
		return a.addBudgetCategory(ctx)
	case "addexp":
		return a.addExpense(ctx)
	case "afford":
		return a.affordability(ctx)
	default:
		printlnFn("Usage: budget [summary|addcat|addexp|afford]")
		return nil
	}
}

func (a *App) affordability(ctx context.Context) error {
	if err := a.budget.Load(ctx, a.tenant); err != nil {
		log.Printf("error loading budget: %v", err)
		return err
	}

	totalStr, err := GetSimpleText(a.reader, "Total budget", os.Stdout)
	if err != nil {
		return err
	}
	total, err := decimal.NewFromString(totalStr)
	if err != nil {
		printlnFn("Invalid amount:", totalStr)
		return nil
	}

	s := a.budget.Affordability(total)
	printlnFn(fmt.Sprintf("Budget %s: allocated %s, spent %s", s.TotalBudget, s.Allocated, s.Spent))
	printlnFn(fmt.Sprintf("Unallocated %s, headroom %s", s.Unallocated, s.Headroom))
	if s.Headroom.IsNegative() {
		printlnFn("You are over your total budget")
	}
	return nil
}

func (a *App) budgetSummary(ctx context.Context) error {
	if err := a.budget.Load(ctx, a.tenant); err != nil {
		log.Printf("error loading budget: %v", err)
		return err
	}

	spent := a.budget.SpentByCategory()
	printlnFn(fmt.Sprintf("Budget: allocated %s, spent %s, remaining %s",
		a.budget.TotalAllocated(), a.budget.TotalSpent(), a.budget.Remaining()))
	for _, c := range a.budget.Categories.Collection() {
		printlnFn(fmt.Sprintf("  %s  %-20s %10s / %s", c.ID, c.Name, spent[c.ID], c.Allocated))
	}
	if over := a.budget.OverBudget(); len(over) > 0 {
		printlnFn("Over budget:")
		for _, c := range over {
			printlnFn("  " + c.Name)
		}
	}
	return nil
}

func (a *App) addBudgetCategory(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}
	allocStr, err := GetSimpleText(a.reader, "Allocated amount", os.Stdout)
	if err != nil {
		return err
	}
	alloc, err := decimal.NewFromString(allocStr)
	if err != nil {
		printlnFn("Invalid amount:", allocStr)
		return nil
	}

	if err := a.budget.AddCategory(ctx, a.tenant, models.BudgetCategory{Name: name, Allocated: alloc}); err != nil {
		log.Printf("error adding category: %v", err)
		return err
	}
	printlnFn("Category added")
	return nil
}

func (a *App) addExpense(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Expense title", os.Stdout)
	if err != nil {
		return err
	}
	catID, err := GetSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}
	amountStr, err := GetSimpleText(a.reader, "Amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		printlnFn("Invalid amount:", amountStr)
		return nil
	}

	draft := models.Expense{Title: title, CategoryID: catID, Amount: amount}
	if err := a.budget.AddExpense(ctx, a.tenant, draft); err != nil {
		log.Printf("error adding expense: %v", err)
		return err
	}
	printlnFn("Expense added")
	return nil
}
