package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aislekit/aislekit/internal/client/models"
)

func (a *App) TimelineCmd(ctx context.Context, args []string) error {
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
		if err := a.timeline.Load(ctx, a.tenant); err != nil {
			log.Printf("error loading timeline: %v", err)
			return err
		}
		if next, ok := a.timeline.Next(); ok {
			printlnFn(fmt.Sprintf("Next up: %s in %d days", next.Title, int(a.timeline.Countdown(next).Hours()/24)))
		}
		for _, m := range a.timeline.Ordered() {
			mark := " "
			if m.Done {
				mark = "x"
			}
			printlnFn(fmt.Sprintf("  [%s] %s  %s  %s", mark, m.ID, m.Date.Format("2006-01-02"), m.Title))
		}
		return nil

	case "add":
		title, err := GetSimpleText(a.reader, "Milestone title", os.Stdout)
		if err != nil {
			return err
		}
		dateStr, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD)", os.Stdout)
		if err != nil {
			return err
		}
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			printlnFn("Invalid date:", dateStr)
			return nil
		}
		if err := a.timeline.Add(ctx, a.tenant, models.Milestone{Title: title, Date: date}); err != nil {
			log.Printf("error adding milestone: %v", err)
			return err
		}
		printlnFn("Milestone added")
		return nil

	case "delete":
		if len(args) != 2 {
			printlnFn("Usage: timeline delete <id>")
			return nil
		}
		if err := a.timeline.Delete(ctx, a.tenant, args[1]); err != nil {
			log.Printf("error deleting milestone: %v", err)
			return err
		}
		return nil

	default:
		printlnFn("Usage: timeline [list|add|delete <id>]")
		return nil
	}
}
