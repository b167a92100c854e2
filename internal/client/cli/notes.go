package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aislekit/aislekit/internal/client/models"
)

func (a *App) Notes(ctx context.Context, args []string) error {
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
		if err := a.notes.Load(ctx, a.tenant); err != nil {
			log.Printf("error loading notes: %v", err)
			return err
		}
		for _, n := range a.notes.Ordered() {
			pin := " "
			if n.Pinned {
				pin = "*"
			}
			printlnFn(fmt.Sprintf("  %s %s  %s", pin, n.ID, n.Title))
		}
		return nil

	case "add":
		title, err := GetSimpleText(a.reader, "Note title", os.Stdout)
		if err != nil {
			return err
		}
		body, err := GetMultiline(a.reader, "Note body", os.Stdout)
		if err != nil {
			return err
		}
		if err := a.notes.Add(ctx, a.tenant, models.Note{Title: title, Body: body}); err != nil {
			log.Printf("error adding note: %v", err)
			return err
		}
		printlnFn("Note added")
		return nil

	case "search":
		if len(args) < 2 {
			printlnFn("Usage: notes search <query>")
			return nil
		}
		for _, n := range a.notes.Search(args[1]) {
			printlnFn(fmt.Sprintf("  %s  %s", n.ID, n.Title))
		}
		return nil

	case "delete":
		if len(args) != 2 {
			printlnFn("Usage: notes delete <id>")
			return nil
		}
		if err := a.notes.Delete(ctx, a.tenant, args[1]); err != nil {
			log.Printf("error deleting note: %v", err)
			return err
		}
		return nil

	default:
		printlnFn("Usage: notes [list|add|search <query>|delete <id>]")
		return nil
	}
}
