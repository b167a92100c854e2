package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aislekit/aislekit/internal/client/models"
)

func (a *App) Tasks(ctx context.Context, args []string) error {
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
		return a.listTasks(ctx)
	case "add":
		return a.addTask(ctx)
	case "toggle":
		if len(args) != 2 {
			printlnFn("Usage: tasks toggle <id>")
			return nil
		}
		if err := a.tasks.Toggle(ctx, a.tenant, args[1]); err != nil {
			log.Printf("error toggling task: %v", err)
			return err
		}
		return nil
	case "delete":
		if len(args) != 2 {
			printlnFn("Usage: tasks delete <id>")
			return nil
		}
		if err := a.tasks.Delete(ctx, a.tenant, args[1]); err != nil {
			log.Printf("error deleting task: %v", err)
			return err
		}
		return nil
	default:
		printlnFn("Usage: tasks [list|add|toggle <id>|delete <id>]")
		return nil
	}
}

func (a *App) listTasks(ctx context.Context) error {
	if err := a.tasks.Load(ctx, a.tenant); err != nil {
		log.Printf("error loading tasks: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Tasks (%.0f%% done, %d overdue):",
		a.tasks.CompletionRatio()*100, len(a.tasks.Overdue())))
	for _, t := range a.tasks.Collection() {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		printlnFn(fmt.Sprintf("  [%s] %s  %-30s %s", mark, t.ID, t.Title, due))
	}
	return nil
}

func (a *App) addTask(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		return err
	}
	dueStr, err := GetSimpleText(a.reader, "Due date (YYYY-MM-DD, optional)", os.Stdout)
	if err != nil {
		return err
	}

	draft := models.Task{Title: title}
	if dueStr != "" {
		due, err := time.Parse("2006-01-02", dueStr)
		if err != nil {
			printlnFn("Invalid date:", dueStr)
			return nil
		}
		draft.DueDate = &due
	}

	if err := a.tasks.Add(ctx, a.tenant, draft); err != nil {
		log.Printf("error adding task: %v", err)
		return err
	}
	printlnFn("Task added")
	return nil
}
