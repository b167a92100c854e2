package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Guests(ctx context.Context, args []string) error
	Tasks(ctx context.Context, args []string) error
	Vendors(ctx context.Context, args []string) error
	Notes(ctx context.Context, args []string) error
	Docs(ctx context.Context, args []string) error
	TimelineCmd(ctx context.Context, args []string) error
	BudgetCmd(ctx context.Context, args []string) error
}

// runREPL reads a line, parses the first token as the command, and
// dispatches to methods on a. Handler errors are logged by the handlers
// themselves; the loop only cares about I/O. Exits on EOF or exit/quit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("aisle %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: guests, tasks, vendors, notes, docs, timeline, budget, logout, exit")
				printlnFn("Each feature takes: list | add | update | delete (e.g. 'guests add')")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "g", "guests":
			_ = a.Guests(ctx, args)

		case "t", "tasks":
			_ = a.Tasks(ctx, args)

		case "v", "vendors":
			_ = a.Vendors(ctx, args)

		case "n", "notes":
			_ = a.Notes(ctx, args)

		case "d", "docs":
			_ = a.Docs(ctx, args)

		case "timeline":
			_ = a.TimelineCmd(ctx, args)

		case "b", "budget":
			_ = a.BudgetCmd(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
