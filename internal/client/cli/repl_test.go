package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	args     [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Guests(ctx context.Context, args []string) error {
	return f.record("guests", args)
}
func (f *fakeExec) Tasks(ctx context.Context, args []string) error {
	return f.record("tasks", args)
}
func (f *fakeExec) Vendors(ctx context.Context, args []string) error {
	return f.record("vendors", args)
}
func (f *fakeExec) Notes(ctx context.Context, args []string) error {
	return f.record("notes", args)
}
func (f *fakeExec) Docs(ctx context.Context, args []string) error {
	return f.record("docs", args)
}
func (f *fakeExec) TimelineCmd(ctx context.Context, args []string) error {
	return f.record("timeline", args)
}
func (f *fakeExec) BudgetCmd(ctx context.Context, args []string) error {
	return f.record("budget", args)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"guests add",
		"g list",
		"budget summary",
		"timeline",
		"bogus",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{"login", "guests", "guests", "budget", "timeline", "logout"}, exec.calls)
	assert.Equal(t, []string{"add"}, exec.args[1])
	assert.Equal(t, []string{"list"}, exec.args[2])
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	assert.Empty(t, exec.calls)
}
