// Package cli implements the interactive planner client: a REPL over the
// feature stores, which in turn run optimistic mutations against the remote
// repositories.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/aislekit/aislekit/internal/client/api"
	"github.com/aislekit/aislekit/internal/client/config"
	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/client/stores"
	"github.com/aislekit/aislekit/internal/logging"
)

type App struct {
	config *config.Config
	api    *api.Client
	logger logging.Logger

	// tenant is set at sign-in and cleared at sign-out; every repository
	// call receives it explicitly.
	tenant models.TenantID

	guests   *stores.Guests
	tasks    *stores.Tasks
	vendors  *stores.Vendors
	notes    *stores.Notes
	docs     *stores.Documents
	timeline *stores.Timeline
	budget   *stores.Budget

	reader *bufio.Reader
}

func NewApp(c *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.New(api.Config{
		BaseURL:        c.ServerEndpointAddr,
		Timeout:        c.RequestTimeout,
		RetryAttempts:  c.RetryAttempts,
		RetryBaseDelay: c.RetryBaseDelay,
	}, logger)

	ttl := c.CacheTTL

	return &App{
		config:   c,
		api:      apiClient,
		logger:   logger,
		guests:   stores.NewGuests(remote.NewCollection[models.Guest](apiClient, "guests", ttl), logger),
		tasks:    stores.NewTasks(remote.NewCollection[models.Task](apiClient, "tasks", ttl), logger),
		vendors:  stores.NewVendors(remote.NewCollection[models.Vendor](apiClient, "vendors", ttl), logger),
		notes:    stores.NewNotes(remote.NewCollection[models.Note](apiClient, "notes", ttl), logger),
		docs:     stores.NewDocuments(remote.NewCollection[models.Document](apiClient, "documents", ttl), apiClient, logger),
		timeline: stores.NewTimeline(remote.NewCollection[models.Milestone](apiClient, "milestones", ttl), logger),
		budget: stores.NewBudget(
			remote.NewCollection[models.BudgetCategory](apiClient, "budget-categories", ttl),
			remote.NewCollection[models.Expense](apiClient, "expenses", ttl),
			logger,
		),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return !a.tenant.IsZero()
}
