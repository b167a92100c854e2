// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/aislekit/aislekit/internal/dbx"
	"github.com/aislekit/aislekit/internal/server/migrations"
	"github.com/aislekit/aislekit/internal/server/repositories/budgetcategories"
	"github.com/aislekit/aislekit/internal/server/repositories/couples"
	"github.com/aislekit/aislekit/internal/server/repositories/documents"
	"github.com/aislekit/aislekit/internal/server/repositories/expenses"
	"github.com/aislekit/aislekit/internal/server/repositories/guests"
	"github.com/aislekit/aislekit/internal/server/repositories/milestones"
	"github.com/aislekit/aislekit/internal/server/repositories/notes"
	"github.com/aislekit/aislekit/internal/server/repositories/refreshtokens"
	"github.com/aislekit/aislekit/internal/server/repositories/tasks"
	"github.com/aislekit/aislekit/internal/server/repositories/users"
	"github.com/aislekit/aislekit/internal/server/repositories/vendors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Couples(db dbx.DBTX) couples.Repository {
	return couples.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Guests(db dbx.DBTX) guests.Repository {
	return guests.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vendors(db dbx.DBTX) vendors.Repository {
	return vendors.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return notes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Documents(db dbx.DBTX) documents.Repository {
	return documents.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Milestones(db dbx.DBTX) milestones.Repository {
	return milestones.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) BudgetCategories(db dbx.DBTX) budgetcategories.Repository {
	return budgetcategories.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Expenses(db dbx.DBTX) expenses.Repository {
	return expenses.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
