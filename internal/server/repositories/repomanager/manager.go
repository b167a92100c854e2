package repomanager

import (
	"context"
	"database/sql"

	"github.com/aislekit/aislekit/internal/dbx"
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
)

// RepositoryManager vends repository instances bound to a DBTX, so services
// can run several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Couples(db dbx.DBTX) couples.Repository
	Guests(db dbx.DBTX) guests.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Vendors(db dbx.DBTX) vendors.Repository
	Notes(db dbx.DBTX) notes.Repository
	Documents(db dbx.DBTX) documents.Repository
	Milestones(db dbx.DBTX) milestones.Repository
	BudgetCategories(db dbx.DBTX) budgetcategories.Repository
	Expenses(db dbx.DBTX) expenses.Repository
}
