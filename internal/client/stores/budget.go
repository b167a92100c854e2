package stores

import (
	"context"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/client/store"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget holds two collections, categories and expenses, each with its own
// repository and optimistic store.
type Budget struct {
	Categories *store.Store[models.BudgetCategory]
	Expenses   *store.Store[models.Expense]
}

func NewBudget(categories remote.Repository[models.BudgetCategory], expenses remote.Repository[models.Expense], logger logging.Logger) *Budget {
	return &Budget{
		Categories: store.New[models.BudgetCategory](categories, logger),
		Expenses:   store.New[models.Expense](expenses, logger),
	}
}

// Load loads both collections; the first failure wins.
func (b *Budget) Load(ctx context.Context, tenant models.TenantID) error {
	if err := b.Categories.Load(ctx, tenant); err != nil {
		return err
	}
	return b.Expenses.Load(ctx, tenant)
}

func (b *Budget) AddCategory(ctx context.Context, tenant models.TenantID, draft models.BudgetCategory) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	return b.Categories.Create(ctx, tenant, draft)
}

func (b *Budget) AddExpense(ctx context.Context, tenant models.TenantID, draft models.Expense) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	return b.Expenses.Create(ctx, tenant, draft)
}

// SpentByCategory sums expense amounts per category id.
func (b *Budget) SpentByCategory() map[string]decimal.Decimal {
	spent := make(map[string]decimal.Decimal)
	for _, e := range b.Expenses.Collection() {
		spent[e.CategoryID] = spent[e.CategoryID].Add(e.Amount)
	}
	return spent
}

// TotalAllocated sums all category allocations.
func (b *Budget) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Categories.Collection() {
		total = total.Add(c.Allocated)
	}
	return total
}

// TotalSpent sums all expenses.
func (b *Budget) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.Expenses.Collection() {
		total = total.Add(e.Amount)
	}
	return total
}

// Remaining is allocation minus spend; negative when over budget.
func (b *Budget) Remaining() decimal.Decimal {
	return b.TotalAllocated().Sub(b.TotalSpent())
}

// AffordabilitySummary compares the couple's overall budget figure against
// current allocations and spend.
type AffordabilitySummary struct {
	TotalBudget decimal.Decimal
	Allocated   decimal.Decimal
	Spent       decimal.Decimal
	// Unallocated is the budget not yet assigned to any category.
	Unallocated decimal.Decimal
	// Headroom is budget minus spend; negative when overspent.
	Headroom decimal.Decimal
}

// CanAfford reports whether an additional expense fits within the headroom.
func (s AffordabilitySummary) CanAfford(amount decimal.Decimal) bool {
	return s.Headroom.GreaterThanOrEqual(amount)
}

// Affordability summarizes how allocations and spend sit against the
// couple's overall budget figure.
func (b *Budget) Affordability(totalBudget decimal.Decimal) AffordabilitySummary {
	allocated := b.TotalAllocated()
	spent := b.TotalSpent()
	return AffordabilitySummary{
		TotalBudget: totalBudget,
		Allocated:   allocated,
		Spent:       spent,
		Unallocated: totalBudget.Sub(allocated),
		Headroom:    totalBudget.Sub(spent),
	}
}

// OverBudget returns the categories whose spend exceeds their allocation.
func (b *Budget) OverBudget() []models.BudgetCategory {
	spent := b.SpentByCategory()
	var out []models.BudgetCategory
	for _, c := range b.Categories.Collection() {
		if spent[c.ID].GreaterThan(c.Allocated) {
			out = append(out, c)
		}
	}
	return out
}
