package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCategory is one envelope of the wedding budget.
type BudgetCategory struct {
	ID        string          `json:"id"`
	CoupleID  string          `json:"couple_id"`
	Name      string          `json:"name" validate:"required"`
	Allocated decimal.Decimal `json:"allocated"`
	Timestamps
}

func (c BudgetCategory) EntityID() string { return c.ID }

// Expense is a spend recorded against a budget category.
type Expense struct {
	ID         string          `json:"id"`
	CoupleID   string          `json:"couple_id"`
	CategoryID string          `json:"category_id" validate:"required"`
	VendorID   string          `json:"vendor_id,omitempty"`
	Title      string          `json:"title" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	Timestamps
}

func (e Expense) EntityID() string { return e.ID }
