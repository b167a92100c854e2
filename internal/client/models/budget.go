package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetCategory struct {
	ID        string          `json:"id"`
	CoupleID  string          `json:"couple_id"`
	Name      string          `json:"name"`
	Allocated decimal.Decimal `json:"allocated"`
	Timestamps
}

func (c BudgetCategory) EntityID() string { return c.ID }

type Expense struct {
	ID         string          `json:"id"`
	CoupleID   string          `json:"couple_id"`
	CategoryID string          `json:"category_id"`
	VendorID   string          `json:"vendor_id,omitempty"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	Timestamps
}

func (e Expense) EntityID() string { return e.ID }

// Paid reports whether the expense has been settled.
func (e Expense) Paid() bool { return e.PaidAt != nil }
