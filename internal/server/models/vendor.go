package models

import "github.com/shopspring/decimal"

// Vendor is a supplier the couple is researching or has booked. Money
// amounts are exact decimals, stored as NUMERIC.
type Vendor struct {
	ID             string          `json:"id"`
	CoupleID       string          `json:"couple_id"`
	Name           string          `json:"name" validate:"required"`
	Category       string          `json:"category" validate:"required"`
	ContactName    string          `json:"contact_name,omitempty"`
	Email          string          `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string          `json:"phone,omitempty"`
	Status         string          `json:"status" validate:"required,oneof=researching contacted booked declined"`
	ContractAmount decimal.Decimal `json:"contract_amount"`
	DepositPaid    decimal.Decimal `json:"deposit_paid"`
	Notes          string          `json:"notes,omitempty"`
	Timestamps
}

func (v Vendor) EntityID() string { return v.ID }
