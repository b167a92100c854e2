package models

import "github.com/shopspring/decimal"

type VendorStatus string

const (
	VendorResearching VendorStatus = "researching"
	VendorContacted   VendorStatus = "contacted"
	VendorBooked      VendorStatus = "booked"
	VendorDeclined    VendorStatus = "declined"
)

type Vendor struct {
	ID             string          `json:"id"`
	CoupleID       string          `json:"couple_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	ContactName    string          `json:"contact_name,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Status         VendorStatus    `json:"status"`
	ContractAmount decimal.Decimal `json:"contract_amount"`
	DepositPaid    decimal.Decimal `json:"deposit_paid"`
	Notes          string          `json:"notes,omitempty"`
	Timestamps
}

func (v Vendor) EntityID() string { return v.ID }

// Outstanding is the contract balance still owed to the vendor.
func (v Vendor) Outstanding() decimal.Decimal {
	return v.ContractAmount.Sub(v.DepositPaid)
}
