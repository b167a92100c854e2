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

type Vendors struct {
	*store.Store[models.Vendor]
}

func NewVendors(repo remote.Repository[models.Vendor], logger logging.Logger) *Vendors {
	return &Vendors{Store: store.New[models.Vendor](repo, logger)}
}

func (v *Vendors) Add(ctx context.Context, tenant models.TenantID, draft models.Vendor) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	if draft.Status == "" {
		draft.Status = models.VendorResearching
	}
	return v.Create(ctx, tenant, draft)
}

// ByCategory returns the vendors in one category.
func (v *Vendors) ByCategory(category string) []models.Vendor {
	var out []models.Vendor
	for _, vendor := range v.Collection() {
		if vendor.Category == category {
			out = append(out, vendor)
		}
	}
	return out
}

// Booked returns vendors with signed contracts.
func (v *Vendors) Booked() []models.Vendor {
	var out []models.Vendor
	for _, vendor := range v.Collection() {
		if vendor.Status == models.VendorBooked {
			out = append(out, vendor)
		}
	}
	return out
}

// TotalContracted sums contract amounts across booked vendors.
func (v *Vendors) TotalContracted() decimal.Decimal {
	total := decimal.Zero
	for _, vendor := range v.Booked() {
		total = total.Add(vendor.ContractAmount)
	}
	return total
}

// TotalOutstanding sums the unpaid balance across booked vendors.
func (v *Vendors) TotalOutstanding() decimal.Decimal {
	total := decimal.Zero
	for _, vendor := range v.Booked() {
		total = total.Add(vendor.Outstanding())
	}
	return total
}
