// Package stores builds the per-feature state holders of the planner on top
// of the generic optimistic store: each feature adds derived, computed views
// over the shared collection discipline.
package stores

import (
	"context"
	"sort"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/client/store"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/google/uuid"
)

type Guests struct {
	*store.Store[models.Guest]
}

func NewGuests(repo remote.Repository[models.Guest], logger logging.Logger) *Guests {
	return &Guests{Store: store.New[models.Guest](repo, logger)}
}

// Add creates a guest from the draft, assigning the provisional id the
// optimistic insert needs before the server responds.
func (g *Guests) Add(ctx context.Context, tenant models.TenantID, draft models.Guest) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	if draft.RSVP == "" {
		draft.RSVP = models.RSVPPending
	}
	return g.Create(ctx, tenant, draft)
}

// ByRSVP returns the guests with the given status, in collection order.
func (g *Guests) ByRSVP(status models.RSVPStatus) []models.Guest {
	var out []models.Guest
	for _, guest := range g.Collection() {
		if guest.RSVP == status {
			out = append(out, guest)
		}
	}
	return out
}

// ConfirmedHeadcount is the number of seats needed for confirmed guests,
// plus-ones included.
func (g *Guests) ConfirmedHeadcount() int {
	total := 0
	for _, guest := range g.Collection() {
		if guest.RSVP == models.RSVPConfirmed {
			total += guest.Headcount()
		}
	}
	return total
}

// RSVPCounts returns guest counts per status.
func (g *Guests) RSVPCounts() map[models.RSVPStatus]int {
	counts := make(map[models.RSVPStatus]int)
	for _, guest := range g.Collection() {
		counts[guest.RSVP]++
	}
	return counts
}

// TableSeating returns guests grouped by assigned table, tables sorted
// ascending. Guests without a table are omitted.
func (g *Guests) TableSeating() []TableGroup {
	byTable := make(map[int][]models.Guest)
	for _, guest := range g.Collection() {
		if guest.Table > 0 {
			byTable[guest.Table] = append(byTable[guest.Table], guest)
		}
	}

	out := make([]TableGroup, 0, len(byTable))
	for table, guests := range byTable {
		out = append(out, TableGroup{Table: table, Guests: guests})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Table < out[j].Table })
	return out
}

type TableGroup struct {
	Table  int
	Guests []models.Guest
}
