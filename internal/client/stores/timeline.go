package stores

import (
	"context"
	"sort"
	"time"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/client/store"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/google/uuid"
)

type Timeline struct {
	*store.Store[models.Milestone]
	now func() time.Time
}

func NewTimeline(repo remote.Repository[models.Milestone], logger logging.Logger) *Timeline {
	return &Timeline{Store: store.New[models.Milestone](repo, logger), now: time.Now}
}

func (t *Timeline) Add(ctx context.Context, tenant models.TenantID, draft models.Milestone) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	return t.Create(ctx, tenant, draft)
}

// Ordered returns milestones sorted by date ascending.
func (t *Timeline) Ordered() []models.Milestone {
	out := t.Collection()
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Next returns the earliest open milestone still ahead, or false when
// everything is done.
func (t *Timeline) Next() (models.Milestone, bool) {
	now := t.now()
	var next models.Milestone
	found := false
	for _, m := range t.Collection() {
		if m.Done || m.Date.Before(now) {
			continue
		}
		if !found || m.Date.Before(next.Date) {
			next = m
			found = true
		}
	}
	return next, found
}

// Countdown is the time remaining until the given milestone.
func (t *Timeline) Countdown(m models.Milestone) time.Duration {
	return m.Date.Sub(t.now())
}
