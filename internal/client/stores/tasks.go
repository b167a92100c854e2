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

type Tasks struct {
	*store.Store[models.Task]
	now func() time.Time
}

func NewTasks(repo remote.Repository[models.Task], logger logging.Logger) *Tasks {
	return &Tasks{Store: store.New[models.Task](repo, logger), now: time.Now}
}

func (t *Tasks) Add(ctx context.Context, tenant models.TenantID, draft models.Task) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}
	return t.Create(ctx, tenant, draft)
}

// Toggle flips completion state on the matching task.
func (t *Tasks) Toggle(ctx context.Context, tenant models.TenantID, id string) error {
	for _, task := range t.Collection() {
		if task.ID == id {
			task.Completed = !task.Completed
			return t.Update(ctx, tenant, task)
		}
	}
	return nil
}

// Overdue returns open tasks past their due date, oldest first.
func (t *Tasks) Overdue() []models.Task {
	now := t.now()
	var out []models.Task
	for _, task := range t.Collection() {
		if task.Overdue(now) {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(*out[j].DueDate) })
	return out
}

// Upcoming returns open tasks due within the window, soonest first.
func (t *Tasks) Upcoming(window time.Duration) []models.Task {
	now := t.now()
	cutoff := now.Add(window)
	var out []models.Task
	for _, task := range t.Collection() {
		if task.Completed || task.DueDate == nil {
			continue
		}
		if task.DueDate.After(now) && task.DueDate.Before(cutoff) {
			out = append(out, task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(*out[j].DueDate) })
	return out
}

// CompletionRatio is completed/total, 0 for an empty list.
func (t *Tasks) CompletionRatio() float64 {
	all := t.Collection()
	if len(all) == 0 {
		return 0
	}
	done := 0
	for _, task := range all {
		if task.Completed {
			done++
		}
	}
	return float64(done) / float64(len(all))
}
