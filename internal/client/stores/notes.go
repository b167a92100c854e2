package stores

import (
	"context"
	"sort"
	"strings"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/client/store"
	"github.com/aislekit/aislekit/internal/logging"
	"github.com/google/uuid"
)

type Notes struct {
	*store.Store[models.Note]
}

func NewNotes(repo remote.Repository[models.Note], logger logging.Logger) *Notes {
	return &Notes{Store: store.New[models.Note](repo, logger)}
}

func (n *Notes) Add(ctx context.Context, tenant models.TenantID, draft models.Note) error {
	draft.ID = uuid.NewString()
	draft.CoupleID = string(tenant)
	return n.Create(ctx, tenant, draft)
}

// Ordered returns notes with pinned ones first, newest first within each group.
func (n *Notes) Ordered() []models.Note {
	out := n.Collection()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Search returns notes whose title or body contains the query,
// case-insensitively.
func (n *Notes) Search(query string) []models.Note {
	q := strings.ToLower(query)
	var out []models.Note
	for _, note := range n.Collection() {
		if strings.Contains(strings.ToLower(note.Title), q) || strings.Contains(strings.ToLower(note.Body), q) {
			out = append(out, note)
		}
	}
	return out
}
