package store

import "github.com/aislekit/aislekit/internal/client/models"

// Pure collection edits. Reconciliation and rollback are built from these,
// so a rollback is a function of (snapshot, outcome) and nothing else.

func replaceByID[E models.Entity](list []E, id string, e E) []E {
	out := append([]E(nil), list...)
	for i, cur := range out {
		if cur.EntityID() == id {
			out[i] = e
			break
		}
	}
	return out
}

func removeByID[E models.Entity](list []E, id string) []E {
	out := make([]E, 0, len(list))
	for _, cur := range list {
		if cur.EntityID() != id {
			out = append(out, cur)
		}
	}
	return out
}

func insertAt[E models.Entity](list []E, i int, e E) []E {
	if i < 0 {
		i = 0
	}
	if i > len(list) {
		i = len(list)
	}
	out := make([]E, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, e)
	out = append(out, list[i:]...)
	return out
}

func indexOf[E models.Entity](list []E, id string) int {
	for i, cur := range list {
		if cur.EntityID() == id {
			return i
		}
	}
	return -1
}
