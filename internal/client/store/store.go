// Package store implements the observable collection state behind each
// planner feature: optimistic create/update/delete with rollback on remote
// failure, a re-entrancy guard on loads, and strict ordering of mutations.
//
// The visible collection is always one of: the last confirmed server state,
// a confirmed state plus exactly one pending optimistic mutation, or a
// confirmed state restored by rollback. Mutations pass through a
// single-writer lock, so two optimistic edits can never interleave their
// rollbacks. A load that resolves after an intervening confirmed mutation
// discards its stale result instead of overwriting the newer state.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/aislekit/aislekit/internal/client/models"
	"github.com/aislekit/aislekit/internal/client/remote"
	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/logging"
)

type Store[E models.Entity] struct {
	repo   remote.Repository[E]
	logger logging.Logger

	// writer serializes mutations end to end: optimistic apply, remote
	// call, reconcile/rollback.
	writer sync.Mutex

	mu         sync.RWMutex
	collection []E
	loading    bool
	loaded     bool
	err        error
	// generation counts confirmed mutations; Load uses it to detect that
	// its fetch result went stale while in flight.
	generation uint64
}

func New[E models.Entity](repo remote.Repository[E], logger logging.Logger) *Store[E] {
	return &Store[E]{repo: repo, logger: logger}
}

// Collection returns a copy of the current visible collection.
func (s *Store[E]) Collection() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]E(nil), s.collection...)
}

// Loading reports whether a Load is in flight.
func (s *Store[E]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Loaded reports whether at least one Load has completed successfully.
func (s *Store[E]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Err returns the error surfaced by the last failed operation, if any.
// It stays set until ClearErr or the next successful operation.
func (s *Store[E]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store[E]) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = nil
}

// Load replaces the collection with the repository's current view. A Load
// started while another is in flight is a no-op. On failure the collection
// is left unchanged and the error is surfaced.
func (s *Store[E]) Load(ctx context.Context, tenant models.TenantID) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	startGen := s.generation
	s.mu.Unlock()

	items, err := s.repo.FetchAll(ctx, tenant)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = err
		return err
	}
	if s.generation != startGen {
		// A mutation confirmed while the fetch was in flight; its state is
		// newer than this snapshot, so keep it.
		s.logger.Debug(ctx, "discarding stale load result", "tenant", string(tenant))
		return nil
	}
	s.collection = items
	s.loaded = true
	s.err = nil
	return nil
}

// Create appends the draft optimistically, then asks the repository to
// insert it. On success the provisional entity is replaced in place by the
// server's canonical version; on failure it is removed again.
func (s *Store[E]) Create(ctx context.Context, tenant models.TenantID, draft E) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	if draft.EntityID() == "" {
		err := fmt.Errorf("%w: draft needs a provisional id", common.ErrValidation)
		s.setErr(err)
		return err
	}

	s.apply(func(list []E) []E { return append(append([]E(nil), list...), draft) })

	created, err := s.repo.Create(ctx, tenant, draft)
	if err != nil {
		s.rollback(ctx, func(list []E) []E { return removeByID(list, draft.EntityID()) }, err)
		return err
	}

	s.confirm(func(list []E) []E {
		list = removeByID(list, draft.EntityID())
		return append(list, created)
	})
	return nil
}

// Update replaces the matching entity optimistically, then asks the
// repository to persist it. On success the server's canonical version wins;
// on failure the prior value is restored pointwise.
func (s *Store[E]) Update(ctx context.Context, tenant models.TenantID, e E) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	prior, ok := s.find(e.EntityID())
	if !ok {
		err := fmt.Errorf("%w: %s", common.ErrNotFound, e.EntityID())
		s.setErr(err)
		return err
	}

	s.apply(func(list []E) []E { return replaceByID(list, e.EntityID(), e) })

	updated, err := s.repo.Update(ctx, tenant, e)
	if err != nil {
		s.rollback(ctx, func(list []E) []E { return replaceByID(list, e.EntityID(), prior) }, err)
		return err
	}

	s.confirm(func(list []E) []E { return replaceByID(list, e.EntityID(), updated) })
	return nil
}

// Delete removes the entity optimistically, then asks the repository to
// delete it. On failure the entity reappears at its original index.
func (s *Store[E]) Delete(ctx context.Context, tenant models.TenantID, id string) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	prior, idx := s.findAt(id)
	if idx < 0 {
		// Nothing visible to delete; treat like the idempotent remote.
		return nil
	}

	s.apply(func(list []E) []E { return removeByID(list, id) })

	if err := s.repo.Delete(ctx, tenant, id); err != nil {
		// Remove before reinserting: a load resolving mid-call may have
		// reinstalled the row already.
		s.rollback(ctx, func(list []E) []E { return insertAt(removeByID(list, id), idx, prior) }, err)
		return err
	}

	// Re-remove rather than keep the list as-is, for the same reason.
	s.confirm(func(list []E) []E { return removeByID(list, id) })
	return nil
}

func (s *Store[E]) find(id string) (E, bool) {
	e, i := s.findAt(id)
	return e, i >= 0
}

func (s *Store[E]) findAt(id string) (E, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var zero E
	i := indexOf(s.collection, id)
	if i < 0 {
		return zero, -1
	}
	return s.collection[i], i
}

// apply installs an optimistic edit without touching generation or error
// state; the mutation is not confirmed yet.
func (s *Store[E]) apply(edit func([]E) []E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = edit(s.collection)
}

// confirm installs the reconciled post-mutation state and clears the error.
func (s *Store[E]) confirm(edit func([]E) []E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = edit(s.collection)
	s.generation++
	s.err = nil
}

// rollback restores the pre-mutation state and surfaces the error.
func (s *Store[E]) rollback(ctx context.Context, restore func([]E) []E, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = restore(s.collection)
	s.err = cause
	s.logger.Warn(ctx, "mutation rolled back", "err", cause)
}

func (s *Store[E]) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
