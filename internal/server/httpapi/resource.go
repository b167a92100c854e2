package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// entity is any row with a stable identifier.
type entity interface {
	EntityID() string
}

// crudRepository is the shape every entity-family repository exposes. The
// per-family interfaces satisfy it structurally.
type crudRepository[E entity] interface {
	ListByCouple(ctx context.Context, coupleID string) ([]E, error)
	Get(ctx context.Context, coupleID, id string) (*E, error)
	Create(ctx context.Context, e *E) (*E, error)
	Update(ctx context.Context, e *E) (*E, error)
	Delete(ctx context.Context, coupleID, id string) error
}

// resource serves the uniform CRUD surface for one entity family. The stamp
// closure assigns the id and couple scope, the only fields generic code
// cannot reach.
type resource[E entity] struct {
	server *Server
	repo   crudRepository[E]
	stamp  func(e *E, id, coupleID string)
}

// mountResource registers the CRUD routes for one family under the given
// pattern. Extra route hooks (e.g. the document presign endpoints) are
// applied inside the same subtree.
func mountResource[E entity](r chi.Router, s *Server, pattern string, repo crudRepository[E], stamp func(*E, string, string), extra ...func(chi.Router)) {
	res := &resource[E]{server: s, repo: repo, stamp: stamp}

	r.Route("/"+pattern, func(r chi.Router) {
		r.Get("/", res.list)
		r.Post("/", res.create)
		r.Get("/{id}", res.get)
		r.Put("/{id}", res.update)
		r.Delete("/{id}", res.delete)
		for _, fn := range extra {
			fn(r)
		}
	})
}

func (res *resource[E]) list(w http.ResponseWriter, r *http.Request) {
	items, err := res.repo.ListByCouple(r.Context(), coupleIDFrom(r.Context()))
	if err != nil {
		res.server.writeError(w, r, err)
		return
	}
	res.server.writeJSON(w, http.StatusOK, items)
}

func (res *resource[E]) get(w http.ResponseWriter, r *http.Request) {
	item, err := res.repo.Get(r.Context(), coupleIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		res.server.writeError(w, r, err)
		return
	}
	res.server.writeJSON(w, http.StatusOK, item)
}

func (res *resource[E]) create(w http.ResponseWriter, r *http.Request) {
	var e E
	if err := decodeJSON(r, &e); err != nil {
		res.server.writeError(w, r, err)
		return
	}

	// Client-minted provisional ids are kept when well-formed so the
	// created row matches what the optimistic update inserted.
	id := e.EntityID()
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	res.stamp(&e, id, coupleIDFrom(r.Context()))

	if err := res.server.validate.Struct(e); err != nil {
		res.server.writeError(w, r, err)
		return
	}

	created, err := res.repo.Create(r.Context(), &e)
	if err != nil {
		res.server.writeError(w, r, err)
		return
	}
	res.server.writeJSON(w, http.StatusCreated, created)
}

func (res *resource[E]) update(w http.ResponseWriter, r *http.Request) {
	var e E
	if err := decodeJSON(r, &e); err != nil {
		res.server.writeError(w, r, err)
		return
	}

	res.stamp(&e, chi.URLParam(r, "id"), coupleIDFrom(r.Context()))

	if err := res.server.validate.Struct(e); err != nil {
		res.server.writeError(w, r, err)
		return
	}

	updated, err := res.repo.Update(r.Context(), &e)
	if err != nil {
		res.server.writeError(w, r, err)
		return
	}
	res.server.writeJSON(w, http.StatusOK, updated)
}

// delete is idempotent: removing an id that is already gone still succeeds.
func (res *resource[E]) delete(w http.ResponseWriter, r *http.Request) {
	err := res.repo.Delete(r.Context(), coupleIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		res.server.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
