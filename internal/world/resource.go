// Package world holds the resources ducks react to, the registry that
// groups them by kind, and the world-edge bounds the flock lives inside.
package world

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/talgya/duckpond/internal/geom"
)

// Kind is the group a resource belongs to.
type Kind string

const (
	KindWater Kind = "water"
	KindFood  Kind = "food"
)

// ErrUnknownKind is returned when a resource carries an unregistered kind.
var ErrUnknownKind = errors.New("unknown resource kind")

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindWater, KindFood:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Resource is an external world object. Agents only read its position.
type Resource struct {
	ID       uuid.UUID `json:"id"`
	Kind     Kind      `json:"kind"`
	Position geom.Vec2 `json:"position"`
}

// Registry indexes resources by ID and by kind. It is safe for concurrent
// use; queries return snapshots that callers may keep.
type Registry struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]Resource
	byKind map[Kind][]uuid.UUID
}

// NewRegistry creates a registry holding the given resources.
func NewRegistry(resources ...Resource) *Registry {
	r := &Registry{
		byID:   make(map[uuid.UUID]Resource),
		byKind: make(map[Kind][]uuid.UUID),
	}
	for _, res := range resources {
		r.add(res)
	}
	return r
}

// Add registers a resource, replacing any previous one with the same ID.
func (r *Registry) Add(res Resource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(res)
}

func (r *Registry) add(res Resource) {
	if old, ok := r.byID[res.ID]; ok {
		r.unlink(old)
	}
	r.byID[res.ID] = res
	r.byKind[res.Kind] = append(r.byKind[res.Kind], res.ID)
}

// Remove drops a resource. It reports whether the ID was present.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[id]
	if !ok {
		return false
	}
	r.unlink(res)
	delete(r.byID, id)
	return true
}

func (r *Registry) unlink(res Resource) {
	ids := r.byKind[res.Kind]
	if i := slices.Index(ids, res.ID); i >= 0 {
		r.byKind[res.Kind] = slices.Delete(ids, i, i+1)
	}
}

// OfKind returns a snapshot of every resource in the kind's group.
func (r *Registry) OfKind(kind Kind) []Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byKind[kind]
	out := make([]Resource, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Lookup resolves a resource by ID.
func (r *Registry) Lookup(id uuid.UUID) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byID[id]
	return res, ok
}

// All returns a snapshot of every registered resource.
func (r *Registry) All() []Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Resource, 0, len(r.byID))
	for _, ids := range r.byKind {
		for _, id := range ids {
			out = append(out, r.byID[id])
		}
	}
	return out
}

// Len returns the number of registered resources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
