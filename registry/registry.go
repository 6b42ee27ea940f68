// Package registry tracks the identifiers issued during one test run so the
// same name is never handed out twice.
package registry

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry stores issued names purely in memory; safe for concurrent use.
type Registry struct {
	runID string
	mu    sync.Mutex
	names map[string]struct{}
}

// New creates an empty registry with a random run ID.
func New() *Registry {
	return NewWithRunID(uuid.New().String())
}

// NewWithRunID creates an empty registry for the supplied run ID.
func NewWithRunID(runID string) *Registry {
	return &Registry{runID: runID, names: make(map[string]struct{})}
}

// RunID returns the run identifier.
func (r *Registry) RunID() string {
	return r.runID
}

// Reserve records name and reports whether it was not issued before.
func (r *Registry) Reserve(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.names[name]; ok {
		return false
	}
	r.names[name] = struct{}{}
	return true
}

// Release forgets name so it can be issued again.
func (r *Registry) Release(name string) {
	r.mu.Lock()
	delete(r.names, name)
	r.mu.Unlock()
}

// Has reports whether name was issued.
func (r *Registry) Has(name string) bool {
	r.mu.Lock()
	_, ok := r.names[name]
	r.mu.Unlock()
	return ok
}

// Len returns the number of issued names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.names)
}

// Names returns issued names in lexical order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	r.mu.Unlock()
	sort.Strings(out)
	return out
}
