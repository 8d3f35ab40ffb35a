// registry.go
package qsphere

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroVector is returned when a caller adds the zero vector as a qubit position
var ErrZeroVector = errors.New("initial vector must be non-zero")

/*
Registry is a caller-owned collection of qubit instances. Event handlers
receive it explicitly; nothing in this package lives in process-wide state.
It keys qubits by ID, remembers insertion order for stable listings, and
tracks which qubit is currently selected.
*/
type Registry struct {
	mu       sync.RWMutex
	qubits   map[string]*Qubit
	order    []string
	selected string
	palette  []string
	next     int

	// OnChange, when set, runs after a qubit's current coordinate changes.
	// The hook receives a snapshot taken under the registry lock, never the
	// live qubit. Set it before handing the registry to event handlers.
	OnChange func(*Qubit)
}

// NewRegistry creates an empty registry; nil config selects the defaults
func NewRegistry(config *Config) *Registry {
	if config == nil {
		config = NewConfig()
	}
	return &Registry{
		qubits:  make(map[string]*Qubit),
		palette: config.Palette,
	}
}

/*
Add stores a new qubit at the given coordinate and selects it. The
coordinate is pulled onto the unit sphere first, so off-sphere user input
is accepted. The zero vector has no direction to place on the sphere and
is rejected with ErrZeroVector.
*/
func (r *Registry) Add(initial r3.Vec) (*Qubit, error) {
	norm := r3.Norm(initial)
	if norm < blochEpsilon {
		return nil, ErrZeroVector
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	q := NewQubit(r3.Scale(1/norm, initial), r.nextColor())
	r.qubits[q.ID] = q
	r.order = append(r.order, q.ID)
	r.selected = q.ID
	log.Printf("Registered qubit %s at %v", q.ID, q.Current)
	return q, nil
}

// nextColor cycles through the configured palette
func (r *Registry) nextColor() string {
	if len(r.palette) == 0 {
		return ""
	}
	c := r.palette[r.next%len(r.palette)]
	r.next++
	return c
}

// Remove deletes a qubit, clearing the selection if it pointed there
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.qubits[id]; !ok {
		return false
	}

	delete(r.qubits, id)
	for i, qid := range r.order {
		if qid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.selected == id {
		r.selected = ""
	}
	log.Printf("Removed qubit %s", id)
	return true
}

// Get looks up a qubit by ID
func (r *Registry) Get(id string) (*Qubit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.qubits[id]
	return q, ok
}

// List returns the qubits in insertion order
func (r *Registry) List() []*Qubit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Qubit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.qubits[id])
	}
	return out
}

// Len reports how many qubits the registry holds
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.qubits)
}

// Select marks a qubit as the active one
func (r *Registry) Select(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.qubits[id]; !ok {
		return false
	}
	r.selected = id
	return true
}

// Selected returns the active qubit, if any
func (r *Registry) Selected() (*Qubit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.qubits[r.selected]
	return q, ok
}

// Apply runs a gate against one qubit's coordinate and notifies OnChange
func (r *Registry) Apply(id string, g Gate) error {
	r.mu.Lock()
	q, ok := r.qubits[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("no qubit with id %s", id)
	}
	err := q.Apply(g)
	snapshot := *q
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.notify(&snapshot)
	return nil
}

// Reset returns one qubit to its initial coordinate and notifies OnChange
func (r *Registry) Reset(id string) bool {
	r.mu.Lock()
	q, ok := r.qubits[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	q.Reset()
	snapshot := *q
	r.mu.Unlock()

	r.notify(&snapshot)
	return true
}

// notify runs outside the registry lock so the hook may call back in.
// It only ever receives a snapshot, never the live qubit.
func (r *Registry) notify(q *Qubit) {
	if r.OnChange != nil {
		r.OnChange(q)
	}
}
