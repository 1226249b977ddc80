package session

import (
	"sync"
	"time"
)

// Registry maps session IDs to their metadata and transcripts. It is pure
// display/selection bookkeeping: the server owns authoritative session
// state, and only the active session receives question/answer traffic.
//
// All methods are safe for concurrent use; the TUI reads while controller
// commands write from their own goroutines.
type Registry struct {
	mu          sync.Mutex
	order       []string
	sessions    map[string]*Metadata
	transcripts map[string][]Turn
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[string]*Metadata),
		transcripts: make(map[string][]Turn),
	}
}

// Put records metadata for a session. Re-putting an existing ID replaces
// the metadata but keeps its position in the listing order.
func (r *Registry) Put(id string, meta Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta.ID = id
	if _, exists := r.sessions[id]; !exists {
		r.order = append(r.order, id)
	}
	r.sessions[id] = &meta
}

// Get returns a copy of the metadata for id, or false if unknown.
func (r *Registry) Get(id string) (Metadata, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta, ok := r.sessions[id]
	if !ok {
		return Metadata{}, false
	}
	return *meta, true
}

// List returns metadata for all known sessions in insertion order.
func (r *Registry) List() []Metadata {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Metadata, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.sessions[id])
	}
	return out
}

// AppendTurn adds a turn record to the session's transcript. Turns for
// unknown sessions are dropped.
func (r *Registry) AppendTurn(id string, turn Turn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return
	}
	if turn.At.IsZero() {
		turn.At = time.Now()
	}
	r.transcripts[id] = append(r.transcripts[id], turn)
}

// Transcript returns a copy of the session's recorded turns in append order.
func (r *Registry) Transcript(id string) []Turn {
	r.mu.Lock()
	defer r.mu.Unlock()

	turns := r.transcripts[id]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}
