package house

import (
	"sync"

	"github.com/tatianab/ghost-hunt/internal/models"
)

// Room is a node in the house graph. Its present hunters, local evidence and
// ghost occupant are guarded by a single lock; every method except ID, Name
// and Neighbors requires the caller to hold it.
type Room struct {
	id        int
	name      string
	neighbors []int

	mu       sync.Mutex
	hunters  []*Hunter
	evidence []models.EvidenceKind
	ghost    *Ghost
}

func (r *Room) ID() int      { return r.id }
func (r *Room) Name() string { return r.name }

// Neighbors returns the indexes of connected rooms. The slice is fixed after
// setup and must not be modified.
func (r *Room) Neighbors() []int { return r.neighbors }

// Acquire locks the room.
func (r *Room) Acquire() { r.mu.Lock() }

// Release unlocks the room.
func (r *Room) Release() { r.mu.Unlock() }

// Ghost returns the occupant, or nil.
func (r *Room) Ghost() *Ghost { return r.ghost }

// SetGhost sets or clears (nil) the occupant.
func (r *Room) SetGhost(g *Ghost) { r.ghost = g }

// HasHunters reports whether any hunter is present.
func (r *Room) HasHunters() bool { return len(r.hunters) > 0 }

// Hunters returns a copy of the present set.
func (r *Room) Hunters() []*Hunter {
	out := make([]*Hunter, len(r.hunters))
	copy(out, r.hunters)
	return out
}

// AddHunter inserts h into the present set.
func (r *Room) AddHunter(h *Hunter) {
	r.hunters = append(r.hunters, h)
}

// RemoveHunter drops h from the present set and reports whether it was there.
func (r *Room) RemoveHunter(h *Hunter) bool {
	for i, p := range r.hunters {
		if p == h {
			r.hunters = append(r.hunters[:i], r.hunters[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) hasHunter(h *Hunter) bool {
	for _, p := range r.hunters {
		if p == h {
			return true
		}
	}
	return false
}

// LeaveEvidence appends a piece of evidence to the room.
func (r *Room) LeaveEvidence(kind models.EvidenceKind) {
	r.evidence = append(r.evidence, kind)
}

// TakeEvidence removes the first evidence of the given kind and reports
// whether one was found.
func (r *Room) TakeEvidence(kind models.EvidenceKind) bool {
	for i, k := range r.evidence {
		if k == kind {
			r.evidence = append(r.evidence[:i], r.evidence[i+1:]...)
			return true
		}
	}
	return false
}

// Evidence returns a copy of the room's uncollected evidence.
func (r *Room) Evidence() []models.EvidenceKind {
	out := make([]models.EvidenceKind, len(r.evidence))
	copy(out, r.evidence)
	return out
}
