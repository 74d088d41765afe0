package house

import (
	"sync"

	"github.com/tatianab/ghost-hunt/internal/models"
)

// EvidenceRecord is the house-wide, append-only log of collected evidence.
// It has its own lock and never acquires another.
type EvidenceRecord struct {
	mu  sync.Mutex
	log []models.EvidenceKind
}

// Append adds one collected kind to the log.
func (e *EvidenceRecord) Append(kind models.EvidenceKind) {
	e.mu.Lock()
	e.log = append(e.log, kind)
	e.mu.Unlock()
}

func (e *EvidenceRecord) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.log)
}

// Snapshot returns a copy of the log in append order.
func (e *EvidenceRecord) Snapshot() []models.EvidenceKind {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.EvidenceKind, len(e.log))
	copy(out, e.log)
	return out
}

// Distinct is the number of different kinds collected so far.
func (e *EvidenceRecord) Distinct() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.DistinctKinds(e.log)
}

// Match returns the ghost class named by the collected kinds.
func (e *EvidenceRecord) Match() models.GhostClass {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.MatchGhost(e.log)
}
