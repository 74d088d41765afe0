package house

import (
	"github.com/google/uuid"
	"github.com/tatianab/ghost-hunt/internal/models"
)

// Hunter is a registered ghost hunter. Fear, boredom and the current room are
// only written by the hunter's own agent; read them from elsewhere only after
// the run has finished.
type Hunter struct {
	ID        string
	Name      string
	Equipment models.EvidenceKind

	Fear    int
	Boredom int
	room    int
}

// Room is the index of the hunter's current room.
func (h *Hunter) Room() int { return h.room }

// MoveTo updates the hunter's current room pointer.
func (h *Hunter) MoveTo(room int) { h.room = room }

func newHunter(name string, equipment models.EvidenceKind, room int) *Hunter {
	return &Hunter{
		ID:        uuid.NewString(),
		Name:      name,
		Equipment: equipment,
		room:      room,
	}
}

// Ghost is the single ghost haunting the house. Like Hunter, its mutable
// fields belong to the ghost agent.
type Ghost struct {
	ID      string
	Class   models.GhostClass
	Boredom int

	room     int
	departed bool
}

func (g *Ghost) Room() int { return g.room }

// MoveTo updates the ghost's current room pointer.
func (g *Ghost) MoveTo(room int) { g.room = room }

// Departed reports whether the ghost gave up and left the house.
func (g *Ghost) Departed() bool { return g.departed }

// Depart marks the ghost as gone.
func (g *Ghost) Depart() { g.departed = true }
