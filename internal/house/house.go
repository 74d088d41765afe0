package house

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tatianab/ghost-hunt/internal/models"
)

var (
	ErrDuplicateHunter = errors.New("hunter name already taken")
	ErrBlankName       = errors.New("hunter name is blank")
	ErrUnknownRoom     = errors.New("unknown room")
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrGhostPlaced     = errors.New("ghost already placed")
	ErrNotPresent      = errors.New("hunter not present in room")
)

// House owns the room graph, the hunter roster, the shared evidence record
// and the exit rosters.
type House struct {
	rooms  []*Room
	byName map[string]int
	entry  int
	record EvidenceRecord

	// mu guards hunters and the exit rosters. It is a leaf lock.
	mu            sync.Mutex
	hunters       []*Hunter
	fearExits     []*Hunter
	boredomExits  []*Hunter
	evidenceExits []*Hunter

	ghost *Ghost
}

// New builds a house from layout. Room names must be unique, links must
// name known rooms and the entry must exist.
func New(layout Layout) (*House, error) {
	if len(layout.Rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms", ErrInvalidLayout)
	}
	h := &House{byName: make(map[string]int, len(layout.Rooms))}
	for i, name := range layout.Rooms {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: room %d has no name", ErrInvalidLayout, i)
		}
		if _, dup := h.byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate room %q", ErrInvalidLayout, name)
		}
		h.byName[name] = i
		h.rooms = append(h.rooms, &Room{id: i, name: name})
	}
	for _, link := range layout.Links {
		a, okA := h.byName[link[0]]
		b, okB := h.byName[link[1]]
		if !okA || !okB {
			return nil, fmt.Errorf("%w: link %q-%q names an unknown room", ErrInvalidLayout, link[0], link[1])
		}
		if a == b {
			return nil, fmt.Errorf("%w: room %q linked to itself", ErrInvalidLayout, link[0])
		}
		connect(h.rooms[a], h.rooms[b])
	}
	entry, ok := h.byName[layout.Entry]
	if !ok {
		return nil, fmt.Errorf("%w: entry %q is not a room", ErrInvalidLayout, layout.Entry)
	}
	h.entry = entry
	return h, nil
}

// Init returns a house built from DefaultLayout.
func Init() *House {
	h, err := New(DefaultLayout())
	if err != nil {
		panic(fmt.Sprintf("default layout: %v", err))
	}
	return h
}

func connect(a, b *Room) {
	for _, n := range a.neighbors {
		if n == b.id {
			return
		}
	}
	a.neighbors = append(a.neighbors, b.id)
	b.neighbors = append(b.neighbors, a.id)
}

// Rooms returns every room in creation order.
func (h *House) Rooms() []*Room {
	out := make([]*Room, len(h.rooms))
	copy(out, h.rooms)
	return out
}

// Room resolves a room index.
func (h *House) Room(i int) (*Room, error) {
	if i < 0 || i >= len(h.rooms) {
		return nil, fmt.Errorf("%w: index %d", ErrUnknownRoom, i)
	}
	return h.rooms[i], nil
}

// RoomByName resolves a room by its name.
func (h *House) RoomByName(name string) (*Room, error) {
	i, ok := h.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
	}
	return h.rooms[i], nil
}

// Entry is the room hunters are admitted to.
func (h *House) Entry() *Room { return h.rooms[h.entry] }

// Record is the shared evidence record.
func (h *House) Record() *EvidenceRecord { return &h.record }

// Ghost returns the placed ghost, or nil before placement.
func (h *House) Ghost() *Ghost { return h.ghost }

// PlaceGhost puts a new ghost of class into the named room. Unlike
// PlaceGhostRandomly it allows the entry room.
func (h *House) PlaceGhost(class models.GhostClass, roomName string) (*Ghost, error) {
	if h.ghost != nil {
		return nil, ErrGhostPlaced
	}
	if class < models.Poltergeist || class >= models.GhostUnknown {
		return nil, fmt.Errorf("cannot place ghost of class %v", class)
	}
	room, err := h.RoomByName(roomName)
	if err != nil {
		return nil, err
	}
	g := &Ghost{ID: uuid.NewString(), Class: class, room: room.id}
	room.Acquire()
	room.SetGhost(g)
	room.Release()
	h.ghost = g
	return g, nil
}

// PlaceGhostRandomly places a ghost of a random class in a random room other
// than the entry.
func (h *House) PlaceGhostRandomly(rng *rand.Rand) (models.GhostClass, error) {
	candidates := make([]*Room, 0, len(h.rooms))
	for _, r := range h.rooms {
		if r.id != h.entry {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return models.GhostUnknown, fmt.Errorf("%w: no room besides the entry", ErrInvalidLayout)
	}
	class := models.GhostClasses[rng.IntN(len(models.GhostClasses))]
	room := candidates[rng.IntN(len(candidates))]
	if _, err := h.PlaceGhost(class, room.name); err != nil {
		return models.GhostUnknown, err
	}
	return class, nil
}

// AdmitHunter registers a hunter with random equipment in the entry room.
func (h *House) AdmitHunter(name string, rng *rand.Rand) (*Hunter, error) {
	return h.AdmitEquippedHunter(name, models.EvidenceKinds[rng.IntN(len(models.EvidenceKinds))])
}

// AdmitEquippedHunter registers a hunter carrying the given equipment in the
// entry room. Hunters must be admitted before the simulation starts.
func (h *House) AdmitEquippedHunter(name string, equipment models.EvidenceKind) (*Hunter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	if !equipment.Valid() {
		return nil, fmt.Errorf("invalid equipment %d", equipment)
	}

	h.mu.Lock()
	for _, existing := range h.hunters {
		if existing.Name == name {
			h.mu.Unlock()
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHunter, name)
		}
	}
	hunter := newHunter(name, equipment, h.entry)
	h.hunters = append(h.hunters, hunter)
	h.mu.Unlock()

	entry := h.Entry()
	entry.Acquire()
	entry.AddHunter(hunter)
	entry.Release()
	return hunter, nil
}

// Hunters returns every admitted hunter in admission order.
func (h *House) Hunters() []*Hunter {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Hunter, len(h.hunters))
	copy(out, h.hunters)
	return out
}

// Exit removes hunter from room and files it on the roster for reason.
// The caller must hold room's lock and room must be the hunter's current room.
func (h *House) Exit(hunter *Hunter, room *Room, reason models.ExitReason) error {
	var list *[]*Hunter
	switch reason {
	case models.ExitFear:
		list = &h.fearExits
	case models.ExitBoredom:
		list = &h.boredomExits
	case models.ExitEvidence:
		list = &h.evidenceExits
	default:
		return fmt.Errorf("unknown exit reason %q", reason)
	}
	if !room.RemoveHunter(hunter) {
		return fmt.Errorf("%w: %s in %s", ErrNotPresent, hunter.Name, room.name)
	}

	h.mu.Lock()
	*list = append(*list, hunter)
	h.mu.Unlock()
	return nil
}

func (h *House) FearExits() []*Hunter     { return h.roster(&h.fearExits) }
func (h *House) BoredomExits() []*Hunter  { return h.roster(&h.boredomExits) }
func (h *House) EvidenceExits() []*Hunter { return h.roster(&h.evidenceExits) }

func (h *House) roster(list *[]*Hunter) []*Hunter {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Hunter, len(*list))
	copy(out, *list)
	return out
}

// ExitReason reports which roster holds hunter, or ExitNone.
func (h *House) ExitReason(hunter *Hunter) models.ExitReason {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitReasonLocked(hunter)
}

func (h *House) exitReasonLocked(hunter *Hunter) models.ExitReason {
	for _, r := range h.rostersLocked() {
		for _, p := range r.list {
			if p == hunter {
				return r.reason
			}
		}
	}
	return models.ExitNone
}

type roster struct {
	reason models.ExitReason
	list   []*Hunter
}

func (h *House) rostersLocked() []roster {
	return []roster{
		{models.ExitFear, h.fearExits},
		{models.ExitBoredom, h.boredomExits},
		{models.ExitEvidence, h.evidenceExits},
	}
}

// ActiveHunters counts hunters not driven out by fear or boredom.
func (h *House) ActiveHunters() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hunters) - len(h.fearExits) - len(h.boredomExits)
}

// HuntersWin reports whether at least one hunter was not driven out.
func (h *House) HuntersWin() bool {
	return h.ActiveHunters() > 0
}

// Locate lists every place hunter is currently filed: "room:<name>" for each
// present set holding it and "exit:<reason>" for each roster. A consistent
// house yields exactly one entry per hunter once agents are idle.
func (h *House) Locate(hunter *Hunter) []string {
	var places []string
	for _, r := range h.rooms {
		r.Acquire()
		if r.hasHunter(hunter) {
			places = append(places, "room:"+r.name)
		}
		r.Release()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.rostersLocked() {
		for _, p := range r.list {
			if p == hunter {
				places = append(places, "exit:"+string(r.reason))
			}
		}
	}
	return places
}
