package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/tatianab/ghost-hunt/internal/house"
)

type ghostAgent struct {
	house *house.House
	ghost *house.Ghost
	rules Rules
	seed  [2]uint64
	rng   *rand.Rand
	log   zerolog.Logger
}

func (a *ghostAgent) run() error {
	a.rng = newAgentRand(a.seed)
	for {
		done, err := a.sweep()
		if err != nil {
			a.log.Error().Err(err).Msg("ghost stopped")
			return fmt.Errorf("ghost: %w", err)
		}
		if done {
			return nil
		}
		time.Sleep(a.rules.GhostTick)
	}
}

// sweep visits every room in creation order and reports whether the ghost
// gave up.
func (a *ghostAgent) sweep() (bool, error) {
	for _, room := range a.house.Rooms() {
		done, err := a.visit(room)
		if err != nil || done {
			return done, err
		}
	}
	return false, nil
}

// visit locks room and, if the ghost is in it, takes one action.
func (a *ghostAgent) visit(room *house.Room) (bool, error) {
	room.Acquire()
	if a.ghost.Room() != room.ID() {
		room.Release()
		return false, nil
	}

	g := a.ghost
	g.Boredom++
	var dest *house.Room
	if room.HasHunters() {
		g.Boredom = 0
		if a.rng.IntN(2) == 0 {
			a.haunt(room)
		}
	} else {
		switch a.rng.IntN(3) {
		case 0:
			var err error
			if dest, err = a.destination(room); err != nil {
				room.Release()
				return true, err
			}
		case 1:
			a.haunt(room)
		}
	}

	if g.Boredom >= a.rules.BoredomMax {
		room.SetGhost(nil)
		g.Depart()
		room.Release()
		a.log.Info().Str("room", room.Name()).Msg("ghost got bored and left")
		return true, nil
	}

	if dest == nil {
		room.Release()
		return false, nil
	}
	room.SetGhost(nil)
	room.Release()

	dest.Acquire()
	dest.SetGhost(g)
	g.MoveTo(dest.ID())
	dest.Release()
	a.log.Debug().Str("room", dest.Name()).Msg("ghost moved")
	return false, nil
}

// haunt leaves one piece of evidence typical of the ghost's class. The caller
// holds the room lock.
func (a *ghostAgent) haunt(room *house.Room) {
	kinds := a.ghost.Class.Evidence()
	if len(kinds) == 0 {
		return
	}
	kind := kinds[a.rng.IntN(len(kinds))]
	room.LeaveEvidence(kind)
	a.log.Debug().Str("evidence", kind.String()).Str("room", room.Name()).Msg("ghost left evidence")
}

// destination picks a random neighbour, or nil when room has none.
func (a *ghostAgent) destination(room *house.Room) (*house.Room, error) {
	neighbors := room.Neighbors()
	if len(neighbors) == 0 {
		return nil, nil
	}
	return a.house.Room(neighbors[a.rng.IntN(len(neighbors))])
}
