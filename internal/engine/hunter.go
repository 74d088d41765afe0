package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/tatianab/ghost-hunt/internal/house"
	"github.com/tatianab/ghost-hunt/internal/models"
)

type hunterAction int

const (
	actionCollect hunterAction = iota
	actionMove
	actionReview
	numHunterActions
)

type hunterAgent struct {
	house  *house.House
	hunter *house.Hunter
	rules  Rules
	seed   [2]uint64
	rng    *rand.Rand
	log    zerolog.Logger
}

func (a *hunterAgent) run() error {
	a.rng = newAgentRand(a.seed)
	for {
		done, err := a.tick()
		if err != nil {
			a.log.Error().Err(err).Msg("hunter stopped")
			return fmt.Errorf("hunter %s: %w", a.hunter.Name, err)
		}
		if done {
			return nil
		}
		time.Sleep(a.rules.HunterTick)
	}
}

// tick plays one turn and reports whether the hunter has left the house.
func (a *hunterAgent) tick() (bool, error) {
	room, err := a.house.Room(a.hunter.Room())
	if err != nil {
		return true, err
	}
	room.Acquire()
	held := room
	defer func() {
		if held != nil {
			held.Release()
		}
	}()

	if room.Ghost() != nil {
		a.hunter.Fear++
		a.hunter.Boredom = 0
	} else {
		a.hunter.Boredom++
	}

	switch hunterAction(a.rng.IntN(int(numHunterActions))) {
	case actionCollect:
		a.collect(room)
	case actionMove:
		moved, err := a.move(room)
		if moved {
			held = nil
		}
		if err != nil {
			return true, err
		}
	case actionReview:
		distinct := a.house.Record().Distinct()
		if distinct >= a.rules.EvidenceThreshold {
			a.log.Info().Int("distinct", distinct).Msg("review: sufficient evidence")
			return true, a.leave(held, models.ExitEvidence)
		}
		a.log.Debug().Int("distinct", distinct).Msg("review: insufficient evidence")
	}

	switch {
	case a.hunter.Fear >= a.rules.FearMax:
		return true, a.leave(held, models.ExitFear)
	case a.hunter.Boredom >= a.rules.BoredomMax:
		return true, a.leave(held, models.ExitBoredom)
	}
	return false, nil
}

// collect moves the first evidence matching the hunter's equipment from the
// room into the shared record. The caller holds the room lock.
func (a *hunterAgent) collect(room *house.Room) {
	kind := a.hunter.Equipment
	if !room.TakeEvidence(kind) {
		return
	}
	a.house.Record().Append(kind)
	a.log.Info().Str("evidence", kind.String()).Str("room", room.Name()).Msg("collected evidence")
}

// move walks to a random neighbour. The caller holds from's lock; when moved
// is true that lock has been released and the hunter is in the new room.
func (a *hunterAgent) move(from *house.Room) (moved bool, err error) {
	neighbors := from.Neighbors()
	if len(neighbors) == 0 {
		return false, nil
	}
	to, err := a.house.Room(neighbors[a.rng.IntN(len(neighbors))])
	if err != nil {
		return false, err
	}
	if !from.RemoveHunter(a.hunter) {
		return false, fmt.Errorf("%w: %s", house.ErrNotPresent, from.Name())
	}
	from.Release()

	to.Acquire()
	to.AddHunter(a.hunter)
	a.hunter.MoveTo(to.ID())
	to.Release()

	a.log.Debug().Str("room", to.Name()).Msg("moved")
	return true, nil
}

// leave files the hunter on the roster for reason. held is the room lock the
// caller still holds, or nil after a move.
func (a *hunterAgent) leave(held *house.Room, reason models.ExitReason) error {
	room := held
	if room == nil {
		r, err := a.house.Room(a.hunter.Room())
		if err != nil {
			return err
		}
		r.Acquire()
		defer r.Release()
		room = r
	}
	if err := a.house.Exit(a.hunter, room, reason); err != nil {
		return err
	}
	a.log.Info().
		Str("reason", string(reason)).
		Int("fear", a.hunter.Fear).
		Int("boredom", a.hunter.Boredom).
		Msg("hunter left the house")
	return nil
}
