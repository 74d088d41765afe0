package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/tatianab/ghost-hunt/internal/house"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoGhost   = errors.New("no ghost placed in the house")
	ErrNoHunters = errors.New("no hunters to run")
)

// Rules are the thresholds and pacing shared by every agent.
type Rules struct {
	FearMax           int
	BoredomMax        int
	EvidenceThreshold int
	HunterTick        time.Duration
	GhostTick         time.Duration
}

// DefaultRules returns the classic hunt settings.
func DefaultRules() Rules {
	return Rules{
		FearMax:           10,
		BoredomMax:        100,
		EvidenceThreshold: 3,
		HunterTick:        10 * time.Millisecond,
		GhostTick:         10 * time.Millisecond,
	}
}

func (r Rules) Validate() error {
	if r.FearMax <= 0 {
		return fmt.Errorf("fear max must be positive, got %d", r.FearMax)
	}
	if r.BoredomMax <= 0 {
		return fmt.Errorf("boredom max must be positive, got %d", r.BoredomMax)
	}
	// A ghost class is named by three of the four kinds.
	if r.EvidenceThreshold < 3 || r.EvidenceThreshold > 4 {
		return fmt.Errorf("evidence threshold must be 3 or 4, got %d", r.EvidenceThreshold)
	}
	if r.HunterTick < 0 || r.GhostTick < 0 {
		return fmt.Errorf("tick intervals must not be negative")
	}
	return nil
}

type Engine struct {
	rules Rules
	seed  uint64
	log   zerolog.Logger
}

func NewEngine(rules Rules, seed uint64, log zerolog.Logger) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rules: rules, seed: seed, log: log}, nil
}

func (e *Engine) Rules() Rules { return e.rules }
func (e *Engine) Seed() uint64 { return e.seed }

// Run spawns one goroutine per hunter and one for the ghost, then blocks until
// every agent has left the house on its own. An agent that hits an internal
// fault stops alone; the first such fault is returned after all agents finish.
func (e *Engine) Run(h *house.House, hunters []*house.Hunter) error {
	ghost := h.Ghost()
	if ghost == nil {
		return ErrNoGhost
	}
	if len(hunters) == 0 {
		return ErrNoHunters
	}

	ghostRoom, err := h.Room(ghost.Room())
	if err != nil {
		return fmt.Errorf("ghost room: %w", err)
	}

	start := time.Now()
	var g errgroup.Group
	for i, hunter := range hunters {
		agent := &hunterAgent{
			house:  h,
			hunter: hunter,
			rules:  e.rules,
			seed:   e.agentSeed(uint64(i + 1)),
			log:    e.log.With().Str("hunter", hunter.Name).Logger(),
		}
		agent.log.Info().Str("equipment", hunter.Equipment.String()).Msg("hunter entered the van")
		g.Go(agent.run)
	}

	e.log.Info().Str("class", ghost.Class.String()).Str("room", ghostRoom.Name()).Msg("ghost appeared")
	ga := &ghostAgent{
		house: h,
		ghost: ghost,
		rules: e.rules,
		seed:  e.agentSeed(0),
		log:   e.log.With().Str("ghost", ghost.Class.String()).Logger(),
	}
	g.Go(ga.run)

	err = g.Wait()
	e.log.Info().Dur("elapsed", time.Since(start)).Int("active", h.ActiveHunters()).Msg("hunt finished")
	return err
}

func (e *Engine) agentSeed(stream uint64) [2]uint64 {
	return [2]uint64{e.seed, stream}
}

func newAgentRand(seed [2]uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed[0], seed[1]))
}

// NewSeed draws a run seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
