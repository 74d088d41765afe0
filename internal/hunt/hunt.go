// Package hunt wires configuration, the house and the engine into a single
// playable hunt.
package hunt

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/tatianab/ghost-hunt/internal/config"
	"github.com/tatianab/ghost-hunt/internal/engine"
	"github.com/tatianab/ghost-hunt/internal/house"
	"github.com/tatianab/ghost-hunt/internal/models"
	"github.com/tatianab/ghost-hunt/internal/report"
)

// setupStream keeps setup draws apart from the per-agent streams.
const setupStream = 1 << 63

// Hunt is a house with its ghost placed and hunters admitted, ready to run.
type Hunt struct {
	House   *house.House
	Hunters []*house.Hunter
	Ghost   models.GhostClass

	engine    *engine.Engine
	threshold int
}

// Prepare builds the default house, places a random ghost and admits one
// hunter per name. Names must be unique.
func Prepare(cfg *config.Config, names []string, log zerolog.Logger) (*Hunt, error) {
	if len(names) == 0 {
		return nil, engine.ErrNoHunters
	}
	seed := cfg.Seed
	if seed == 0 {
		var err error
		if seed, err = engine.NewSeed(); err != nil {
			return nil, err
		}
	}
	eng, err := engine.NewEngine(cfg.Rules(), seed, log)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(seed, setupStream))
	h := house.Init()
	class, err := h.PlaceGhostRandomly(rng)
	if err != nil {
		return nil, err
	}

	hunters := make([]*house.Hunter, 0, len(names))
	for _, name := range names {
		hunter, err := h.AdmitHunter(name, rng)
		if err != nil {
			return nil, fmt.Errorf("admit hunter: %w", err)
		}
		hunters = append(hunters, hunter)
	}

	return &Hunt{
		House:     h,
		Hunters:   hunters,
		Ghost:     class,
		engine:    eng,
		threshold: cfg.EvidenceThreshold,
	}, nil
}

// Seed is the run seed actually used.
func (h *Hunt) Seed() uint64 { return h.engine.Seed() }

// Threshold is the distinct-evidence count needed to name the ghost.
func (h *Hunt) Threshold() int { return h.threshold }

// Run plays the hunt to the end and summarizes it. A report is returned even
// when an agent faulted.
func (h *Hunt) Run() (*models.Report, error) {
	err := h.engine.Run(h.House, h.Hunters)
	return report.Build(h.House, h.engine.Seed(), h.threshold), err
}
