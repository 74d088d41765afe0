package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tatianab/ghost-hunt/internal/config"
	"github.com/tatianab/ghost-hunt/internal/hunt"
	"github.com/tatianab/ghost-hunt/internal/logging"
	"github.com/tatianab/ghost-hunt/internal/models"
	"github.com/tatianab/ghost-hunt/internal/narrator"
	"github.com/tatianab/ghost-hunt/internal/report"
)

const maxRuns = 50

var crew = []string{"Ray", "Egon", "Peter", "Winston", "Janine", "Louis"}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Hunters > len(crew) {
		log.Fatalf("At most %d hunters are supported, got %d", len(crew), cfg.Hunters)
	}
	logger := logging.New("warn", os.Stderr)
	baseSeed := cfg.Seed

	var (
		hunterWins, correct, identified int
		exits                           = map[models.ExitReason]int{}
		last                            *models.Report
	)

	for run := 1; run <= maxRuns; run++ {
		if baseSeed != 0 {
			cfg.Seed = baseSeed + uint64(run)
		}
		h, err := hunt.Prepare(cfg, crew[:cfg.Hunters], logger)
		if err != nil {
			log.Fatalf("Failed to prepare run %d: %v", run, err)
		}
		r, err := h.Run()
		if err != nil {
			log.Fatalf("Run %d faulted: %v", run, err)
		}

		if r.Winner == models.WinnerHunters {
			hunterWins++
		}
		if r.Sufficient(h.Threshold()) {
			identified++
			if r.Verdict() == "Correct" {
				correct++
			}
		}
		for _, hs := range r.Hunters {
			exits[hs.Exit]++
		}
		fmt.Printf("Run %2d: seed=%d ghost=%s winner=%s distinct=%d\n", run, r.Seed, r.ActualGhost, r.Winner, r.Distinct)
		last = r
	}

	fmt.Println("\n--- Summary ---")
	fmt.Printf("Hunter wins: %d/%d\n", hunterWins, maxRuns)
	fmt.Printf("Ghost identified: %d (correct %d)\n", identified, correct)
	fmt.Printf("Exits: fear=%d boredom=%d evidence=%d\n", exits[models.ExitFear], exits[models.ExitBoredom], exits[models.ExitEvidence])

	if cfg.GeminiAPIKey == "" || last == nil {
		return
	}

	// Narrate the last run so the prompt can be eyeballed against real data.
	ctx := context.Background()
	narr, err := narrator.NewNarrator(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("Failed to create narrator: %v", err)
	}
	defer narr.Close()
	if last.Narration, err = narr.Narrate(ctx, last); err != nil {
		log.Printf("Narration failed: %v", err)
	}
	if err := report.Write(os.Stdout, last, cfg.EvidenceThreshold); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
