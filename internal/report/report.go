// Package report turns a finished house into a results report and prints it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/tatianab/ghost-hunt/internal/house"
	"github.com/tatianab/ghost-hunt/internal/models"
)

// Build summarizes h once every agent has stopped. threshold is the number of
// distinct evidence kinds needed to name a ghost.
func Build(h *house.House, seed uint64, threshold int) *models.Report {
	evidence := h.Record().Snapshot()
	r := &models.Report{
		ID:            uuid.NewString(),
		Seed:          seed,
		Winner:        models.WinnerGhost,
		ActualGhost:   models.GhostUnknown,
		MatchedGhost:  models.GhostUnknown,
		Distinct:      models.DistinctKinds(evidence),
		Evidence:      evidence,
		FearExits:     names(h.FearExits()),
		BoredomExits:  names(h.BoredomExits()),
		EvidenceExits: names(h.EvidenceExits()),
	}
	if h.HuntersWin() {
		r.Winner = models.WinnerHunters
	}
	if g := h.Ghost(); g != nil {
		r.ActualGhost = g.Class
	}
	if r.Distinct >= threshold {
		r.MatchedGhost = models.MatchGhost(evidence)
	}

	for _, hunter := range h.Hunters() {
		summary := models.HunterSummary{
			ID:        hunter.ID,
			Name:      hunter.Name,
			Equipment: hunter.Equipment,
			Fear:      hunter.Fear,
			Boredom:   hunter.Boredom,
			Exit:      h.ExitReason(hunter),
		}
		if summary.Exit == models.ExitNone {
			if room, err := h.Room(hunter.Room()); err == nil {
				summary.Room = room.Name()
			}
		}
		r.Hunters = append(r.Hunters, summary)
	}
	return r
}

func names(hunters []*house.Hunter) []string {
	out := make([]string, 0, len(hunters))
	for _, h := range hunters {
		out = append(out, h.Name)
	}
	return out
}

// Write prints r in the classic results layout.
func Write(w io.Writer, r *models.Report, threshold int) error {
	var b strings.Builder

	b.WriteString("\n=== Results ===\n")

	b.WriteString("\nHunters with fear >= FEAR_MAX:\n")
	writeRoster(&b, r.FearExits)

	b.WriteString("\nHunters with boredom >= BOREDOM_MAX:\n")
	writeRoster(&b, r.BoredomExits)

	if r.Winner == models.WinnerHunters {
		b.WriteString("\nThe hunters have won! The ghost has been correctly identified!\n")
	} else {
		b.WriteString("\nThe ghost has won! All hunters have exited because of high fear or boredom.\n")
	}

	b.WriteString("\nCollected Evidence:\n")
	for _, k := range r.Evidence {
		fmt.Fprintf(&b, "[%s]\n", k)
	}

	if r.Sufficient(threshold) {
		fmt.Fprintf(&b, "\nMatching Ghost Type: %s\n", r.MatchedGhost)
	} else {
		fmt.Fprintf(&b, "\nInsufficient evidence to match the ghost. Need at least %d different pieces.\n", threshold)
	}

	fmt.Fprintf(&b, "\nReal Ghost Type: %s\n", r.ActualGhost)
	fmt.Fprintf(&b, "\nEvidence Matching?: %s\n", r.Verdict())

	if r.Narration != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Narration)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRoster(b *strings.Builder, names []string) {
	if len(names) == 0 {
		b.WriteString("None\n")
		return
	}
	for _, n := range names {
		fmt.Fprintf(b, "[%s]\n", n)
	}
}
