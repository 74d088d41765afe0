package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tatianab/ghost-hunt/internal/house"
	"github.com/tatianab/ghost-hunt/internal/models"
)

func mustAdmit(t *testing.T, h *house.House, name string, kind models.EvidenceKind) *house.Hunter {
	t.Helper()
	hunter, err := h.AdmitEquippedHunter(name, kind)
	if err != nil {
		t.Fatalf("admit %s: %v", name, err)
	}
	return hunter
}

// exit files hunter from the entry room, which must still hold it.
func exit(t *testing.T, h *house.House, hunter *house.Hunter, reason models.ExitReason) {
	t.Helper()
	van := h.Entry()
	van.Acquire()
	err := h.Exit(hunter, van, reason)
	van.Release()
	if err != nil {
		t.Fatalf("exit %s: %v", hunter.Name, err)
	}
}

func TestBuildHuntersWin(t *testing.T) {
	h := house.Init()
	if _, err := h.PlaceGhost(models.Banshee, "Kitchen"); err != nil {
		t.Fatalf("PlaceGhost: %v", err)
	}
	ray := mustAdmit(t, h, "ray", models.EMF)
	egon := mustAdmit(t, h, "egon", models.Sound)
	for _, k := range []models.EvidenceKind{models.EMF, models.Temperature, models.Sound, models.EMF} {
		h.Record().Append(k)
	}
	exit(t, h, ray, models.ExitFear)
	exit(t, h, egon, models.ExitEvidence)

	r := Build(h, 7, 3)
	if r.Winner != models.WinnerHunters {
		t.Errorf("winner = %v", r.Winner)
	}
	if r.MatchedGhost != models.Banshee || r.Verdict() != "Correct" {
		t.Errorf("matched = %v verdict = %s", r.MatchedGhost, r.Verdict())
	}
	if r.Distinct != 3 || len(r.Evidence) != 4 {
		t.Errorf("distinct = %d evidence = %v", r.Distinct, r.Evidence)
	}
	if len(r.FearExits) != 1 || r.FearExits[0] != "ray" {
		t.Errorf("fear exits = %v", r.FearExits)
	}
	if len(r.Hunters) != 2 || r.Hunters[1].Exit != models.ExitEvidence {
		t.Errorf("hunters = %+v", r.Hunters)
	}

	var buf bytes.Buffer
	if err := Write(&buf, r, 3); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Hunters with fear >= FEAR_MAX:\n[ray]",
		"Hunters with boredom >= BOREDOM_MAX:\nNone",
		"The hunters have won!",
		"Matching Ghost Type: Banshee",
		"Real Ghost Type: Banshee",
		"Evidence Matching?: Correct",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildGhostWinsWithoutEvidence(t *testing.T) {
	h := house.Init()
	if _, err := h.PlaceGhost(models.Phantom, "Garage"); err != nil {
		t.Fatalf("PlaceGhost: %v", err)
	}
	ray := mustAdmit(t, h, "ray", models.EMF)
	h.Record().Append(models.Sound)
	exit(t, h, ray, models.ExitBoredom)

	r := Build(h, 1, 3)
	if r.Winner != models.WinnerGhost {
		t.Errorf("winner = %v", r.Winner)
	}
	if r.MatchedGhost != models.GhostUnknown || r.Verdict() != "Incorrect" {
		t.Errorf("matched = %v verdict = %s", r.MatchedGhost, r.Verdict())
	}

	var buf bytes.Buffer
	if err := Write(&buf, r, 3); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "The ghost has won!") || !strings.Contains(out, "Insufficient evidence") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestBuildReportsHuntersStillInside(t *testing.T) {
	h := house.Init()
	if _, err := h.PlaceGhost(models.Bullies, "Bathroom"); err != nil {
		t.Fatalf("PlaceGhost: %v", err)
	}
	mustAdmit(t, h, "ray", models.EMF)

	r := Build(h, 0, 3)
	if len(r.Hunters) != 1 || r.Hunters[0].Exit != models.ExitNone || r.Hunters[0].Room != "Van" {
		t.Errorf("hunters = %+v", r.Hunters)
	}
}
