package narrator

import (
	"strings"
	"testing"

	"github.com/tatianab/ghost-hunt/internal/models"
)

func TestRenderPrompt(t *testing.T) {
	r := &models.Report{
		Winner:       models.WinnerHunters,
		ActualGhost:  models.Banshee,
		MatchedGhost: models.Banshee,
		Evidence:     []models.EvidenceKind{models.EMF, models.Sound, models.Temperature},
		Hunters: []models.HunterSummary{
			{Name: "ray", Equipment: models.EMF, Fear: 10, Exit: models.ExitFear},
			{Name: "egon", Equipment: models.Sound, Exit: models.ExitEvidence},
		},
	}

	prompt, err := RenderPrompt(r)
	if err != nil {
		t.Fatalf("RenderPrompt: %v", err)
	}
	for _, want := range []string{
		"a Banshee haunted the house",
		"the hunters won",
		"EMF, SOUND, TEMPERATURE",
		"Banshee (Correct)",
		"ray carried a EMF kit and fled in terror",
		"egon carried a SOUND kit and left with enough evidence",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestRenderPromptWithoutEvidence(t *testing.T) {
	r := &models.Report{Winner: models.WinnerGhost, ActualGhost: models.Phantom, MatchedGhost: models.GhostUnknown}
	prompt, err := RenderPrompt(r)
	if err != nil {
		t.Fatalf("RenderPrompt: %v", err)
	}
	if !strings.Contains(prompt, "Evidence collected: none") || !strings.Contains(prompt, "drove every hunter away") {
		t.Errorf("unexpected prompt:\n%s", prompt)
	}
}
