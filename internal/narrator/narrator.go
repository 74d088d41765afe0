package narrator

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/ghost-hunt/internal/models"
	"google.golang.org/api/option"
)

//go:embed prompts/narrate.txt
var narratePrompt string

const maxWords = 150

var promptTemplate = template.Must(template.New("narrate").Funcs(template.FuncMap{
	"join":       strings.Join,
	"exitPhrase": exitPhrase,
}).Parse(narratePrompt))

// Narrator turns a finished hunt into a short story.
type Narrator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewNarrator(ctx context.Context, apiKey string) (*Narrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &Narrator{
		client: client,
		model:  client.GenerativeModel("gemini-2.5-flash"),
	}, nil
}

func (n *Narrator) Close() {
	n.client.Close()
}

// Narrate asks the model for a recap of r.
func (n *Narrator) Narrate(ctx context.Context, r *models.Report) (string, error) {
	prompt, err := RenderPrompt(r)
	if err != nil {
		return "", err
	}

	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from Gemini")
	}
	return strings.TrimSpace(string(text)), nil
}

// RenderPrompt fills the narration prompt for r.
func RenderPrompt(r *models.Report) (string, error) {
	evidence := make([]string, 0, len(r.Evidence))
	for _, k := range r.Evidence {
		evidence = append(evidence, k.String())
	}

	data := struct {
		MaxWords   int
		Actual     string
		Matched    string
		Verdict    string
		HuntersWon bool
		Evidence   []string
		Hunters    []models.HunterSummary
	}{
		MaxWords:   maxWords,
		Actual:     r.ActualGhost.String(),
		Matched:    r.MatchedGhost.String(),
		Verdict:    r.Verdict(),
		HuntersWon: r.Winner == models.WinnerHunters,
		Evidence:   evidence,
		Hunters:    r.Hunters,
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func exitPhrase(reason models.ExitReason) string {
	switch reason {
	case models.ExitFear:
		return "fled in terror"
	case models.ExitBoredom:
		return "left out of boredom"
	case models.ExitEvidence:
		return "left with enough evidence"
	default:
		return "was still inside"
	}
}
