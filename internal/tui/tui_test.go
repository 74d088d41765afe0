package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tatianab/ghost-hunt/internal/config"
	"github.com/tatianab/ghost-hunt/internal/models"
)

func testModel(hunters int) model {
	cfg := config.Default()
	cfg.Hunters = hunters
	cfg.HunterTick = 0
	cfg.GhostTick = 0
	cfg.Seed = 7
	return NewModel(&cfg, zerolog.Nop(), nil)
}

func typeName(t *testing.T, m model, name string) (model, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(name)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model), cmd
}

func TestDuplicateNameRejected(t *testing.T) {
	m := testModel(2)
	m, _ = typeName(t, m, "ray")
	m, cmd := typeName(t, m, "ray")

	if len(m.names) != 1 {
		t.Fatalf("names = %v", m.names)
	}
	if m.state != stateNames || cmd != nil {
		t.Errorf("duplicate should keep prompting")
	}
	if !strings.Contains(m.notice, "Hunter [ray] already exists") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestBlankNameRejected(t *testing.T) {
	m := testModel(1)
	m, _ = typeName(t, m, "   ")
	if len(m.names) != 0 || m.state != stateNames {
		t.Fatalf("blank name accepted: %v", m.names)
	}
}

func TestLastNameStartsHunt(t *testing.T) {
	m := testModel(2)
	m, _ = typeName(t, m, "ray")
	m, cmd := typeName(t, m, "egon")
	if m.state != stateRunning {
		t.Fatalf("state = %v", m.state)
	}
	if cmd == nil {
		t.Fatal("expected hunt command")
	}

	msg := m.runHunt()()
	done, ok := msg.(huntFinishedMsg)
	if !ok {
		t.Fatalf("unexpected msg %T", msg)
	}
	if done.err != nil || done.report == nil {
		t.Fatalf("hunt failed: %v", done.err)
	}
	if len(done.report.Hunters) != 2 {
		t.Errorf("report hunters = %d", len(done.report.Hunters))
	}
}

func TestResultsView(t *testing.T) {
	m := testModel(1)
	m.width, m.height = 80, 40
	next, _ := m.Update(huntFinishedMsg{report: &models.Report{
		Winner:      models.WinnerGhost,
		ActualGhost: models.Banshee,
	}})
	m = next.(model)
	if m.state != stateResults {
		t.Fatalf("state = %v", m.state)
	}
	if !strings.Contains(m.renderReport(), "THE GHOST WINS") {
		t.Errorf("missing winner banner")
	}
}

func TestHuntErrorShown(t *testing.T) {
	m := testModel(1)
	next, _ := m.Update(huntFinishedMsg{err: errTest})
	m = next.(model)
	if m.state != stateError || !strings.Contains(m.View(), "boom") {
		t.Errorf("error not shown: %q", m.View())
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")
