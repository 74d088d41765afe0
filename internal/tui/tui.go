package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/tatianab/ghost-hunt/internal/config"
	"github.com/tatianab/ghost-hunt/internal/hunt"
	"github.com/tatianab/ghost-hunt/internal/logging"
	"github.com/tatianab/ghost-hunt/internal/models"
	"github.com/tatianab/ghost-hunt/internal/narrator"
	"github.com/tatianab/ghost-hunt/internal/report"
)

type sessionState int

const (
	stateNames sessionState = iota
	stateRunning
	stateResults
	stateError
)

type model struct {
	state     sessionState
	cfg       *config.Config
	log       zerolog.Logger
	narrator  *narrator.Narrator
	names     []string
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	report    *models.Report
	notice    string
	err       error
	width     int
	height    int
}

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	huntersWonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)
	ghostWonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D75F5F")).Bold(true)
)

func NewModel(cfg *config.Config, log zerolog.Logger, narr *narrator.Narrator) model {
	ti := textinput.New()
	ti.Placeholder = "Hunter name..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		state:     stateNames,
		cfg:       cfg,
		log:       log,
		narrator:  narr,
		textInput: ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type huntFinishedMsg struct {
	report *models.Report
	err    error
}

type reportSavedMsg struct {
	path string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state == stateNames {
				return m.submitName()
			}
		}
		if m.state == stateResults {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "s":
				return m, m.saveReport()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		if m.state == stateResults {
			m.viewport.SetContent(m.renderReport())
		}

	case spinner.TickMsg:
		if m.state == stateRunning {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case huntFinishedMsg:
		if msg.report == nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.report = msg.report
		m.state = stateResults
		if msg.err != nil {
			m.notice = fmt.Sprintf("Warning: %v", msg.err)
		}
		m.viewport.SetContent(m.renderReport())
		return m, nil

	case reportSavedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Could not save report: %v", msg.err)
		} else {
			m.notice = "Report saved to " + msg.path
		}
		return m, nil
	}

	switch m.state {
	case stateNames:
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	case stateResults:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) submitName() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.textInput.Value())
	m.textInput.Reset()
	if name == "" {
		m.notice = "Please enter a name."
		return m, nil
	}
	for _, existing := range m.names {
		if existing == name {
			m.notice = fmt.Sprintf("Hunter [%s] already exists. Please enter a unique hunter name.", name)
			return m, nil
		}
	}
	m.notice = ""
	m.names = append(m.names, name)
	if len(m.names) < m.cfg.Hunters {
		return m, nil
	}
	m.state = stateRunning
	return m, tea.Batch(m.spinner.Tick, m.runHunt())
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateNames:
		entered := ""
		for i, name := range m.names {
			entered += fmt.Sprintf("  %d. %s\n", i+1, name)
		}
		s = fmt.Sprintf(
			"%s\n\n%s\n%s\n%s",
			titleStyle.Render("GHOST HUNT"),
			entered,
			promptStyle.Render(fmt.Sprintf("Enter name for hunter %d:", len(m.names)+1)),
			m.textInput.View(),
		)
		if m.notice != "" {
			s += "\n\n" + noticeStyle.Render(m.notice)
		}

	case stateRunning:
		s = fmt.Sprintf("\n  %s The hunters are searching the house...\n", m.spinner.View())

	case stateResults:
		help := helpStyle.Render("s: save report  q: quit  arrows: scroll")
		if m.notice != "" {
			help = noticeStyle.Render(m.notice) + "\n" + help
		}
		s = lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), "\n"+help)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderReport() string {
	if m.report == nil {
		return ""
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, m.report, m.cfg.EvidenceThreshold); err != nil {
		return fmt.Sprintf("Error rendering report: %v", err)
	}

	winner := ghostWonStyle.Render("THE GHOST WINS")
	if m.report.Winner == models.WinnerHunters {
		winner = huntersWonStyle.Render("THE HUNTERS WIN")
	}
	return titleStyle.Render("RESULTS") + "  " + winner + "\n" + bodyStyle.Width(m.width).Render(buf.String())
}

func (m model) runHunt() tea.Cmd {
	names := append([]string(nil), m.names...)
	return func() tea.Msg {
		h, err := hunt.Prepare(m.cfg, names, m.log)
		if err != nil {
			return huntFinishedMsg{err: err}
		}
		r, err := h.Run()
		if m.narrator != nil {
			if story, nerr := m.narrator.Narrate(context.Background(), r); nerr == nil {
				r.Narration = story
			} else {
				m.log.Warn().Err(nerr).Msg("narration failed")
			}
		}
		return huntFinishedMsg{report: r, err: err}
	}
}

func (m model) saveReport() tea.Cmd {
	r := m.report
	dir := m.cfg.ReportDir
	return func() tea.Msg {
		path, err := r.Save(dir)
		return reportSavedMsg{path: path, err: err}
	}
}

func Run(cfg *config.Config, log zerolog.Logger, narr *narrator.Narrator) error {
	p := tea.NewProgram(NewModel(cfg, log, narr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start loads configuration and runs the interactive hunt. Agent logs go to
// hunt.log in the report directory so they do not tear the screen.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(cfg.ReportDir, "hunt.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.New(cfg.LogLevel, logFile)

	var narr *narrator.Narrator
	if cfg.GeminiAPIKey != "" {
		narr, err = narrator.NewNarrator(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		defer narr.Close()
	}

	return Run(cfg, log, narr)
}
