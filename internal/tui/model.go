// Package tui provides the Bubble Tea picker interface.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/verte-zerg/megapick/internal/model"
	statsPkg "github.com/verte-zerg/megapick/internal/stats"
)

// Count bounds offered by the picker.
const (
	MinCount = 1
	MaxCount = 10
)

// Picker generates and analyzes combinations.
type Picker interface {
	Generate(strategy model.Strategy, count int) ([]model.Combination, error)
	Analyze(combos []model.Combination) model.Analysis
}

// Model implements the Bubble Tea picker UI.
type Model struct {
	picker Picker
	log    logrus.FieldLogger

	cursor int
	count  int

	results  viewport.Model
	hasBatch bool
	errMsg   string

	width  int
	height int
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	resultsStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// NewModel constructs a picker model starting at the given strategy and count.
func NewModel(picker Picker, log logrus.FieldLogger, strategy model.Strategy, count int) *Model {
	m := &Model{
		picker:  picker,
		log:     log,
		count:   clampCount(count),
		results: viewport.New(0, 0),
	}
	for i, s := range model.Strategies {
		if s == strategy {
			m.cursor = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
			return m, nil
		case "down", "j":
			m.moveCursor(1)
			return m, nil
		case "left", "h", "-":
			m.count = clampCount(m.count - 1)
			return m, nil
		case "right", "l", "+", "=":
			m.count = clampCount(m.count + 1)
			return m, nil
		case "enter", " ", "g":
			m.generate()
			return m, nil
		default:
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("Mega-Sena number generator"),
		"",
		m.renderMenu(),
		"",
		m.renderCount(),
		"",
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg), "")
	}
	if m.hasBatch {
		sections = append(sections, resultsStyle.Render(m.results.View()))
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m *Model) strategy() model.Strategy {
	return model.Strategies[m.cursor]
}

func (m *Model) moveCursor(delta int) {
	n := len(model.Strategies)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) generate() {
	strategy := m.strategy()
	combos, err := m.picker.Generate(strategy, m.count)
	if err != nil {
		m.errMsg = fmt.Sprintf("Failed to generate combinations: %v", err)
		m.hasBatch = false
		return
	}
	analysis := m.picker.Analyze(combos)
	var buf bytes.Buffer
	if err := statsPkg.RenderBatch(&buf, strategy, combos, analysis, statsPkg.RenderOptions{}); err != nil {
		m.errMsg = fmt.Sprintf("Failed to render results: %v", err)
		m.hasBatch = false
		return
	}
	m.errMsg = ""
	m.hasBatch = true
	m.results.SetContent(strings.TrimRight(buf.String(), "\n"))
	m.results.GotoTop()
	if m.log != nil {
		m.log.WithFields(logrus.Fields{
			"strategy": strategy.String(),
			"count":    m.count,
			"unique":   analysis.Unique,
		}).Debug("generated combinations")
	}
}

func (m *Model) updateLayout() {
	// Header, menu, count, footer and the results border.
	chrome := 3 + len(model.Strategies) + 2 + 1 + 2
	height := m.height - chrome
	if height < 3 {
		height = 3
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	m.results.Width = width
	m.results.Height = height
}

func (m *Model) renderMenu() string {
	lines := make([]string, 0, len(model.Strategies)+1)
	lines = append(lines, "Strategy:")
	for i, s := range model.Strategies {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+s.Label()))
			continue
		}
		lines = append(lines, optionStyle.Render("  "+s.Label()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCount() string {
	return fmt.Sprintf("Combinations: %s", countStyle.Render(fmt.Sprintf("< %d >", m.count)))
}

func (m *Model) renderFooter() string {
	segments := []string{"↑/↓ strategy", "←/→ count", "enter generate", "pgup/pgdn scroll", "q quit"}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func clampCount(n int) int {
	if n < MinCount {
		return MinCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
