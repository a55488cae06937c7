// Package tui provides the Bubble Tea counting game interface.
package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/skipcount/internal/catalog"
	"github.com/verte-zerg/skipcount/internal/model"
	"github.com/verte-zerg/skipcount/internal/session"
)

const (
	defaultColumns  = 5
	defaultBarWidth = 40
	maxBarWidth     = 60
	inputCharLimit  = 3
)

const (
	titleText      = "Skip Counting"
	subtitleText   = "Pick your favorite counting style and start the adventure!"
	celebrateText  = "Great! You finished the series 🎉"
	headingPattern = "%s Counting Game"
)

type screen int

const (
	screenSelect screen = iota
	screenGame
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2B2D42")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8D99AE"))
	feedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2B2D42"))
)

// Model implements the Bubble Tea counting game UI.
type Model struct {
	config   model.Config
	modes    []model.CountingMode
	shuffler session.Shuffler

	keys  keyMap
	help  help.Model
	bar   progress.Model
	input textinput.Model
	fx    effects

	width  int
	height int

	screen     screen
	modeCursor int
	tileCursor int
	session    session.Session
	initCmd    tea.Cmd
}

// NewModel constructs a game model. When cfg.Mode names a catalog mode the
// game opens directly on that mode.
func NewModel(cfg model.Config, shuffler session.Shuffler) *Model {
	if cfg.Columns <= 0 {
		cfg.Columns = defaultColumns
	}
	m := &Model{
		config:   cfg,
		modes:    catalog.ListModes(),
		shuffler: shuffler,
		keys:     newKeyMap(),
		help:     help.New(),
		fx:       effects{enabled: cfg.Animations},
	}
	m.input = newNumberInput()
	if cfg.Mode != "" {
		for i, mode := range m.modes {
			if mode.ID == cfg.Mode {
				m.modeCursor = i
				m.initCmd = m.startGame(mode)
				break
			}
		}
	}
	return m
}

func newNumberInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "Number: "
	input.Placeholder = "type and press enter"
	input.CharLimit = inputCharLimit
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmd := m.initCmd
	m.initCmd = nil
	return cmd
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil
	case frameMsg:
		return m, m.fx.advance(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.screen == screenSelect {
			return m.updateSelect(msg)
		}
		return m.updateGame(msg)
	default:
		if m.screen == screenGame {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		m.modeCursor = clamp(m.modeCursor-1, 0, len(m.modes)-1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		m.modeCursor = clamp(m.modeCursor+1, 0, len(m.modes)-1)
	case key.Matches(msg, m.keys.Pick):
		idx, err := strconv.Atoi(msg.String())
		if err != nil || idx < 1 || idx > len(m.modes) {
			return m, nil
		}
		m.modeCursor = idx - 1
		return m, m.startGame(m.modes[m.modeCursor])
	case key.Matches(msg, m.keys.Choose):
		if len(m.modes) == 0 {
			return m, nil
		}
		return m, m.startGame(m.modes[m.modeCursor])
	}
	return m, nil
}

func (m *Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	complete := m.session.IsComplete()
	switch {
	case key.Matches(msg, m.keys.Back):
		m.backToSelect()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case complete && key.Matches(msg, m.keys.Restart):
		return m, m.restart()
	case complete:
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.moveTile(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveTile(1, 0)
	case key.Matches(msg, m.keys.Up):
		m.moveTile(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveTile(0, 1)
	case key.Matches(msg, m.keys.Choose):
		return m, m.tap()
	case key.Matches(msg, m.keys.Digit), key.Matches(msg, m.keys.Erase):
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) startGame(mode model.CountingMode) tea.Cmd {
	m.fx.stop()
	m.session = session.Start(mode,
		session.WithShuffler(m.shuffler),
		session.WithReshuffle(m.config.Reshuffle),
	)
	m.screen = screenGame
	m.tileCursor = 0
	m.bar = progress.New(progress.WithSolidFill(mode.Color), progress.WithoutPercentage())
	m.bar.Width = barWidth(m.width)
	m.input.Reset()
	log.Printf("round %s started: mode=%s order=%v", m.session.ID(), mode.ID, m.session.Order())
	return tea.Batch(m.input.Focus(), m.fx.start(effectBounce))
}

func (m *Model) restart() tea.Cmd {
	m.fx.stop()
	m.session = m.session.Restart()
	m.tileCursor = 0
	m.input.Reset()
	log.Printf("round %s started: mode=%s order=%v", m.session.ID(), m.session.Mode().ID, m.session.Order())
	return m.input.Focus()
}

func (m *Model) backToSelect() {
	m.fx.stop()
	m.session = session.Session{}
	m.screen = screenSelect
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) moveTile(dx, dy int) {
	m.tileCursor = moveCursor(m.tileCursor, dx, dy, len(m.session.Order()), m.config.Columns)
}

// tap submits the typed number if any, otherwise the tile under the cursor.
func (m *Model) tap() tea.Cmd {
	if raw := strings.TrimSpace(m.input.Value()); raw != "" {
		m.input.Reset()
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil
		}
		return m.submit(value)
	}
	order := m.session.Order()
	if m.tileCursor < 0 || m.tileCursor >= len(order) {
		return nil
	}
	return m.submit(order[m.tileCursor])
}

func (m *Model) submit(value int) tea.Cmd {
	next, outcome := m.session.Submit(value)
	m.session = next
	log.Printf("round %s: value=%d outcome=%s progress=%.1f", next.ID(), value, outcome, next.Progress())
	switch outcome {
	case session.Incorrect:
		return m.fx.start(effectShake)
	case session.CorrectAndComplete:
		m.input.Blur()
		return m.fx.start(effectPulse)
	default:
		return nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.screen == screenGame {
		content = m.renderGame()
	} else {
		content = m.renderSelect()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderSelect() string {
	cards := make([]string, 0, len(m.modes))
	for i, mode := range m.modes {
		cards = append(cards, modeCard(mode, i == m.modeCursor))
	}
	lines := []string{
		titleStyle.Render(titleText),
		subtitleStyle.Render(m.truncate(subtitleText)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.help.View(selectHelp(m.keys)),
	}
	return strings.Join(lines, "\n")
}

func modeCard(mode model.CountingMode, selected bool) string {
	style := lipgloss.NewStyle().
		Width(14).
		Align(lipgloss.Center).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color(mode.Color)).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color(mode.Accent))
	if selected {
		style = style.Border(lipgloss.ThickBorder(), true).BorderForeground(lipgloss.Color(mode.Color))
	}
	body := fmt.Sprintf("%s\n%s\n+%d", mode.Emoji, mode.Label, mode.Step)
	return style.Render(body)
}

func (m *Model) renderGame() string {
	mode := m.session.Mode()
	complete := m.session.IsComplete()

	heading := lipgloss.NewStyle().Foreground(lipgloss.Color(mode.Color)).Bold(true)
	if m.fx.bouncing() {
		heading = heading.Background(lipgloss.Color(mode.Accent)).Padding(0, 1)
	}

	var body string
	if complete {
		body = m.renderBanner(mode)
	} else {
		grid := renderGrid(m.session.Order(), m.session.IsAccepted, m.tileCursor, m.config.Columns, mode)
		body = lipgloss.NewStyle().MarginLeft(2 + m.fx.shakeOffset()).Render(grid)
	}

	lines := []string{
		heading.Render(fmt.Sprintf(headingPattern, mode.Label)),
		m.bar.ViewAs(m.session.Progress()),
		feedbackStyle.Render(m.truncate(m.session.Feedback())),
		"",
		body,
		"",
	}
	if !complete {
		lines = append(lines, m.input.View())
	}
	lines = append(lines, m.help.View(gameHelp{keys: m.keys, complete: complete}))
	return strings.Join(lines, "\n")
}

func (m *Model) renderBanner(mode model.CountingMode) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(mode.Color)).
		Padding(1, 2)
	if m.fx.pulseHigh {
		style = style.Padding(1, 3).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color(mode.Accent))
	} else {
		style = style.Margin(1, 1)
	}
	return style.Render(celebrateText)
}

func (m *Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "…")
}

func barWidth(width int) int {
	if width <= 0 {
		return defaultBarWidth
	}
	return clamp(width-4, 10, maxBarWidth)
}
