package tui

import (
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/skipcount/internal/generator"
	"github.com/verte-zerg/skipcount/internal/model"
	"github.com/verte-zerg/skipcount/internal/session"
)

func newTestModel(cfg model.Config) *Model {
	cfg.Animations = true
	return NewModel(cfg, generator.NewSeeded(1))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func typeNumber(m *Model, v int) {
	for _, r := range strconv.Itoa(v) {
		press(m, runes(string(r)))
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestPickModeEntersGame(t *testing.T) {
	m := newTestModel(model.Config{})
	if m.screen != screenSelect {
		t.Fatalf("expected mode selection first")
	}
	press(m, runes("2"))
	if m.screen != screenGame {
		t.Fatalf("expected game screen after picking a mode")
	}
	if got := m.session.Mode().ID; got != "three" {
		t.Fatalf("expected mode three, got %s", got)
	}
	if !m.fx.bouncing() {
		t.Fatalf("expected bounce effect on mode choice")
	}
	if !strings.Contains(m.View(), "By Threes Counting Game") {
		t.Fatalf("missing heading in view")
	}
}

func TestArrowAndEnterChoosesMode(t *testing.T) {
	m := newTestModel(model.Config{})
	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	if m.modeCursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", m.modeCursor)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.session.Mode().ID != "four" {
		t.Fatalf("expected mode four, got %s", m.session.Mode().ID)
	}
}

func TestConfiguredModeOpensGame(t *testing.T) {
	m := newTestModel(model.Config{Mode: "four"})
	if m.screen != screenGame || m.session.Mode().Step != 4 {
		t.Fatalf("expected game for mode four")
	}
	if m.Init() == nil {
		t.Fatalf("expected init command for preselected mode")
	}
}

func TestTypedNumbersCompleteRound(t *testing.T) {
	m := newTestModel(model.Config{Mode: "two"})
	typeNumber(m, 6)
	if len(m.session.Accepted()) != 0 {
		t.Fatalf("6 before 2 must not be accepted")
	}
	if m.fx.shakeOffset() == 0 {
		t.Fatalf("expected shake after wrong answer")
	}
	if m.session.Feedback() != session.PromptRetry {
		t.Fatalf("unexpected feedback %q", m.session.Feedback())
	}
	for v := 2; v <= 20; v += 2 {
		typeNumber(m, v)
	}
	if !m.session.IsComplete() {
		t.Fatalf("expected complete round, accepted %v", m.session.Accepted())
	}
	if !m.fx.pulseActive {
		t.Fatalf("expected pulse after completion")
	}
	if !strings.Contains(m.View(), celebrateText) {
		t.Fatalf("expected celebration banner")
	}
}

func TestTapTileUnderCursor(t *testing.T) {
	m := newTestModel(model.Config{Mode: "three"})
	order := m.session.Order()
	for i, v := range order {
		if v != 3 {
			m.tileCursor = i
			break
		}
	}
	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.session.Progress() != 0 {
		t.Fatalf("wrong tile should not advance")
	}
	for i, v := range order {
		if v == 3 {
			m.tileCursor = i
		}
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.session.Accepted(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected [3], got %v", got)
	}
}

func TestRestartAndBack(t *testing.T) {
	m := newTestModel(model.Config{Mode: "two"})
	press(m, runes("r"))
	if m.session.Progress() != 0 || m.screen != screenGame {
		t.Fatalf("restart key should be ignored mid-round")
	}
	for _, v := range m.session.Sequence() {
		typeNumber(m, v)
	}
	firstID := m.session.ID()
	press(m, runes("r"))
	if m.session.IsComplete() || m.session.ID() == firstID {
		t.Fatalf("expected a fresh round after restart")
	}
	if m.fx.pulseActive {
		t.Fatalf("restart should stop the pulse")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenSelect {
		t.Fatalf("expected mode selection after esc")
	}
	if !strings.Contains(m.View(), "By Twos") {
		t.Fatalf("expected mode cards in view")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(model.Config{})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestGameViewShowsTiles(t *testing.T) {
	m := newTestModel(model.Config{Mode: "four"})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	for _, v := range m.session.Sequence() {
		if !strings.Contains(view, strconv.Itoa(v)) {
			t.Fatalf("missing tile %d in view", v)
		}
	}
	if !strings.Contains(view, session.PromptStart) {
		t.Fatalf("missing initial prompt in view")
	}
}
