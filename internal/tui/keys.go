package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Pick    key.Binding
	Digit   key.Binding
	Erase   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "tap")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "pick mode")),
		Digit:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "type a number")),
		Erase:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "play again")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to modes")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// selectHelp and gameHelp adapt the key map to help.KeyMap per screen.
type selectHelp keyMap

func (k selectHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Choose, k.Pick, k.Quit}
}

func (k selectHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type gameHelp struct {
	keys     keyMap
	complete bool
}

func (g gameHelp) ShortHelp() []key.Binding {
	if g.complete {
		return []key.Binding{g.keys.Restart, g.keys.Back, g.keys.Quit}
	}
	return []key.Binding{g.keys.Left, g.keys.Right, g.keys.Up, g.keys.Down, g.keys.Choose, g.keys.Digit, g.keys.Back, g.keys.Quit}
}

func (g gameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.ShortHelp()}
}
