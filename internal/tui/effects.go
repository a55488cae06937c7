package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	frameInterval = 50 * time.Millisecond
	pulseInterval = 600 * time.Millisecond
	bounceFrames  = 4
)

// Horizontal offsets in cells, one per shake frame.
var shakeOffsets = []int{2, -2, 1, 0}

type effectKind int

const (
	effectBounce effectKind = iota
	effectShake
	effectPulse
)

// frameMsg advances one effect. Messages carrying a stale id are dropped.
type frameMsg struct {
	kind effectKind
	id   int
}

// effects holds cosmetic animation state. Game logic never waits on it.
type effects struct {
	enabled bool

	bounceFrame int
	bounceID    int

	shakeFrame int
	shakeID    int

	pulseActive bool
	pulseHigh   bool
	pulseID     int
}

func frameTick(kind effectKind, id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return frameMsg{kind: kind, id: id}
	})
}

func (e *effects) start(kind effectKind) tea.Cmd {
	if !e.enabled {
		return nil
	}
	switch kind {
	case effectBounce:
		e.bounceID++
		e.bounceFrame = 1
		return frameTick(kind, e.bounceID, frameInterval)
	case effectShake:
		e.shakeID++
		e.shakeFrame = 1
		return frameTick(kind, e.shakeID, frameInterval)
	case effectPulse:
		e.pulseID++
		e.pulseActive = true
		e.pulseHigh = false
		return frameTick(kind, e.pulseID, pulseInterval)
	}
	return nil
}

func (e *effects) advance(msg frameMsg) tea.Cmd {
	switch msg.kind {
	case effectBounce:
		if msg.id != e.bounceID || e.bounceFrame == 0 {
			return nil
		}
		e.bounceFrame++
		if e.bounceFrame > bounceFrames {
			e.bounceFrame = 0
			return nil
		}
		return frameTick(msg.kind, msg.id, frameInterval)
	case effectShake:
		if msg.id != e.shakeID || e.shakeFrame == 0 {
			return nil
		}
		e.shakeFrame++
		if e.shakeFrame > len(shakeOffsets) {
			e.shakeFrame = 0
			return nil
		}
		return frameTick(msg.kind, msg.id, frameInterval)
	case effectPulse:
		if msg.id != e.pulseID || !e.pulseActive {
			return nil
		}
		e.pulseHigh = !e.pulseHigh
		return frameTick(msg.kind, msg.id, pulseInterval)
	}
	return nil
}

// stop cancels every running effect; pending ticks become stale.
func (e *effects) stop() {
	e.bounceID++
	e.shakeID++
	e.pulseID++
	e.bounceFrame = 0
	e.shakeFrame = 0
	e.pulseActive = false
	e.pulseHigh = false
}

func (e *effects) bouncing() bool {
	return e.bounceFrame > 0
}

func (e *effects) shakeOffset() int {
	if e.shakeFrame <= 0 || e.shakeFrame > len(shakeOffsets) {
		return 0
	}
	return shakeOffsets[e.shakeFrame-1]
}
