// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
)

// CountingMode describes one skip-counting style.
type CountingMode struct {
	ID     string
	Label  string
	Step   int
	Color  string
	Accent string
	Emoji  string
}

// ReshufflePolicy controls when the presentation order is regenerated.
type ReshufflePolicy int

const (
	// ReshuffleOnStart shuffles once per round.
	ReshuffleOnStart ReshufflePolicy = iota
	// ReshuffleOnCorrect also shuffles after every accepted answer.
	ReshuffleOnCorrect
)

func (p ReshufflePolicy) String() string {
	switch p {
	case ReshuffleOnStart:
		return "start"
	case ReshuffleOnCorrect:
		return "correct"
	default:
		return fmt.Sprintf("ReshufflePolicy(%d)", int(p))
	}
}

// ParseReshufflePolicy maps a config/flag value to a policy.
func ParseReshufflePolicy(s string) (ReshufflePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start":
		return ReshuffleOnStart, nil
	case "correct":
		return ReshuffleOnCorrect, nil
	default:
		return ReshuffleOnStart, fmt.Errorf("unknown reshuffle policy %q (use start or correct)", s)
	}
}

// Config defines game settings.
type Config struct {
	Mode       string
	Reshuffle  ReshufflePolicy
	Columns    int
	Seed       int64
	Animations bool
}
