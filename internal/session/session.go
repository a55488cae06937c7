// Package session implements the counting-game round state machine.
//
// A Session is an immutable value. Submit returns the next Session rather than
// mutating the receiver, so a caller can keep the previous value around.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/verte-zerg/skipcount/internal/generator"
	"github.com/verte-zerg/skipcount/internal/model"
)

// Feedback messages shown to the player.
const (
	PromptStart   = "Let's begin! Find the right order."
	PromptCorrect = "Super! Keep going 🎊"
	PromptRetry   = "Oops! Try again 🤔"
)

// Outcome tags the result of a single submission.
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
	CorrectAndComplete
	AlreadyComplete
)

func (o Outcome) String() string {
	switch o {
	case Incorrect:
		return "Incorrect"
	case Correct:
		return "Correct"
	case CorrectAndComplete:
		return "CorrectAndComplete"
	case AlreadyComplete:
		return "AlreadyComplete"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Shuffler produces a permutation of the given values without modifying them.
type Shuffler interface {
	Shuffle(values []int) []int
}

// Option configures a new Session.
type Option func(*options)

type options struct {
	shuffler  Shuffler
	reshuffle model.ReshufflePolicy
}

// WithShuffler sets the entropy strategy used for the presentation order.
func WithShuffler(s Shuffler) Option {
	return func(o *options) {
		if s != nil {
			o.shuffler = s
		}
	}
}

// WithReshuffle selects when the presentation order is regenerated.
func WithReshuffle(p model.ReshufflePolicy) Option {
	return func(o *options) {
		o.reshuffle = p
	}
}

// Session is one play-through of a counting mode.
type Session struct {
	id       string
	mode     model.CountingMode
	sequence []int
	order    []int
	accepted []int
	feedback string
	opts     options
}

// Start begins a round for mode. It panics if mode.Step is not positive.
func Start(mode model.CountingMode, opts ...Option) Session {
	o := options{reshuffle: model.ReshuffleOnStart}
	for _, opt := range opts {
		opt(&o)
	}
	if o.shuffler == nil {
		o.shuffler = generator.New()
	}
	return newSession(mode, o)
}

func newSession(mode model.CountingMode, o options) Session {
	seq := generator.Sequence(mode.Step, generator.TargetLength)
	return Session{
		id:       uuid.New().String(),
		mode:     mode,
		sequence: seq,
		order:    o.shuffler.Shuffle(seq),
		feedback: PromptStart,
		opts:     o,
	}
}

// Submit evaluates value against the next expected term.
func (s Session) Submit(value int) (Session, Outcome) {
	if s.IsComplete() {
		return s, AlreadyComplete
	}
	if len(s.sequence) == 0 {
		return s, Incorrect
	}
	if value != s.sequence[len(s.accepted)] {
		s.feedback = PromptRetry
		return s, Incorrect
	}
	// Full slice expression forces append to copy, keeping the receiver intact.
	s.accepted = append(s.accepted[:len(s.accepted):len(s.accepted)], value)
	s.feedback = PromptCorrect
	if s.opts.reshuffle == model.ReshuffleOnCorrect {
		s.order = s.opts.shuffler.Shuffle(s.sequence)
	}
	if s.IsComplete() {
		return s, CorrectAndComplete
	}
	return s, Correct
}

// Restart begins a fresh round of the same mode with a new presentation order.
func (s Session) Restart() Session {
	return newSession(s.mode, s.opts)
}

// Progress returns the matched fraction in [0, 1].
func (s Session) Progress() float64 {
	if len(s.sequence) == 0 {
		return 0
	}
	return float64(len(s.accepted)) / float64(len(s.sequence))
}

// IsComplete reports whether every term has been matched.
func (s Session) IsComplete() bool {
	return len(s.sequence) > 0 && len(s.accepted) == len(s.sequence)
}

// ID identifies the round; Restart issues a new one.
func (s Session) ID() string { return s.id }

// Mode returns the active counting mode.
func (s Session) Mode() model.CountingMode { return s.mode }

// Feedback returns the last status message.
func (s Session) Feedback() string { return s.feedback }

// Sequence returns a copy of the target sequence.
func (s Session) Sequence() []int { return append([]int(nil), s.sequence...) }

// Order returns a copy of the presentation order.
func (s Session) Order() []int { return append([]int(nil), s.order...) }

// Accepted returns a copy of the matched prefix.
func (s Session) Accepted() []int { return append([]int(nil), s.accepted...) }

// Expected returns the next value to tap. ok is false once complete.
func (s Session) Expected() (value int, ok bool) {
	if s.IsComplete() || len(s.sequence) == 0 {
		return 0, false
	}
	return s.sequence[len(s.accepted)], true
}

// IsAccepted reports whether value has already been matched.
func (s Session) IsAccepted(value int) bool {
	for _, v := range s.accepted {
		if v == value {
			return true
		}
	}
	return false
}
