package game

import (
	"errors"

	"github.com/zurustar/gemcross/pkg/input"
	"github.com/zurustar/gemcross/pkg/logger"
)

// State is the authoritative mode of the game. Exactly one state is
// current at any instant.
type State int

const (
	// StateTitle shows the title screen; the mascot animates.
	StateTitle State = iota
	// StateActive is live play.
	StateActive
	// StateSafe is the post-goal menu, awaiting a choice.
	StateSafe
	// StateGameOver is the end screen. It halts the loop only when
	// reached through Quit; after running out of lives the start key
	// offers a restart.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateActive:
		return "active"
	case StateSafe:
		return "safe"
	case StateGameOver:
		return "game-over"
	default:
		return "invalid"
	}
}

// Selection is a pending menu choice made while in StateSafe.
type Selection int

const (
	SelectionNone Selection = iota
	SelectionContinue
	SelectionQuit
	SelectionRestart
)

func (s Selection) String() string {
	switch s {
	case SelectionNone:
		return "none"
	case SelectionContinue:
		return "continue"
	case SelectionQuit:
		return "quit"
	case SelectionRestart:
		return "restart"
	default:
		return "invalid"
	}
}

// ErrInvalidSelection is returned when the transition evaluator sees a
// selection outside the table. Callers treat it as a no-op.
var ErrInvalidSelection = errors.New("invalid menu selection")

// Machine owns the current state. Transitions are the single authority
// over listener attachment: attaching and detaching happen only in the
// entry and exit actions below, never in per-frame update code.
type Machine struct {
	current State
}

// NewMachine creates a machine in StateTitle. Boot must run once the
// world exists so the title entry action takes effect.
func NewMachine() *Machine {
	return &Machine{current: StateTitle}
}

// Current returns the current state.
func (m *Machine) Current() State {
	return m.current
}

// Boot applies the initial state's entry action. It is idempotent and
// re-run by a full restart.
func (m *Machine) Boot(w *World) {
	m.current = StateTitle
	m.enter(w, StateTitle)
}

// StartGame handles Title -> Active.
func (m *Machine) StartGame(w *World) {
	if m.current != StateTitle {
		return
	}
	m.transition(w, StateActive)
}

// ReachGoal handles Active -> Safe, requested by the goal evaluation.
func (m *Machine) ReachGoal(w *World) {
	if m.current != StateActive {
		return
	}
	m.transition(w, StateSafe)
}

// LivesExhausted handles Active -> GameOver directly, bypassing the
// menu. The start key stays available for a restart.
func (m *Machine) LivesExhausted(w *World) {
	if m.current != StateActive {
		return
	}
	m.exit(w, m.current)
	w.listeners.Detach(input.KindKeyboardMove)
	m.current = StateGameOver
	w.listeners.Attach(input.KindStartKey)
	logger.L().Info("state transition", "from", StateActive.String(), "to", StateGameOver.String(), "reason", "lives exhausted")
}

// Apply consumes a menu selection made in StateSafe. SelectionNone is
// a no-op; an unmapped value is logged and reported as
// ErrInvalidSelection without changing state.
func (m *Machine) Apply(w *World, sel Selection) error {
	if sel == SelectionNone {
		return nil
	}
	if m.current != StateSafe {
		logger.L().Warn("selection outside menu state ignored", "selection", sel.String(), "state", m.current.String())
		return ErrInvalidSelection
	}

	switch sel {
	case SelectionContinue:
		m.transition(w, StateActive)
		w.player.ResetPosition()
	case SelectionQuit:
		m.exit(w, m.current)
		m.current = StateGameOver
		w.listeners.DetachAll()
		w.quitPending = true
		logger.L().Info("state transition", "from", StateSafe.String(), "to", StateGameOver.String(), "reason", "quit")
	case SelectionRestart:
		m.exit(w, m.current)
		w.listeners.DetachAll()
		m.current = StateTitle
		w.restartPending = true
		logger.L().Info("state transition", "from", StateSafe.String(), "to", StateTitle.String(), "reason", "restart")
	default:
		logger.L().Warn("unmapped selection ignored", "selection", int(sel))
		return ErrInvalidSelection
	}
	return nil
}

func (m *Machine) transition(w *World, to State) {
	from := m.current
	m.exit(w, from)
	m.current = to
	m.enter(w, to)
	logger.L().Debug("state transition", "from", from.String(), "to", to.String())
}

// enter runs the entry action of a state.
func (m *Machine) enter(w *World, s State) {
	switch s {
	case StateTitle:
		w.listeners.Attach(input.KindStartKey)
	case StateActive:
		// Idempotent: Safe -> Active re-entry finds it already attached.
		w.listeners.Attach(input.KindKeyboardMove)
	case StateSafe:
		w.listeners.Attach(input.KindClickSelect)
	}
}

// exit runs the exit action of a state. The keyboard-move listener
// survives Active -> Safe so a later Continue resumes seamlessly; the
// Quit and Restart paths detach it explicitly.
func (m *Machine) exit(w *World, s State) {
	switch s {
	case StateTitle:
		w.listeners.Detach(input.KindStartKey)
	case StateSafe:
		w.listeners.Detach(input.KindClickSelect)
	}
}
