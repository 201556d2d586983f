package game

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/zurustar/gemcross/pkg/input"
)

// machineEvent is one randomly chosen trigger for the state machine.
type machineEvent int

const (
	evStart machineEvent = iota
	evReachGoal
	evLivesExhausted
	evContinue
	evQuit
	evRestart
	evNone
)

func genEventSeq() gopter.Gen {
	return gen.SliceOf(gen.IntRange(int(evStart), int(evNone)).Map(func(i int) machineEvent {
		return machineEvent(i)
	}))
}

func fire(w *World, ev machineEvent) {
	switch ev {
	case evStart:
		w.machine.StartGame(w)
	case evReachGoal:
		w.machine.ReachGoal(w)
	case evLivesExhausted:
		w.machine.LivesExhausted(w)
	case evContinue:
		_ = w.machine.Apply(w, SelectionContinue)
	case evQuit:
		_ = w.machine.Apply(w, SelectionQuit)
	case evRestart:
		_ = w.machine.Apply(w, SelectionRestart)
		// The initializer re-boots the machine on a restart; mirror
		// that here so the title's entry action runs.
		if w.ConsumeRestart() {
			w.machine.Boot(w)
		}
	case evNone:
		_ = w.machine.Apply(w, SelectionNone)
	}
}

// listenersConsistent checks the per-state listener contract.
func listenersConsistent(w *World) bool {
	switch w.State() {
	case StateTitle:
		return w.listeners.Attached(input.KindStartKey) &&
			!w.listeners.Attached(input.KindClickSelect)
	case StateActive:
		return w.listeners.Attached(input.KindKeyboardMove) &&
			!w.listeners.Attached(input.KindStartKey) &&
			!w.listeners.Attached(input.KindClickSelect)
	case StateSafe:
		return w.listeners.Attached(input.KindKeyboardMove) &&
			w.listeners.Attached(input.KindClickSelect)
	case StateGameOver:
		return !w.listeners.Attached(input.KindKeyboardMove) &&
			!w.listeners.Attached(input.KindClickSelect)
	}
	return false
}

func TestMachineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("state stays within the four defined states", prop.ForAll(
		func(events []machineEvent) bool {
			w := testWorld(t)
			for _, ev := range events {
				fire(w, ev)
				if w.State() < StateTitle || w.State() > StateGameOver {
					return false
				}
			}
			return true
		},
		genEventSeq(),
	))

	properties.Property("listener set always matches the state", prop.ForAll(
		func(events []machineEvent) bool {
			w := testWorld(t)
			if !listenersConsistent(w) {
				return false
			}
			for _, ev := range events {
				fire(w, ev)
				if !listenersConsistent(w) {
					return false
				}
			}
			return true
		},
		genEventSeq(),
	))

	properties.Property("no trigger ever attaches a listener twice", prop.ForAll(
		func(events []machineEvent) bool {
			w := testWorld(t)
			for _, ev := range events {
				fire(w, ev)
				if w.listeners.Count() > 3 {
					return false
				}
			}
			return true
		},
		genEventSeq(),
	))

	properties.Property("a pending quit only ever comes from the Quit selection", prop.ForAll(
		func(events []machineEvent) bool {
			w := testWorld(t)
			for _, ev := range events {
				wasSafe := w.State() == StateSafe
				fire(w, ev)
				if w.quitPending && !(wasSafe && ev == evQuit) {
					return false
				}
				w.quitPending = false
			}
			return true
		},
		genEventSeq(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPlayerStaysOnBoard(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	genDirSeq := gen.SliceOf(gen.IntRange(int(input.DirUp), int(input.DirRight)).Map(func(i int) input.Direction {
		return input.Direction(i)
	}))

	properties.Property("random walks never leave the board", prop.ForAll(
		func(dirs []input.Direction) bool {
			w := activeWorld(t)
			for _, d := range dirs {
				w.player.QueueMove(d)
				w.player.Update(0.016)
				col, row := w.player.Tile()
				if col < 0 || col >= w.Grid().Cols || row < 0 || row >= w.Grid().Rows {
					return false
				}
			}
			return true
		},
		genDirSeq,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
