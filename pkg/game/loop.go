package game

import (
	"errors"
	"time"

	"github.com/zurustar/gemcross/pkg/input"
	"github.com/zurustar/gemcross/pkg/logger"
	"github.com/zurustar/gemcross/pkg/surface"
)

// ErrLoopCancelled is returned by the loop once it has been cancelled.
// No frame runs after it is first returned.
var ErrLoopCancelled = errors.New("game loop cancelled")

// Session is what the loop drives each frame. World implements it; the
// loop tests use a recording fake.
type Session interface {
	// HandleInput polls the attached listeners.
	HandleInput(src input.Source)
	// Update advances game logic by dt seconds.
	Update(dt float64)
	// Render draws one complete frame and must not mutate state.
	Render(s surface.Surface)
	// ConsumeQuit reports, at most once, that the session asked for
	// one final frame followed by cancellation.
	ConsumeQuit() bool
	// ConsumeRestart reports, at most once, that the session asked
	// for a full re-initialization.
	ConsumeRestart() bool
}

// Loop drives forward progress: once per scheduled frame it computes
// the time delta, runs update, then render, in that fixed order. It is
// armed by the initializer after assets are ready and cancelled exactly
// once, on the quit path.
type Loop struct {
	clock   Clock
	session Session
	src     input.Source

	armed             bool
	done              bool
	cancelAfterRender bool

	onRestart func()
}

// NewLoop creates a loop over session polling src.
func NewLoop(session Session, src input.Source) *Loop {
	return &Loop{session: session, src: src}
}

// SetRestartFunc installs the callback invoked when the session
// requests a full restart. The initializer owns it.
func (l *Loop) SetRestartFunc(fn func()) {
	l.onRestart = fn
}

// Arm starts (or restarts) frame processing with now as the reference
// timestamp for the first delta.
func (l *Loop) Arm(now time.Time) {
	l.clock.Arm(now)
	l.armed = true
}

// Armed reports whether the loop is processing frames.
func (l *Loop) Armed() bool { return l.armed }

// Done reports whether the loop has been cancelled.
func (l *Loop) Done() bool { return l.done }

// UpdateFrame runs the update half of one frame. Before arming it is a
// no-op; after cancellation it returns ErrLoopCancelled. A panic inside
// game logic is contained: the frame is lost, the loop keeps going.
func (l *Loop) UpdateFrame(now time.Time) error {
	if l.done {
		return ErrLoopCancelled
	}
	if !l.armed {
		return nil
	}
	if l.cancelAfterRender {
		// The final frame was rendered; stop before running another.
		l.done = true
		logger.L().Info("game loop cancelled")
		return ErrLoopCancelled
	}

	dt := l.clock.Delta(now)

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error("update fault contained", "panic", r)
			}
		}()
		l.session.HandleInput(l.src)
		l.session.Update(dt)
	}()

	if l.session.ConsumeQuit() {
		l.cancelAfterRender = true
	}
	if l.session.ConsumeRestart() && l.onRestart != nil {
		l.onRestart()
	}
	return nil
}

// RenderFrame runs the render half of one frame. Render faults are
// contained like update faults.
func (l *Loop) RenderFrame(s surface.Surface) {
	if l.done || !l.armed {
		return
	}
	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error("render fault contained", "panic", r)
			}
		}()
		l.session.Render(s)
	}()
}

// Step runs one complete frame: update, then render, exactly once
// each. Headless runs and tests drive the loop through Step; the
// windowed build splits the halves across the host's update/draw
// callbacks instead.
func (l *Loop) Step(now time.Time, s surface.Surface) error {
	if err := l.UpdateFrame(now); err != nil {
		return err
	}
	l.RenderFrame(s)
	if l.cancelAfterRender {
		l.done = true
		logger.L().Info("game loop cancelled")
	}
	return nil
}
