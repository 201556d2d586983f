// Package input polls host input devices and tracks which logical
// listeners are attached.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction is a keyboard move signal.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Source exposes the input events consumed by the game, polled once
// per frame. Implementations report edge-triggered state: a key or
// click is visible for exactly one poll.
type Source interface {
	// Direction returns the move key pressed this frame, or DirNone.
	Direction() Direction

	// StartPressed reports whether the start/confirm key was pressed
	// this frame.
	StartPressed() bool

	// Click returns the pointer position if the primary button was
	// pressed this frame.
	Click() (x, y float64, ok bool)
}

// EbitenSource polls the keyboard and mouse through Ebitengine.
type EbitenSource struct{}

func (EbitenSource) Direction() Direction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		return DirUp
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		return DirDown
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		return DirLeft
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		return DirRight
	default:
		return DirNone
	}
}

func (EbitenSource) StartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (EbitenSource) Click() (float64, float64, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), true
}

// Fake is a scriptable Source for tests. Each field is consumed by the
// first poll that observes it.
type Fake struct {
	Dir    Direction
	Start  bool
	ClickX float64
	ClickY float64
	HasClk bool
}

func (f *Fake) Direction() Direction {
	d := f.Dir
	f.Dir = DirNone
	return d
}

func (f *Fake) StartPressed() bool {
	s := f.Start
	f.Start = false
	return s
}

func (f *Fake) Click() (float64, float64, bool) {
	if !f.HasClk {
		return 0, 0, false
	}
	f.HasClk = false
	return f.ClickX, f.ClickY, true
}

// PressStart arms the start key for the next poll.
func (f *Fake) PressStart() { f.Start = true }

// Press arms a direction key for the next poll.
func (f *Fake) Press(d Direction) { f.Dir = d }

// ClickAt arms a click for the next poll.
func (f *Fake) ClickAt(x, y float64) {
	f.ClickX, f.ClickY, f.HasClk = x, y, true
}
