package entity

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/surface"
)

// Mascot is the title-screen sprite, bobbing on a sine wave.
type Mascot struct {
	x         float64
	y         float64
	w         float64
	h         float64
	amplitude float64
	period    float64 // seconds per full bob
	t         float64
	sprite    *ebiten.Image
}

// NewMascot creates a mascot anchored at (x, y) with size w x h.
func NewMascot(x, y, w, h float64, sprite *ebiten.Image) *Mascot {
	return &Mascot{x: x, y: y, w: w, h: h, amplitude: 12, period: 2, sprite: sprite}
}

// Update advances the bob phase.
func (m *Mascot) Update(dt float64) {
	m.t += dt
	// Keep the phase bounded over long title screens.
	if m.t > m.period {
		m.t -= m.period
	}
}

// Render draws the mascot at its current bob offset.
func (m *Mascot) Render(s surface.Surface) {
	s.DrawImageScaled(m.sprite, m.x, m.y+m.Offset(), m.w, m.h)
}

// Offset returns the current vertical bob displacement.
func (m *Mascot) Offset() float64 {
	return m.amplitude * math.Sin(2*math.Pi*m.t/m.period)
}
