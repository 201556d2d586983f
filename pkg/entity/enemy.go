package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/geom"
	"github.com/zurustar/gemcross/pkg/surface"
)

// Enemy sweeps horizontally across one lane at a fixed speed and wraps
// around when it leaves the board.
type Enemy struct {
	grid   geom.Grid
	x      float64
	row    int
	speed  float64 // pixels per second
	sprite *ebiten.Image
}

// NewEnemy creates an enemy at pixel x on the given lane.
func NewEnemy(grid geom.Grid, x float64, row int, speed float64, sprite *ebiten.Image) *Enemy {
	return &Enemy{grid: grid, x: x, row: row, speed: speed, sprite: sprite}
}

// Update advances the enemy by speed*dt and wraps it one tile off the
// left edge after it fully leaves the right edge.
func (e *Enemy) Update(dt float64) {
	e.x += e.speed * dt
	if e.x > e.grid.Width() {
		e.x = -e.grid.TileW
	}
}

// Render draws the enemy sprite over its lane.
func (e *Enemy) Render(s surface.Surface) {
	s.DrawImageScaled(e.sprite, e.x, e.grid.PixelY(e.row), e.grid.TileW, e.grid.TileH)
}

// Bounds returns the collision box.
func (e *Enemy) Bounds() geom.Rect {
	r := geom.Rect{X: e.x, Y: e.grid.PixelY(e.row), W: e.grid.TileW, H: e.grid.TileH}
	return r.Inset(collisionInset)
}

// Row returns the lane this enemy occupies.
func (e *Enemy) Row() int { return e.row }

// X returns the current pixel position, used by tests.
func (e *Enemy) X() float64 { return e.x }

// SetX places the enemy at pixel x.
func (e *Enemy) SetX(x float64) { e.x = x }
