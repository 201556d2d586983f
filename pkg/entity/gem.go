package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/geom"
	"github.com/zurustar/gemcross/pkg/surface"
)

// Gem sits on a tile until the player collects it. A collected gem
// stays in the level slice but is skipped by update, render and
// collision, which makes collection idempotent.
type Gem struct {
	grid      geom.Grid
	col       int
	row       int
	value     int
	collected bool
	sprite    *ebiten.Image
}

// NewGem places a gem worth value points on (col, row).
func NewGem(grid geom.Grid, col, row, value int, sprite *ebiten.Image) *Gem {
	return &Gem{grid: grid, col: col, row: row, value: value, sprite: sprite}
}

// Update is a no-op; gems do not animate.
func (g *Gem) Update(float64) {}

// Render draws the gem slightly inset on its tile. Collected gems draw
// nothing.
func (g *Gem) Render(s surface.Surface) {
	if g.collected {
		return
	}
	r := g.grid.TileRect(g.col, g.row).Inset(16)
	s.DrawImageScaled(g.sprite, r.X, r.Y, r.W, r.H)
}

// Bounds returns the pickup box.
func (g *Gem) Bounds() geom.Rect {
	return g.grid.TileRect(g.col, g.row).Inset(collisionInset)
}

// Collect marks the gem taken and returns its value. Collecting an
// already-collected gem returns 0.
func (g *Gem) Collect() int {
	if g.collected {
		return 0
	}
	g.collected = true
	return g.value
}

// Collected reports whether the gem has been taken.
func (g *Gem) Collected() bool { return g.collected }

// Tile returns the gem's tile coordinates.
func (g *Gem) Tile() (col, row int) { return g.col, g.row }
