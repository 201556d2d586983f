package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/geom"
	"github.com/zurustar/gemcross/pkg/input"
	"github.com/zurustar/gemcross/pkg/surface"
)

// Player is the tile-hopping protagonist. It persists across a life
// lost and across a continue; only a full restart recreates it.
type Player struct {
	grid     geom.Grid
	col      int
	row      int
	startCol int
	startRow int
	lives    int
	score    int
	pending  input.Direction
	sprite   *ebiten.Image
}

// NewPlayer creates a player at its starting tile.
func NewPlayer(grid geom.Grid, startCol, startRow, lives int, sprite *ebiten.Image) *Player {
	return &Player{
		grid:     grid,
		col:      startCol,
		row:      startRow,
		startCol: startCol,
		startRow: startRow,
		lives:    lives,
		sprite:   sprite,
	}
}

// QueueMove records a move signal from the keyboard listener. Only the
// last signal before the next update wins; the listener never moves
// the player directly.
func (p *Player) QueueMove(d input.Direction) {
	p.pending = d
}

// Update applies at most one queued move, clamped to the board.
func (p *Player) Update(_ float64) {
	switch p.pending {
	case input.DirUp:
		p.row = p.grid.ClampRow(p.row - 1)
	case input.DirDown:
		p.row = p.grid.ClampRow(p.row + 1)
	case input.DirLeft:
		p.col = p.grid.ClampCol(p.col - 1)
	case input.DirRight:
		p.col = p.grid.ClampCol(p.col + 1)
	}
	p.pending = input.DirNone
}

// Render draws the player sprite over its tile.
func (p *Player) Render(s surface.Surface) {
	r := p.grid.TileRect(p.col, p.row)
	s.DrawImageScaled(p.sprite, r.X, r.Y, r.W, r.H)
}

// Bounds returns the collision box.
func (p *Player) Bounds() geom.Rect {
	return p.grid.TileRect(p.col, p.row).Inset(collisionInset)
}

// Tile returns the current tile coordinates.
func (p *Player) Tile() (col, row int) {
	return p.col, p.row
}

// ResetPosition moves the player back to its starting tile and drops
// any queued move.
func (p *Player) ResetPosition() {
	p.col = p.startCol
	p.row = p.startRow
	p.pending = input.DirNone
}

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// LoseLife removes one life and returns the remainder.
func (p *Player) LoseLife() int {
	if p.lives > 0 {
		p.lives--
	}
	return p.lives
}

// Score returns the accumulated score.
func (p *Player) Score() int { return p.score }

// AddScore adds n points.
func (p *Player) AddScore(n int) { p.score += n }
