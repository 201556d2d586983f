package game

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/zurustar/gemcross/pkg/assets"
	"github.com/zurustar/gemcross/pkg/geom"
	"github.com/zurustar/gemcross/pkg/surface"
)

var (
	backdropColor = color.RGBA{0x16, 0x1A, 0x21, 0xFF}
	overlayColor  = color.RGBA{0x00, 0x00, 0x00, 0x99}
	hudColor      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	accentColor   = color.RGBA{0xFC, 0xE9, 0x4F, 0xFF}
)

// Render produces one complete frame for the current state. It is a
// pure read of the world: background first, then HUD, state overlay,
// entities and menu, in that order, so later layers occlude earlier
// ones.
func (w *World) Render(s surface.Surface) {
	switch w.machine.Current() {
	case StateTitle:
		w.renderTitle(s)
	case StateActive:
		w.renderActive(s)
	case StateSafe:
		w.renderSafe(s)
	case StateGameOver:
		w.renderGameOver(s)
	}
}

func (w *World) renderTitle(s surface.Surface) {
	sw, sh := s.Size()
	s.Clear(geom.Rect{W: sw, H: sh}, backdropColor)
	w.renderBoard(s)

	s.DrawText("GEMCROSS", sw/2-70, sh/4, surface.TextStyle{Color: accentColor, Scale: 2})
	s.DrawText("Press Enter to start", sw/2-70, sh/4+28, surface.TextStyle{Color: hudColor})

	if w.mascot != nil {
		w.mascot.Render(s)
	}
}

func (w *World) renderActive(s surface.Surface) {
	w.renderBoard(s)
	w.renderHUD(s)

	for _, g := range w.gems {
		g.Render(s)
	}
	for _, e := range w.enemies {
		e.Render(s)
	}
	if w.player != nil {
		w.player.Render(s)
	}
}

func (w *World) renderSafe(s surface.Surface) {
	// Same scene as active play underneath the menu.
	w.renderActive(s)

	sw, sh := s.Size()
	s.Clear(geom.Rect{W: sw, H: sh}, overlayColor)
	s.DrawText("You made it across!", sw/2-80, sh/4, surface.TextStyle{Color: accentColor, Scale: 2})

	for _, opt := range w.menu {
		opt.Render(s)
	}
}

func (w *World) renderGameOver(s surface.Surface) {
	sw, sh := s.Size()
	s.Clear(geom.Rect{W: sw, H: sh}, backdropColor)

	s.DrawText("GAME OVER", sw/2-60, sh/3, surface.TextStyle{Color: accentColor, Scale: 2})
	if w.player != nil {
		s.DrawText(fmt.Sprintf("Final score: %d", w.player.Score()), sw/2-60, sh/3+28, surface.TextStyle{Color: hudColor})
	}
	s.DrawText("Thanks for playing!", sw/2-60, sh/3+48, surface.TextStyle{Color: hudColor})

	s.DrawImageScaled(w.sprite(assets.IDStar), sw/2-120, sh*2/3, 64, 64)
	s.DrawImageScaled(w.sprite(assets.IDPlayer), sw/2+56, sh*2/3, 64, 64)
}

// renderBoard tiles the background: water on the goal row, stone on
// the enemy lanes, grass everywhere else.
func (w *World) renderBoard(s surface.Surface) {
	for row := 0; row < w.grid.Rows; row++ {
		id := assets.IDGrass
		switch {
		case row == GoalRow:
			id = assets.IDWater
		case slices.Contains(w.cfg.Enemies.Lanes, row):
			id = assets.IDStone
		}
		img := w.sprite(id)
		for col := 0; col < w.grid.Cols; col++ {
			r := w.grid.TileRect(col, row)
			s.DrawImageScaled(img, r.X, r.Y, r.W, r.H)
		}
	}
}

func (w *World) renderHUD(s surface.Surface) {
	if w.player == nil {
		return
	}
	sw, sh := s.Size()

	s.DrawText(fmt.Sprintf("Score: %d", w.player.Score()), 8, 16, surface.TextStyle{Color: hudColor})

	heart := w.sprite(assets.IDHeart)
	const heartSize = 20
	for i := 0; i < w.player.Lives(); i++ {
		s.DrawImageScaled(heart, sw-float64(i+1)*(heartSize+4), 4, heartSize, heartSize)
	}

	s.DrawText("Arrows to move, reach the water", 8, sh-8, surface.TextStyle{Color: hudColor})
}
