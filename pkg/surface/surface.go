// Package surface abstracts the 2D drawing target so rendering can be
// exercised without a window.
package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/geom"
)

// TextStyle controls text drawing.
type TextStyle struct {
	Color color.Color
	Scale float64 // 1 = native bitmap font size
}

// Surface is the drawing target owned by the render dispatch. All
// coordinates are in board pixels; implementations must not panic for
// in-bounds coordinates or nil images.
type Surface interface {
	// Size returns the surface dimensions.
	Size() (w, h float64)

	// Clear fills r with c.
	Clear(r geom.Rect, c color.Color)

	// DrawImage blits img with its top-left corner at (x, y).
	DrawImage(img *ebiten.Image, x, y float64)

	// DrawImageScaled blits img stretched to w x h at (x, y).
	DrawImageScaled(img *ebiten.Image, x, y, w, h float64)

	// DrawText draws s with its baseline origin at (x, y).
	DrawText(s string, x, y float64, style TextStyle)

	// Save pushes the current transform, Restore pops it.
	Save()
	Restore()

	// Translate offsets the current transform by (dx, dy).
	Translate(dx, dy float64)
}
