// Package geom provides the tile-grid geometry shared by entities,
// collision checks and click hit-testing.
package geom

// Point is a position in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Intersects reports whether r and o overlap. Rectangles that merely
// touch at an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by d pixels on every side. An inset larger than half
// the rectangle collapses it to an empty rectangle at its center.
func (r Rect) Inset(d float64) Rect {
	if 2*d >= r.W || 2*d >= r.H {
		return Rect{X: r.X + r.W/2, Y: r.Y + r.H/2}
	}
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Grid maps between tile coordinates and pixel coordinates for a fixed
// board. Row 0 is the topmost (goal) row.
type Grid struct {
	Cols  int
	Rows  int
	TileW float64
	TileH float64
}

// Width returns the board width in pixels.
func (g Grid) Width() float64 {
	return float64(g.Cols) * g.TileW
}

// Height returns the board height in pixels.
func (g Grid) Height() float64 {
	return float64(g.Rows) * g.TileH
}

// PixelX returns the left edge of the given column.
func (g Grid) PixelX(col int) float64 {
	return float64(col) * g.TileW
}

// PixelY returns the top edge of the given row.
func (g Grid) PixelY(row int) float64 {
	return float64(row) * g.TileH
}

// TileRect returns the pixel rectangle covered by the tile at (col, row).
func (g Grid) TileRect(col, row int) Rect {
	return Rect{X: g.PixelX(col), Y: g.PixelY(row), W: g.TileW, H: g.TileH}
}

// ColAt returns the column containing pixel x, clamped to the board.
func (g Grid) ColAt(x float64) int {
	return clamp(int(x/g.TileW), 0, g.Cols-1)
}

// RowAt returns the row containing pixel y, clamped to the board.
func (g Grid) RowAt(y float64) int {
	return clamp(int(y/g.TileH), 0, g.Rows-1)
}

// ClampCol keeps a column index on the board.
func (g Grid) ClampCol(col int) int {
	return clamp(col, 0, g.Cols-1)
}

// ClampRow keeps a row index on the board.
func (g Grid) ClampRow(row int) int {
	return clamp(row, 0, g.Rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
