package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/zurustar/gemcross/pkg/geom"
)

var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Ebiten renders onto an *ebiten.Image.
type Ebiten struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

// NewEbiten wraps dst. The wrapper is cheap; the game loop creates one
// per frame around the screen image.
func NewEbiten(dst *ebiten.Image) *Ebiten {
	return &Ebiten{dst: dst}
}

func (e *Ebiten) Size() (float64, float64) {
	b := e.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (e *Ebiten) Clear(r geom.Rect, c color.Color) {
	x, y := e.geo.Apply(r.X, r.Y)
	vector.DrawFilledRect(e.dst, float32(x), float32(y), float32(r.W), float32(r.H), c, false)
}

func (e *Ebiten) DrawImage(img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(e.geo)
	e.dst.DrawImage(img, op)
}

func (e *Ebiten) DrawImageScaled(img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(e.geo)
	e.dst.DrawImage(img, op)
}

func (e *Ebiten) DrawText(s string, x, y float64, style TextStyle) {
	scale := style.Scale
	if scale <= 0 {
		scale = 1
	}
	col := style.Color
	if col == nil {
		col = color.White
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(e.geo)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(e.dst, s, defaultFace, op)
}

func (e *Ebiten) Save() {
	e.stack = append(e.stack, e.geo)
}

func (e *Ebiten) Restore() {
	if n := len(e.stack); n > 0 {
		e.geo = e.stack[n-1]
		e.stack = e.stack[:n-1]
	}
}

func (e *Ebiten) Translate(dx, dy float64) {
	e.geo.Translate(dx, dy)
}
