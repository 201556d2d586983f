package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/geom"
)

// Op kinds recorded by the Recorder.
const (
	OpClear     = "clear"
	OpImage     = "image"
	OpText      = "text"
	OpSave      = "save"
	OpRestore   = "restore"
	OpTranslate = "translate"
)

// Op is one recorded drawing operation.
type Op struct {
	Kind string
	X    float64
	Y    float64
	W    float64
	H    float64
	Text string
}

// Recorder is a headless Surface that records every operation instead
// of drawing. Render tests assert against the op stream.
type Recorder struct {
	W   float64
	H   float64
	Ops []Op

	dx, dy float64
	stack  [][2]float64
}

// NewRecorder creates a recorder with the given dimensions.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(rect geom.Rect, _ color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, X: rect.X + r.dx, Y: rect.Y + r.dy, W: rect.W, H: rect.H})
}

// DrawImage records the blit. Nil images are recorded too: tests feed
// entities nil sprites and still want to see the draw attempt.
func (r *Recorder) DrawImage(_ *ebiten.Image, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x + r.dx, Y: y + r.dy})
}

func (r *Recorder) DrawImageScaled(_ *ebiten.Image, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, X: x + r.dx, Y: y + r.dy, W: w, H: h})
}

func (r *Recorder) DrawText(s string, x, y float64, _ TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x + r.dx, Y: y + r.dy, Text: s})
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, [2]float64{r.dx, r.dy})
	r.Ops = append(r.Ops, Op{Kind: OpSave})
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.dx, r.dy = r.stack[n-1][0], r.stack[n-1][1]
		r.stack = r.stack[:n-1]
	}
	r.Ops = append(r.Ops, Op{Kind: OpRestore})
}

func (r *Recorder) Translate(dx, dy float64) {
	r.dx += dx
	r.dy += dy
	r.Ops = append(r.Ops, Op{Kind: OpTranslate, X: dx, Y: dy})
}

// Reset drops all recorded operations and transform state.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.dx, r.dy = 0, 0
	r.stack = nil
}

// Count returns how many operations of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every recorded text string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
