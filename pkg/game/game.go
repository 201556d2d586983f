package game

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/surface"
)

// EbitenGame adapts the Loop to Ebitengine's game interface. The host
// calls Update then Draw once per display refresh, which preserves the
// loop's update-before-render guarantee.
type EbitenGame struct {
	loop *Loop
	w    int
	h    int
}

// NewEbitenGame creates the adapter with a fixed logical screen size.
func NewEbitenGame(loop *Loop, w, h int) *EbitenGame {
	return &EbitenGame{loop: loop, w: w, h: h}
}

// Update runs the update half of the frame. Once the loop is
// cancelled it returns ebiten.Termination so the host stops scheduling
// frames.
func (g *EbitenGame) Update() error {
	err := g.loop.UpdateFrame(time.Now())
	if errors.Is(err, ErrLoopCancelled) {
		return ebiten.Termination
	}
	return err
}

// Draw runs the render half of the frame onto the host screen.
func (g *EbitenGame) Draw(screen *ebiten.Image) {
	g.loop.RenderFrame(surface.NewEbiten(screen))
}

// Layout reports the fixed logical resolution regardless of the window
// size; Ebitengine letterboxes as needed.
func (g *EbitenGame) Layout(int, int) (int, int) {
	return g.w, g.h
}
