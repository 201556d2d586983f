package entity

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/geom"
	"github.com/zurustar/gemcross/pkg/surface"
)

// MenuOption is one clickable entry of the post-goal menu. Choice is an
// opaque tag the game maps back to a selection.
type MenuOption struct {
	label  string
	rect   geom.Rect
	choice int
	sprite *ebiten.Image
}

// NewMenuOption creates an option covering rect.
func NewMenuOption(label string, rect geom.Rect, choice int, sprite *ebiten.Image) *MenuOption {
	return &MenuOption{label: label, rect: rect, choice: choice, sprite: sprite}
}

// Update is a no-op; menu options are static.
func (m *MenuOption) Update(float64) {}

// Render draws the option background and its label.
func (m *MenuOption) Render(s surface.Surface) {
	s.DrawImageScaled(m.sprite, m.rect.X, m.rect.Y, m.rect.W, m.rect.H)
	s.DrawText(m.label, m.rect.X+12, m.rect.Y+m.rect.H/2+4, surface.TextStyle{Color: color.White})
}

// Contains reports whether the pointer position hits this option.
func (m *MenuOption) Contains(x, y float64) bool {
	return m.rect.Contains(x, y)
}

// Choice returns the opaque selection tag.
func (m *MenuOption) Choice() int { return m.choice }

// Rect returns the clickable area.
func (m *MenuOption) Rect() geom.Rect { return m.rect }

// Label returns the visible text.
func (m *MenuOption) Label() string { return m.label }
