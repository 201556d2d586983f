// Package entity defines the game objects participating in the frame
// loop: everything that can be updated with a time delta and rendered
// onto a surface.
package entity

import "github.com/zurustar/gemcross/pkg/surface"

// Entity is the contract every game object satisfies. Update receives
// the elapsed seconds since the previous frame; a delta of zero is
// valid and must move nothing. Render must not mutate game state.
type Entity interface {
	Update(dt float64)
	Render(s surface.Surface)
}

// collisionInset shrinks tile-sized bounding boxes so sprites have to
// visibly overlap before a collision registers.
const collisionInset = 12
