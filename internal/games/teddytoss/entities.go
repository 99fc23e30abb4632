package teddytoss

import (
	"github.com/ricochet-arcade/ricochet/internal/physics"
)

// Bear is a bouncing target. Velocity is in cells per millisecond; Rect is
// the end-of-current-tick position the collision engine works on.
type Bear struct {
	Vel   physics.Vec
	Rect  physics.Rect
	Alive bool
}

// Body packages the bear for the collision engine.
func (b *Bear) Body() physics.Body {
	return physics.Body{Vel: b.Vel, Rect: b.Rect}
}

// Advance moves the bear to its end-of-tick position.
func (b *Bear) Advance(stepMs int) {
	b.Rect = b.Rect.Translate(b.Vel.Scale(float64(stepMs)))
}

// Dart is a projectile fired from the launcher. It flies straight up and
// pops the first bear it touches.
type Dart struct {
	Vel   physics.Vec
	Rect  physics.Rect
	Alive bool
}

// Advance moves the dart to its end-of-tick position.
func (d *Dart) Advance(stepMs int) {
	d.Rect = d.Rect.Translate(d.Vel.Scale(float64(stepMs)))
}

// Launcher is the player's cart at the bottom of the arena. It slides
// horizontally and is not part of the bounce simulation: a bear touching it
// costs a life instead.
type Launcher struct {
	X float64 // left edge
	Y float64 // top edge, fixed
	W float64
	H float64
}

// Rect returns the launcher's collision rectangle.
func (l Launcher) Rect() physics.Rect {
	return physics.NewRect(l.X, l.Y, l.W, l.H)
}

// MuzzleX returns the x-coordinate darts are fired from.
func (l Launcher) MuzzleX() float64 {
	return l.X + l.W/2
}

// wall indices into the arena wall slice.
const (
	wallTop = iota
	wallBottom
	wallLeft
	wallRight
)

// arenaWalls returns the four static border rectangles enclosing the play
// field. The top wall sits below the HUD row; bears bounce off the walls'
// inner faces.
func arenaWalls(screenW, screenH float64) [4]physics.Rect {
	return [4]physics.Rect{
		wallTop:    physics.NewRect(0, 1, screenW, 1),
		wallBottom: physics.NewRect(0, screenH-1, screenW, 1),
		wallLeft:   physics.NewRect(0, 1, 1, screenH-2),
		wallRight:  physics.NewRect(screenW-1, 1, 1, screenH-2),
	}
}
