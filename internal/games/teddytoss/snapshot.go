package teddytoss

import "math"

// BodySnapshot captures one moving object's position and velocity.
type BodySnapshot struct {
	X, Y   float64
	VX, VY float64
}

// Snapshot captures the complete game state for testing and debugging.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	State     string
	LauncherX float64
	Bears     []BodySnapshot
	Darts     []BodySnapshot
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Lives:     g.lives,
		State:     "playing",
		LauncherX: g.launcher.X,
	}

	if g.gameOver {
		s.State = "gameover"
	} else if g.paused {
		s.State = "paused"
	}

	for _, b := range g.bears {
		if b.Alive {
			s.Bears = append(s.Bears, BodySnapshot{X: b.Rect.X, Y: b.Rect.Y, VX: b.Vel.X, VY: b.Vel.Y})
		}
	}
	for _, d := range g.darts {
		if d.Alive {
			s.Darts = append(s.Darts, BodySnapshot{X: d.Rect.X, Y: d.Rect.Y, VX: d.Vel.X, VY: d.Vel.Y})
		}
	}

	return s
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.LauncherX)

	for i := 0; i < len(snap.State); i++ {
		h = h*31 + uint64(snap.State[i])
	}

	for _, b := range snap.Bears {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
	}

	for _, d := range snap.Darts {
		h = h*31 + math.Float64bits(d.X)
		h = h*31 + math.Float64bits(d.Y)
		h = h*31 + math.Float64bits(d.VX)
		h = h*31 + math.Float64bits(d.VY)
	}

	return h
}
