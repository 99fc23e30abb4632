package pong

import "math"

// Snapshot captures the complete game state for testing and debugging.
type Snapshot struct {
	Tick     int
	BallX    float64
	BallY    float64
	BallVX   float64
	BallVY   float64
	Paddle1Y float64
	Paddle2Y float64
	Score1   int
	Score2   int
	State    string
	Winner   int // 0=none, 1=Player1, 2=Player2
	Serving  bool
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tickCount,
		BallX:    g.ball.Rect.X,
		BallY:    g.ball.Rect.Y,
		BallVX:   g.ball.Vel.X,
		BallVY:   g.ball.Vel.Y,
		Paddle1Y: g.paddle1Y,
		Paddle2Y: g.paddle2Y,
		Score1:   g.score1,
		Score2:   g.score2,
		State:    "playing",
		Winner:   g.winner,
		Serving:  g.serving,
	}

	if g.gameOver {
		s.State = "gameover"
	} else if g.paused {
		s.State = "paused"
	}

	return s
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.Paddle1Y)
	h = h*31 + math.Float64bits(snap.Paddle2Y)
	h = h*31 + uint64(snap.Score1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner) //#nosec G115 -- hash computation

	for i := 0; i < len(snap.State); i++ {
		h = h*31 + uint64(snap.State[i])
	}

	if snap.Serving {
		h = h*31 + 1
	} else {
		h *= 31
	}

	return h
}
