// Package match tracks a single game run from start to finish so its
// outcome can be recorded. Player 1 is always the local human player,
// the opponent can be the CPU or nobody (solo games).
package match

import (
	"fmt"
	"time"
)

// Mode defines how a game run is configured.
type Mode int

const (
	// ModeSolo is a single-player game (Teddy Toss).
	ModeSolo Mode = iota

	// ModeVsCPU is player vs computer (Pong vs AI).
	ModeVsCPU
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "Solo"
	case ModeVsCPU:
		return "vs CPU"
	default:
		return "Unknown"
	}
}

// Key returns a stable identifier for persistence.
func (m Mode) Key() string {
	switch m {
	case ModeSolo:
		return "solo"
	case ModeVsCPU:
		return "vs_cpu"
	default:
		return "unknown"
	}
}

// Match represents a game run in progress.
type Match struct {
	ID        string
	GameID    string
	Mode      Mode
	StartedAt time.Time
}

// Start begins tracking a new game run.
func Start(gameID string, mode Mode) *Match {
	now := time.Now()
	return &Match{
		ID:        fmt.Sprintf("%s-%d", gameID, now.UnixNano()),
		GameID:    gameID,
		Mode:      mode,
		StartedAt: now,
	}
}

// Result contains the outcome of a completed game run.
type Result struct {
	MatchID       string
	GameID        string
	Mode          Mode
	PlayerScore   int
	OpponentScore int
	Winner        int // 0=none, 1=player, 2=opponent
	Duration      time.Duration
}

// Finish completes the match with the final scores.
func (m *Match) Finish(playerScore, opponentScore, winner int) Result {
	return Result{
		MatchID:       m.ID,
		GameID:        m.GameID,
		Mode:          m.Mode,
		PlayerScore:   playerScore,
		OpponentScore: opponentScore,
		Winner:        winner,
		Duration:      time.Since(m.StartedAt),
	}
}

// ResultSaver persists completed match results.
type ResultSaver interface {
	SaveMatch(res Result) error
}
