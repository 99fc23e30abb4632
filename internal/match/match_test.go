package match

import (
	"strings"
	"testing"
	"time"
)

func TestStartAndFinish(t *testing.T) {
	m := Start("pong", ModeVsCPU)

	if !strings.HasPrefix(m.ID, "pong-") {
		t.Errorf("Expected match ID prefixed with game ID, got %s", m.ID)
	}
	if m.GameID != "pong" {
		t.Errorf("Expected game ID pong, got %s", m.GameID)
	}

	time.Sleep(time.Millisecond)
	res := m.Finish(5, 3, 1)

	if res.MatchID != m.ID {
		t.Errorf("Expected result to carry the match ID, got %s", res.MatchID)
	}
	if res.PlayerScore != 5 || res.OpponentScore != 3 {
		t.Errorf("Expected scores 5-3, got %d-%d", res.PlayerScore, res.OpponentScore)
	}
	if res.Winner != 1 {
		t.Errorf("Expected winner 1, got %d", res.Winner)
	}
	if res.Duration <= 0 {
		t.Errorf("Expected positive duration, got %v", res.Duration)
	}
}

func TestModeNames(t *testing.T) {
	cases := []struct {
		mode Mode
		name string
		key  string
	}{
		{ModeSolo, "Solo", "solo"},
		{ModeVsCPU, "vs CPU", "vs_cpu"},
		{Mode(99), "Unknown", "unknown"},
	}

	for _, c := range cases {
		if c.mode.String() != c.name {
			t.Errorf("Expected name %q, got %q", c.name, c.mode.String())
		}
		if c.mode.Key() != c.key {
			t.Errorf("Expected key %q, got %q", c.key, c.mode.Key())
		}
	}
}
