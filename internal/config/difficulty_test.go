package config

import "testing"

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 60},
	})

	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Level(0) = %v, expected 0", got)
	}
	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, expected 0.5", got)
	}
	if got := d.Level(100, 0); got != 1.0 {
		t.Errorf("Level(100) = %v, expected 1", got)
	}
	// Past the maximum, progress clamps
	if got := d.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %v, expected 1", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() = true for a disabled config")
	}
	if got := d.Level(90, 0); got != 0.3 {
		t.Errorf("Level() = %v, expected the initial level 0.3", got)
	}
}

func TestDifficultySpeedAndInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 100},
	})

	if got := d.Speed(0.5, 0, 0); got != 0.5 {
		t.Errorf("Speed() at level 0 = %v, expected 0.5", got)
	}
	if got := d.Speed(0.5, 100, 0); got != 1.0 {
		t.Errorf("Speed() at level 1 = %v, expected 1.0", got)
	}

	if got := d.Interval(180, 0, 0); got != 180 {
		t.Errorf("Interval() at level 0 = %d, expected 180", got)
	}
	if got := d.Interval(180, 100, 0); got != 80 {
		t.Errorf("Interval() at level 1 = %d, expected 80", got)
	}
	// The floor keeps spawns playable
	if got := d.Interval(40, 100, 0); got != 30 {
		t.Errorf("Interval() below floor = %d, expected 30", got)
	}
}

func TestDifficultyPresets(t *testing.T) {
	cfg := DefaultTeddyTossConfig()
	ApplyTeddyTossPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Gameplay.Lives)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v, expected enabled at 0.7", cfg.Difficulty)
	}

	cfg = DefaultTeddyTossConfig()
	ApplyTeddyTossPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	pong := DefaultPongConfig()
	ApplyPongPreset(&pong, DifficultyEasy)
	if pong.CPU.MaxSkill != 0.7 {
		t.Errorf("easy preset cpu max skill = %v, expected 0.7", pong.CPU.MaxSkill)
	}
}
