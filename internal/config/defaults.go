package config

import (
	_ "embed"
)

//go:embed defaults/teddytoss.yaml
var defaultTeddyTossYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultTeddyTossConfig returns the default Teddy Toss configuration.
func DefaultTeddyTossConfig() TeddyTossConfig {
	return TeddyTossConfig{
		Physics: TeddyTossPhysics{
			MinBearSpeed:  0.15,
			MaxBearSpeed:  0.4,
			DartSpeed:     0.8,
			LauncherSpeed: 1.0,
		},
		Bears: TeddyTossBears{
			Width:           4,
			Height:          3,
			SpawnEveryTicks: 180,
			MaxOnScreen:     6,
			SpawnAttempts:   12,
		},
		Launcher: TeddyTossLauncher{
			Width:  7,
			Height: 2,
		},
		Gameplay: TeddyTossGameplay{
			Lives:             3,
			BurstPoints:       10,
			FireCooldownTicks: 18,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.8,
				IntervalReduction: 120,
			},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:   0.5,
			PaddleSpeed: 1.0,
			// Kept below the combined ball and paddle extent so a crossing
			// ball always overlaps the paddle at some tick boundary.
			MaxBallSpeed: 0.9,
			SpinFactor:   0.3,
		},
		Paddles: PongPaddles{
			Height: 5,
			Width:  1,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 60,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "teddytoss":
		return defaultTeddyTossYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
