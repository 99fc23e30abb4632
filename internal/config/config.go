// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// TeddyTossConfig contains all configuration for the Teddy Toss game.
type TeddyTossConfig struct {
	Physics    TeddyTossPhysics  `yaml:"physics"`
	Bears      TeddyTossBears    `yaml:"bears"`
	Launcher   TeddyTossLauncher `yaml:"launcher"`
	Gameplay   TeddyTossGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// TeddyTossPhysics defines movement parameters, in cells per tick.
type TeddyTossPhysics struct {
	MinBearSpeed  float64 `yaml:"min_bear_speed"`
	MaxBearSpeed  float64 `yaml:"max_bear_speed"`
	DartSpeed     float64 `yaml:"dart_speed"`
	LauncherSpeed float64 `yaml:"launcher_speed"`
}

// TeddyTossBears defines bear spawning parameters.
type TeddyTossBears struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SpawnEveryTicks int `yaml:"spawn_every_ticks"`
	MaxOnScreen     int `yaml:"max_on_screen"`
	SpawnAttempts   int `yaml:"spawn_attempts"`
}

// TeddyTossLauncher defines the player's launcher dimensions.
type TeddyTossLauncher struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TeddyTossGameplay defines scoring and lives.
type TeddyTossGameplay struct {
	Lives             int `yaml:"lives"`
	BurstPoints       int `yaml:"burst_points"`
	FireCooldownTicks int `yaml:"fire_cooldown_ticks"`
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Physics    PongPhysics      `yaml:"physics"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPhysics defines ball and paddle movement, in cells per tick.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
	SpinFactor   float64 `yaml:"spin_factor"`
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Offset int `yaml:"offset"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore   int `yaml:"win_score"`
	ServeDelay int `yaml:"serve_delay"`
}

// PongCPU defines the computer opponent's skill range.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction (ticks) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
