package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTeddyToss loads Teddy Toss configuration.
// Search order: customPath -> ~/.ricochet/configs/teddytoss.yaml -> ./configs/teddytoss.yaml -> embedded default
func LoadTeddyToss(customPath string) (TeddyTossConfig, error) {
	var cfg TeddyTossConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("teddytoss.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/teddytoss.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTeddyTossYAML, &cfg); err != nil {
		return DefaultTeddyTossConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.ricochet/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	var cfg PongConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pong.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ricochet", "configs", filename)
}

// ApplyTeddyTossPreset modifies the config based on a difficulty preset.
func ApplyTeddyTossPreset(cfg *TeddyTossConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Bears.MaxOnScreen = 4
		cfg.Bears.SpawnEveryTicks = 240
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Bears.MaxOnScreen = 8
		cfg.Bears.SpawnEveryTicks = 120
		cfg.Physics.MaxBearSpeed = 0.55
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the CPU opponent based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.CPU.MinSkill = 0.45
		cfg.CPU.MaxSkill = 0.7
	case DifficultyHard:
		cfg.CPU.MinSkill = 0.75
		cfg.CPU.MaxSkill = 0.95
	}
}
