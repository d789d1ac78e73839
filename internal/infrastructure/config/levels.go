package config

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/skyflight/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// LevelConfig parameterizes one level of the campaign
type LevelConfig struct {
	Number          int     `yaml:"number"`
	Name            string  `yaml:"name"`
	Background      string  `yaml:"background"`
	SpeedMultiplier float64 `yaml:"speedMultiplier"`
	EnemyQuota      int     `yaml:"enemyQuota"`
	Lives           int     `yaml:"lives"`
	Ammo            int     `yaml:"ammo"`
}

// ApplyTo replaces a loadout's lives and ammo with the level's, including an
// ammo of 0. Levels past the table carry no lives and leave the loadout alone.
func (l LevelConfig) ApplyTo(lo *entity.Loadout) {
	if l.Lives <= 0 {
		return
	}
	lo.Lives = l.Lives
	lo.Ammo = l.Ammo
}

// LevelsConfig is the root config for levels.yaml
type LevelsConfig struct {
	DefaultBackground string        `yaml:"defaultBackground"`
	Levels            []LevelConfig `yaml:"levels"`
}

// Level returns the config for a level number. Levels past the table
// reuse the default background at normal speed with no quota.
func (c *LevelsConfig) Level(n int) LevelConfig {
	for _, l := range c.Levels {
		if l.Number == n {
			return l
		}
	}
	return LevelConfig{
		Number:          n,
		Name:            fmt.Sprintf("Level %d", n),
		Background:      c.DefaultBackground,
		SpeedMultiplier: 1,
	}
}

// Background returns the background sprite name for a level
func (c *LevelsConfig) Background(n int) string {
	return c.Level(n).Background
}

// Count returns the number of selectable levels
func (c *LevelsConfig) Count() int {
	return len(c.Levels)
}

// loadLevels reads name from fsys; path names the file in errors
func loadLevels(fsys fs.FS, name, path string) (*LevelsConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg LevelsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := validateLevels(&cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &cfg, nil
}

func validateLevels(cfg *LevelsConfig) error {
	if cfg.DefaultBackground == "" {
		return fmt.Errorf("defaultBackground is required")
	}
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}

	for i, l := range cfg.Levels {
		if l.Number != i+1 {
			return fmt.Errorf("level %d: number must be %d", l.Number, i+1)
		}
		if l.Background == "" {
			return fmt.Errorf("level %d: background is required", l.Number)
		}
		if l.SpeedMultiplier <= 0 {
			return fmt.Errorf("level %d: speedMultiplier must be positive", l.Number)
		}
		if l.EnemyQuota < 0 {
			return fmt.Errorf("level %d: enemyQuota must not be negative", l.Number)
		}
		if l.Lives <= 0 {
			return fmt.Errorf("level %d: lives must be positive", l.Number)
		}
		if l.Ammo < 0 {
			return fmt.Errorf("level %d: ammo must not be negative", l.Number)
		}
	}
	return nil
}
