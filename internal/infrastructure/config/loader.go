package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/younwookim/skyflight/internal/domain/entity"
)

const (
	gameFile   = "game.json"
	levelsFile = "levels.yaml"
)

// Config holds all loaded configurations
type Config struct {
	Game   *GameConfig
	Levels *LevelsConfig
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// path returns the location of a config file as reported in errors
func (l *Loader) path(name string) string {
	return filepath.Join(l.basePath, name)
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameConfig, error) {
	path := l.path(gameFile)
	data, err := fs.ReadFile(l.fsys, gameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	return loadLevels(l.fsys, levelsFile, l.path(levelsFile))
}

// LoadAll loads every configuration file
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &Config{
		Game:   game,
		Levels: levels,
	}, nil
}

func validate(cfg *GameConfig) error {
	d := cfg.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("display: screen size must be positive, got %dx%d", d.ScreenWidth, d.ScreenHeight)
	}
	if d.TPS <= 0 {
		return fmt.Errorf("display: tps must be positive, got %d", d.TPS)
	}

	p := cfg.Player
	if p.Lives <= 0 {
		return fmt.Errorf("player: lives must be positive")
	}
	if p.Ammo < 0 {
		return fmt.Errorf("player: ammo must not be negative")
	}
	if p.FireCooldownMs < 0 {
		return fmt.Errorf("player: fireCooldownMs must not be negative")
	}
	if len(p.Guns) != 2 {
		return fmt.Errorf("player: exactly 2 guns required, got %d", len(p.Guns))
	}

	if float64(d.ScreenWidth) < cfg.Enemy.SpawnMargin {
		return fmt.Errorf("enemy: spawnMargin %v wider than the screen", cfg.Enemy.SpawnMargin)
	}

	for name, s := range map[string]ScheduleConfig{"enemy": cfg.Spawn.Enemy, "ammoDrop": cfg.Spawn.AmmoDrop} {
		if s.FloorMs <= 0 {
			return fmt.Errorf("spawn.%s: floorMs must be positive", name)
		}
		if s.BaseMs < s.FloorMs {
			return fmt.Errorf("spawn.%s: baseMs below floorMs", name)
		}
		if s.Loops < 0 {
			return fmt.Errorf("spawn.%s: loops must not be negative", name)
		}
	}

	if cfg.Scoring.LevelThreshold <= 0 {
		return fmt.Errorf("scoring: levelThreshold must be positive")
	}

	if _, err := entity.HitTestFor(cfg.Collision.Mode); err != nil {
		return fmt.Errorf("collision: %w", err)
	}

	for name, s := range cfg.Sprites {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("sprites.%s: size must be positive", name)
		}
		if n := len(s.Color); n != 0 && n != 3 && n != 4 {
			return fmt.Errorf("sprites.%s: color needs 3 or 4 components", name)
		}
	}
	return nil
}

// Loadout builds the player's default starting loadout
func (c *GameConfig) Loadout() entity.Loadout {
	p := c.Player
	var guns [2]entity.Point
	for i := range guns {
		if i < len(p.Guns) {
			guns[i] = entity.Point{X: p.Guns[i].X, Y: p.Guns[i].Y}
		}
	}
	return entity.Loadout{
		Speed:        p.Speed,
		Lives:        p.Lives,
		Ammo:         p.Ammo,
		FireCooldown: p.FireCooldown(),
		Guns:         guns,
		BombSpeed:    c.Bomb.Speed,
	}
}
