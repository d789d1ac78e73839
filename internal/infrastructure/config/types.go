package config

import "time"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display   DisplayConfig           `json:"display"`
	Player    PlayerConfig            `json:"player"`
	Enemy     EnemyConfig             `json:"enemy"`
	Bomb      BombConfig              `json:"bomb"`
	AmmoDrop  AmmoDropConfig          `json:"ammoDrop"`
	Scoring   ScoringConfig           `json:"scoring"`
	Spawn     SpawnConfig             `json:"spawn"`
	Collision CollisionConfig         `json:"collision"`
	HUD       HUDConfig               `json:"hud"`
	Audio     AudioConfig             `json:"audio"`
	Sprites   map[string]SpriteConfig `json:"sprites"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	TPS          int    `json:"tps"`
	Title        string `json:"title"`
}

type PlayerConfig struct {
	Speed          float64       `json:"speed"`
	Lives          int           `json:"lives"`
	Ammo           int           `json:"ammo"`
	FireCooldownMs int           `json:"fireCooldownMs"`
	Guns           []PointConfig `json:"guns"` // Bomb spawn offsets from the plane's top-left
	Sprites        PlaneSprites  `json:"sprites"`
}

// FireCooldown returns the minimum time between two shots
func (p PlayerConfig) FireCooldown() time.Duration {
	return time.Duration(p.FireCooldownMs) * time.Millisecond
}

type PointConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PlaneSprites struct {
	Center string `json:"center"`
	Left   string `json:"left"`
	Right  string `json:"right"`
}

type EnemyConfig struct {
	Sprite      string  `json:"sprite"`
	Speed       float64 `json:"speed"`
	SpawnMargin float64 `json:"spawnMargin"` // Spawn x is in [0, screenWidth-spawnMargin]
}

type BombConfig struct {
	Sprite string  `json:"sprite"`
	Speed  float64 `json:"speed"`
}

type AmmoDropConfig struct {
	Sprite string  `json:"sprite"`
	Speed  float64 `json:"speed"`
	Ammo   int     `json:"ammo"`
	Score  int     `json:"score"`
}

type ScoringConfig struct {
	Kill           int `json:"kill"`
	LevelThreshold int `json:"levelThreshold"`
	ThresholdStep  int `json:"thresholdStep"`
}

type SpawnConfig struct {
	Enemy    ScheduleConfig `json:"enemy"`
	AmmoDrop ScheduleConfig `json:"ammoDrop"`
}

// ScheduleConfig describes a repeating spawn timer whose period
// shrinks with the level
type ScheduleConfig struct {
	BaseMs  int `json:"baseMs"`
	DecayMs int `json:"decayMs"` // Subtracted once per level
	FloorMs int `json:"floorMs"`
	Loops   int `json:"loops"` // Max firings, 0 for unlimited
}

// Period returns max(floor, base - level*decay)
func (s ScheduleConfig) Period(level int) time.Duration {
	ms := s.BaseMs - level*s.DecayMs
	if ms < s.FloorMs {
		ms = s.FloorMs
	}
	return time.Duration(ms) * time.Millisecond
}

type CollisionConfig struct {
	Mode string `json:"mode"` // "area" or "signed"
}

type HUDConfig struct {
	Lives     string  `json:"lives"`
	Ammo      string  `json:"ammo"`
	Cursor    string  `json:"cursor"`
	PauseMenu string  `json:"pauseMenu"`
	TextSize  float64 `json:"textSize"`
}

type AudioConfig struct {
	Music string `json:"music"`
	Fire  string `json:"fire"`
	Click string `json:"click"`
}

// SpriteConfig is the fallback size and colour used when a sprite image is missing
type SpriteConfig struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Color  []int `json:"color"` // RGB or RGBA
}
