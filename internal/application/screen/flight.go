package screen

import (
	"fmt"
	"log"

	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/application/system"
	"github.com/younwookim/skyflight/internal/domain/entity"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

// FlightOptions selects how a run starts
type FlightOptions struct {
	StartLevel int
	// Campaign plays a single level from the level table: its quota,
	// lives and ammo apply, and clearing the quota wins the run.
	Campaign bool
}

// Flight is the gameplay screen
type Flight struct {
	deps  Deps
	opts  FlightOptions
	level config.LevelConfig

	player   *entity.Player
	combat   *system.CombatSystem
	progress *entity.Progress

	enemyTimer *system.Schedule
	dropTimer  *system.Schedule
	spawned    int

	background entity.Sprite
	livesIcon  entity.Sprite
	ammoIcon   entity.Sprite
}

// NewFlight starts a run. The config is expected to have passed validation.
func NewFlight(d Deps, opts FlightOptions) *Flight {
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}
	cfg := d.Config
	f := &Flight{
		deps:     d,
		opts:     opts,
		level:    d.Levels.Level(opts.StartLevel),
		progress: entity.NewProgress(opts.StartLevel, cfg.Scoring.LevelThreshold, cfg.Scoring.ThresholdStep),
	}

	combat, err := system.NewCombatSystem(cfg, system.CombatSprites{
		Enemy:    d.Assets.Load(cfg.Enemy.Sprite),
		AmmoDrop: d.Assets.Load(cfg.AmmoDrop.Sprite),
	}, d.Rand)
	if err != nil {
		panic(fmt.Sprintf("screen: %v", err))
	}
	f.combat = combat

	loadout := cfg.Loadout()
	if opts.Campaign {
		f.level.ApplyTo(&loadout)
		f.combat.SetSpeedMultiplier(f.level.SpeedMultiplier)
	}
	loadout.Bomb = d.Assets.Load(cfg.Bomb.Sprite)
	loadout.Center = d.Assets.Load(cfg.Player.Sprites.Center)
	loadout.Left = d.Assets.Load(cfg.Player.Sprites.Left)
	loadout.Right = d.Assets.Load(cfg.Player.Sprites.Right)

	_, h := d.screenSize()
	f.player = entity.NewPlayer(h, loadout, f.combat.AddBomb)

	f.livesIcon = d.Assets.Load(cfg.HUD.Lives)
	f.ammoIcon = d.Assets.Load(cfg.HUD.Ammo)

	now := d.Clock.Now()
	f.enemyTimer = system.NewSchedule(now, cfg.Spawn.Enemy.Period(f.progress.Level), cfg.Spawn.Enemy.Loops)
	f.dropTimer = system.NewSchedule(now, cfg.Spawn.AmmoDrop.Period(f.progress.Level), cfg.Spawn.AmmoDrop.Loops)
	f.background = d.Assets.Load(d.Levels.Background(f.progress.Level))
	return f
}

// Kind returns state.Flight (implements scene.Scene)
func (f *Flight) Kind() state.Kind { return state.Flight }

// OnEnter resyncs audio with the current settings (implements scene.Scene)
func (f *Flight) OnEnter() { f.deps.Audio.Sync() }

// OnExit does nothing (implements scene.Scene)
func (f *Flight) OnExit() {}

// HandleInput fires due spawn timers, then steers and fires the plane.
// Pause pushes the pause menu on top of this flight.
func (f *Flight) HandleInput(in input.Frame) scene.Transition {
	now := f.deps.Clock.Now()

	if f.enemyTimer.Due(now) && f.quotaLeft() {
		f.combat.SpawnEnemy()
		f.spawned++
	}
	if f.dropTimer.Due(now) {
		f.combat.SpawnAmmoDrop()
	}

	w, _ := f.deps.screenSize()
	f.player.Steer(in.Direction(), w)
	if in.Held.Has(input.KeyFire) && f.player.TryFire(now) {
		f.deps.Audio.PlaySound(f.deps.Config.Audio.Fire)
	}

	if in.Pressed(input.KeyPause) {
		return scene.Push(NewPause(f.deps, f.opts))
	}
	return scene.None()
}

func (f *Flight) quotaLeft() bool {
	return !f.hasQuota() || f.spawned < f.level.EnemyQuota
}

func (f *Flight) hasQuota() bool {
	return f.opts.Campaign && f.level.EnemyQuota > 0
}

// Advance moves the world one frame, scores it and checks for the end of the run
func (f *Flight) Advance() scene.Transition {
	rep := f.combat.Advance(f.player)
	f.progress.Add(rep.Score)

	if f.progress.CheckLevelUp() {
		f.applyLevel()
		log.Printf("Level Up! You are now on Level %d.", f.progress.Level)
	}

	if !f.player.Alive() {
		return scene.Push(NewEndGame(f.deps, f.progress.Score, false))
	}
	if f.hasQuota() && f.spawned >= f.level.EnemyQuota && len(f.combat.GetEnemies()) == 0 {
		return scene.Push(NewEndGame(f.deps, f.progress.Score, true))
	}
	return scene.None()
}

// applyLevel re-derives background and spawn cadence from the current level
func (f *Flight) applyLevel() {
	cfg := f.deps.Config
	now := f.deps.Clock.Now()
	f.enemyTimer.Reset(now, cfg.Spawn.Enemy.Period(f.progress.Level))
	f.dropTimer.Reset(now, cfg.Spawn.AmmoDrop.Period(f.progress.Level))
	f.background = f.deps.Assets.Load(f.deps.Levels.Background(f.progress.Level))
}

// Draw renders background, entities, HUD icons and then the score text
func (f *Flight) Draw(r scene.Renderer) {
	r.DrawSprite(f.background, 0, 0)

	for _, e := range f.combat.GetEnemies() {
		r.DrawSprite(e.Sprite, e.Rect.Left, e.Rect.Top)
	}
	for _, b := range f.combat.GetBombs() {
		r.DrawSprite(b.Sprite, b.Rect.Left, b.Rect.Top)
	}
	for _, d := range f.combat.GetAmmoDrops() {
		r.DrawSprite(d.Sprite, d.Rect.Left, d.Rect.Top)
	}
	r.DrawSprite(f.player.Sprite, f.player.Rect.Left, f.player.Rect.Top)

	for i := 0; i < f.player.Lives; i++ {
		r.DrawSprite(f.livesIcon, float64(i)*f.livesIcon.Width, 0)
	}
	for i := 0; i < f.player.Ammo; i++ {
		r.DrawSprite(f.ammoIcon, float64(i)*(f.ammoIcon.Width+2)+10, f.livesIcon.Height)
	}

	w, _ := f.deps.screenSize()
	size := f.deps.Config.HUD.TextSize
	r.DrawText(fmt.Sprintf("Score: %d", f.progress.Score), size, w-20, 20, scene.TopRight)
	r.DrawText(fmt.Sprintf("Level: %d", f.progress.Level), size, 20, 20, scene.TopLeft)
}

// Score returns the current score
func (f *Flight) Score() int { return f.progress.Score }

// Level returns the current difficulty level
func (f *Flight) Level() int { return f.progress.Level }

// Player returns the player's plane
func (f *Flight) Player() *entity.Player { return f.player }

// Combat returns the entity collections
func (f *Flight) Combat() *system.CombatSystem { return f.combat }

// Options returns the options the run started with
func (f *Flight) Options() FlightOptions { return f.opts }

// Background returns the current background sprite
func (f *Flight) Background() entity.Sprite { return f.background }
