package system

import (
	"math/rand"

	"github.com/younwookim/skyflight/internal/domain/entity"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

// CombatSprites are the resolved sprites for spawned entities
type CombatSprites struct {
	Enemy    entity.Sprite
	AmmoDrop entity.Sprite
}

// Report summarizes one Advance call
type Report struct {
	Kills   int
	Pickups int
	Escaped int
	Score   int
}

// CombatSystem owns the enemies, bombs and ammo drops of one flight.
// Collections keep spawn order; removal filters in place.
type CombatSystem struct {
	config  *config.GameConfig
	sprites CombatSprites
	hitTest entity.HitTest
	rng     *rand.Rand
	speedUp float64

	screenW float64
	screenH float64

	enemies []*entity.Enemy
	bombs   []*entity.Bomb
	drops   []*entity.AmmoDrop
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, sprites CombatSprites, rng *rand.Rand) (*CombatSystem, error) {
	hitTest, err := entity.HitTestFor(cfg.Collision.Mode)
	if err != nil {
		return nil, err
	}
	return &CombatSystem{
		config:  cfg,
		sprites: sprites,
		hitTest: hitTest,
		rng:     rng,
		speedUp: 1,
		screenW: float64(cfg.Display.ScreenWidth),
		screenH: float64(cfg.Display.ScreenHeight),
		enemies: make([]*entity.Enemy, 0, 16),
		bombs:   make([]*entity.Bomb, 0, 16),
		drops:   make([]*entity.AmmoDrop, 0, 4),
	}, nil
}

// SetSpeedMultiplier scales the speed of enemies spawned from now on
func (s *CombatSystem) SetSpeedMultiplier(m float64) {
	if m <= 0 {
		m = 1
	}
	s.speedUp = m
}

// spawnX picks a random x in [0, screenW-margin]
func (s *CombatSystem) spawnX() float64 {
	span := int(s.screenW - s.config.Enemy.SpawnMargin)
	if span <= 0 {
		return 0
	}
	return float64(s.rng.Intn(span + 1))
}

// SpawnEnemy adds an enemy at a random x just above the screen
func (s *CombatSystem) SpawnEnemy() *entity.Enemy {
	e := entity.NewEnemy(s.spawnX(), s.sprites.Enemy, s.config.Enemy.Speed*s.speedUp)
	s.enemies = append(s.enemies, e)
	return e
}

// SpawnAmmoDrop adds an ammo drop at a random x just above the screen
func (s *CombatSystem) SpawnAmmoDrop() *entity.AmmoDrop {
	d := entity.NewAmmoDrop(s.spawnX(), s.sprites.AmmoDrop, s.config.AmmoDrop.Speed)
	s.drops = append(s.drops, d)
	return d
}

// AddEnemy inserts an already placed enemy
func (s *CombatSystem) AddEnemy(e *entity.Enemy) {
	s.enemies = append(s.enemies, e)
}

// AddAmmoDrop inserts an already placed drop
func (s *CombatSystem) AddAmmoDrop(d *entity.AmmoDrop) {
	s.drops = append(s.drops, d)
}

// AddBomb takes ownership of a bomb fired by the player
func (s *CombatSystem) AddBomb(b *entity.Bomb) {
	s.bombs = append(s.bombs, b)
}

// Advance runs one frame: move everything, resolve hits and pickups,
// then drop whatever left the screen. Each escaped enemy costs a life.
func (s *CombatSystem) Advance(player *entity.Player) Report {
	var rep Report

	for _, e := range s.enemies {
		e.Advance()
	}
	for _, b := range s.bombs {
		b.Advance()
	}
	for _, d := range s.drops {
		d.Advance()
	}

	s.resolveHits(&rep)
	s.resolvePickup(player, &rep)

	bombs := s.bombs[:0]
	for _, b := range s.bombs {
		if !b.Gone() {
			bombs = append(bombs, b)
		}
	}
	clearTail(s.bombs, len(bombs))
	s.bombs = bombs

	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Escaped(s.screenH) {
			rep.Escaped++
			player.LoseLife()
			continue
		}
		enemies = append(enemies, e)
	}
	clearTail(s.enemies, len(enemies))
	s.enemies = enemies

	drops := s.drops[:0]
	for _, d := range s.drops {
		if !d.Escaped(s.screenH) {
			drops = append(drops, d)
		}
	}
	clearTail(s.drops, len(drops))
	s.drops = drops

	return rep
}

// resolveHits matches each bomb against the first live enemy it hits.
// An enemy destroyed by one bomb is not available to later bombs.
func (s *CombatSystem) resolveHits(rep *Report) {
	if len(s.bombs) == 0 || len(s.enemies) == 0 {
		return
	}

	deadEnemy := make([]bool, len(s.enemies))
	deadBomb := make([]bool, len(s.bombs))

	for bi, b := range s.bombs {
		for ei, e := range s.enemies {
			if deadEnemy[ei] {
				continue
			}
			if entity.BombHitsEnemy(s.hitTest, b, e) {
				deadEnemy[ei] = true
				deadBomb[bi] = true
				rep.Kills++
				rep.Score += s.config.Scoring.Kill
				break
			}
		}
	}

	if rep.Kills == 0 {
		return
	}

	bombs := s.bombs[:0]
	for i, b := range s.bombs {
		if !deadBomb[i] {
			bombs = append(bombs, b)
		}
	}
	clearTail(s.bombs, len(bombs))
	s.bombs = bombs

	enemies := s.enemies[:0]
	for i, e := range s.enemies {
		if !deadEnemy[i] {
			enemies = append(enemies, e)
		}
	}
	clearTail(s.enemies, len(enemies))
	s.enemies = enemies
}

// resolvePickup collects at most one drop touching the player per frame
func (s *CombatSystem) resolvePickup(player *entity.Player, rep *Report) {
	for i, d := range s.drops {
		if !player.Rect.Intersects(d.Rect) {
			continue
		}
		player.AddAmmo(s.config.AmmoDrop.Ammo)
		rep.Pickups++
		rep.Score += s.config.AmmoDrop.Score

		copy(s.drops[i:], s.drops[i+1:])
		s.drops[len(s.drops)-1] = nil
		s.drops = s.drops[:len(s.drops)-1]
		return
	}
}

// clearTail nils the slots past n so filtered-out pointers can be collected
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}

// GetEnemies returns the live enemies in spawn order
func (s *CombatSystem) GetEnemies() []*entity.Enemy {
	return s.enemies
}

// GetBombs returns the live bombs in firing order
func (s *CombatSystem) GetBombs() []*entity.Bomb {
	return s.bombs
}

// GetAmmoDrops returns the live ammo drops in spawn order
func (s *CombatSystem) GetAmmoDrops() []*entity.AmmoDrop {
	return s.drops
}
