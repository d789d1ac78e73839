package entity

import "time"

// Loadout is the player's starting stats and equipment
type Loadout struct {
	Speed        float64
	Lives        int
	Ammo         int
	FireCooldown time.Duration

	// Guns are offsets from the plane's top-left corner to the bottom-left
	// corner of a new bomb. Shots alternate between the two.
	Guns [2]Point

	Bomb      Sprite
	BombSpeed float64

	Center Sprite
	Left   Sprite
	Right  Sprite
}

// Player is the player's plane
type Player struct {
	Object
	Lives int
	Ammo  int

	loadout  Loadout
	lastShot time.Duration
	fired    bool
	nextGun  int
	emit     func(*Bomb)
}

// NewPlayer places the plane in the bottom-left corner of the screen.
// emit receives every bomb the plane fires.
func NewPlayer(screenH float64, l Loadout, emit func(*Bomb)) *Player {
	return &Player{
		Object:  NewObject(0, screenH, l.Center),
		Lives:   l.Lives,
		Ammo:    l.Ammo,
		loadout: l,
		nextGun: 1,
		emit:    emit,
	}
}

// Steer moves the plane horizontally (dir -1 left, 1 right, 0 none),
// picks the matching banking sprite and keeps it on screen.
func (p *Player) Steer(dir int, screenW float64) {
	switch {
	case dir < 0:
		p.Sprite = p.loadout.Left
		p.Rect.Move(-p.loadout.Speed, 0)
	case dir > 0:
		p.Sprite = p.loadout.Right
		p.Rect.Move(p.loadout.Speed, 0)
	default:
		p.Sprite = p.loadout.Center
	}
	p.Rect.ClampX(screenW)
}

// CanFire reports whether a shot would be accepted at time now
func (p *Player) CanFire(now time.Duration) bool {
	if p.Ammo <= 0 {
		return false
	}
	return !p.fired || now-p.lastShot >= p.loadout.FireCooldown
}

// TryFire shoots one bomb if ammo and the cooldown allow it
func (p *Player) TryFire(now time.Duration) bool {
	if !p.CanFire(now) {
		return false
	}
	p.fired = true
	p.lastShot = now
	p.Ammo--

	gun := p.loadout.Guns[p.nextGun]
	p.nextGun = (p.nextGun + 1) % len(p.loadout.Guns)

	bomb := NewBomb(p.Rect.Left+gun.X, p.Rect.Top+gun.Y, p.loadout.Bomb, p.loadout.BombSpeed)
	if p.emit != nil {
		p.emit(bomb)
	}
	return true
}

// NextGun returns the index of the gun the next shot leaves from
func (p *Player) NextGun() int {
	return p.nextGun
}

// LoseLife takes one life, never going below zero
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// AddAmmo adds rounds picked up from a drop
func (p *Player) AddAmmo(n int) {
	p.Ammo += n
	if p.Ammo < 0 {
		p.Ammo = 0
	}
}

// Alive returns true while the player has lives left
func (p *Player) Alive() bool {
	return p.Lives > 0
}
