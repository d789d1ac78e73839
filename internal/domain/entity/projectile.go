package entity

// Bomb is the player's projectile, flying straight up
type Bomb struct {
	Object
	Speed float64
}

// NewBomb creates a bomb with its bottom-left corner at (x, bottom)
func NewBomb(x, bottom float64, sprite Sprite, speed float64) *Bomb {
	return &Bomb{
		Object: NewObject(x, bottom, sprite),
		Speed:  speed,
	}
}

// Advance moves the bomb up by one frame step
func (b *Bomb) Advance() {
	b.Rect.Move(0, -b.Speed)
}

// Center is the point used for hit tests against enemies
func (b *Bomb) Center() Point {
	return Point{X: b.Rect.CenterX(), Y: b.Rect.CenterY()}
}

// Gone reports whether the bomb has left through the top edge
func (b *Bomb) Gone() bool {
	return b.Rect.Bottom() < 0
}
