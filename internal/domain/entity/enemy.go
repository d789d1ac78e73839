package entity

// Enemy is an enemy plane falling from the top of the screen
type Enemy struct {
	Object
	Speed float64
}

// NewEnemy creates an enemy whose bottom-left corner is at (x, 0),
// i.e. just above the visible area.
func NewEnemy(x float64, sprite Sprite, speed float64) *Enemy {
	return &Enemy{
		Object: NewObject(x, 0, sprite),
		Speed:  speed,
	}
}

// Advance moves the enemy down by one frame step
func (e *Enemy) Advance() {
	e.Rect.Move(0, e.Speed)
}

// HitTriangle returns the triangle used as the enemy's hit region:
// top-left, top-right and bottom-center of its bounding box.
func (e *Enemy) HitTriangle() Triangle {
	r := e.Rect
	return Triangle{
		A: Point{X: r.Left, Y: r.Top},
		B: Point{X: r.Right(), Y: r.Top},
		C: Point{X: r.CenterX(), Y: r.Bottom()},
	}
}

// Escaped reports whether the enemy has left through the bottom edge
func (e *Enemy) Escaped(screenH float64) bool {
	return e.Rect.Top > screenH
}

// AmmoDrop is a pickup drifting down that refills the player's ammo
type AmmoDrop struct {
	Object
	Speed float64
}

// NewAmmoDrop creates a drop at (x, 0) like an enemy
func NewAmmoDrop(x float64, sprite Sprite, speed float64) *AmmoDrop {
	return &AmmoDrop{
		Object: NewObject(x, 0, sprite),
		Speed:  speed,
	}
}

// Advance moves the drop down by one frame step
func (d *AmmoDrop) Advance() {
	d.Rect.Move(0, d.Speed)
}

// Escaped reports whether the drop has left through the bottom edge
func (d *AmmoDrop) Escaped(screenH float64) bool {
	return d.Rect.Top > screenH
}
