package entity

// Sprite is a handle to a named image together with its pixel size.
// The size doubles as the collision box of whatever carries it.
type Sprite struct {
	Name   string
	Width  float64
	Height float64
}

// Rect is an axis-aligned box in screen pixels (y grows downward).
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Move shifts the rect in place
func (r *Rect) Move(dx, dy float64) {
	r.Left += dx
	r.Top += dy
}

// Intersects reports whether two rects overlap with a non-empty area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// ClampX keeps the rect horizontally inside [0, width]
func (r *Rect) ClampX(width float64) {
	if r.Left < 0 {
		r.Left = 0
	} else if r.Right() > width {
		r.Left = width - r.Width
	}
}

// Object is the common part of every on-screen entity: where it is and
// what it looks like.
type Object struct {
	Rect   Rect
	Sprite Sprite
}

// NewObject places a sprite so that its bottom-left corner sits at (x, bottom).
func NewObject(x, bottom float64, sprite Sprite) Object {
	return Object{
		Rect: Rect{
			Left:   x,
			Top:    bottom - sprite.Height,
			Width:  sprite.Width,
			Height: sprite.Height,
		},
		Sprite: sprite,
	}
}
