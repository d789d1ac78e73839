// Package input describes one frame's worth of player input independently
// of the windowing backend.
package input

// Key is a logical game key. Backends map physical keys onto these.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyConfirm
	KeyPause
	KeyBack
	KeyEscape
)

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyFire:
		return "Fire"
	case KeyConfirm:
		return "Confirm"
	case KeyPause:
		return "Pause"
	case KeyBack:
		return "Back"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeySet is a bit set of keys held down
type KeySet uint16

// With returns the set with k added
func (s KeySet) With(k Key) KeySet {
	return s | 1<<uint(k)
}

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return s&(1<<uint(k)) != 0
}
