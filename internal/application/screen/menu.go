package screen

import (
	"fmt"

	"github.com/younwookim/skyflight/internal/application/input"
)

// menu is a vertical list with a wrapping cursor. Rows are laid out from
// (x, y) every step pixels, each w x h, for mouse hit tests.
type menu struct {
	options []string
	index   int

	x, y, step float64
	w, h       float64
}

func newMenu(options []string, x, y, step, w, h float64) *menu {
	if len(options) == 0 {
		panic("screen: menu without options")
	}
	return &menu{options: options, x: x, y: y, step: step, w: w, h: h}
}

func (m *menu) move(delta int) {
	n := len(m.options)
	m.index = ((m.index+delta)%n + n) % n
}

func (m *menu) selected() string {
	if m.index < 0 || m.index >= len(m.options) {
		panic(fmt.Sprintf("screen: menu index %d out of range", m.index))
	}
	return m.options[m.index]
}

// rowY returns the top of row i
func (m *menu) rowY(i int) float64 {
	return m.y + float64(i)*m.step
}

// rowAt returns the row under a screen point
func (m *menu) rowAt(x, y int) (int, bool) {
	fx, fy := float64(x), float64(y)
	if fx < m.x || fx >= m.x+m.w {
		return 0, false
	}
	for i := range m.options {
		top := m.rowY(i)
		if fy >= top && fy < top+m.h {
			return i, true
		}
	}
	return 0, false
}

// handle applies navigation keys and reports whether the current option
// was confirmed, by Confirm or by clicking a row.
func (m *menu) handle(f input.Frame) bool {
	for _, ev := range f.Events {
		switch e := ev.(type) {
		case input.KeyDownEvent:
			switch e.Key {
			case input.KeyUp:
				m.move(-1)
			case input.KeyDown:
				m.move(1)
			case input.KeyConfirm:
				return true
			}
		case input.MouseDownEvent:
			if i, ok := m.rowAt(e.X, e.Y); ok {
				m.index = i
				return true
			}
		}
	}
	return false
}
