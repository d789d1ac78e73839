package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/skyflight/internal/application/input"
)

// keyMap binds physical keys to game keys. Arrows and WASD both steer.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:   input.KeyLeft,
	ebiten.KeyA:           input.KeyLeft,
	ebiten.KeyArrowRight:  input.KeyRight,
	ebiten.KeyD:           input.KeyRight,
	ebiten.KeyArrowUp:     input.KeyUp,
	ebiten.KeyW:           input.KeyUp,
	ebiten.KeyArrowDown:   input.KeyDown,
	ebiten.KeyS:           input.KeyDown,
	ebiten.KeySpace:       input.KeyFire,
	ebiten.KeyEnter:       input.KeyConfirm,
	ebiten.KeyNumpadEnter: input.KeyConfirm,
	ebiten.KeyP:           input.KeyPause,
	ebiten.KeyBackspace:   input.KeyBack,
	ebiten.KeyEscape:      input.KeyEscape,
}

// MapKey returns the game key for a physical key
func MapKey(k ebiten.Key) input.Key {
	if gk, ok := keyMap[k]; ok {
		return gk
	}
	return input.KeyUnknown
}

// RawInput is what the backend reported for one frame
type RawInput struct {
	JustPressed []ebiten.Key
	Held        []ebiten.Key
	Click       bool
	MouseX      int
	MouseY      int
	Closing     bool
}

// BuildFrame turns raw backend input into a Frame. Unmapped keys are
// dropped and a key bound twice (arrow and WASD) is reported once.
func BuildFrame(raw RawInput) input.Frame {
	var f input.Frame

	if raw.Closing {
		f.Events = append(f.Events, input.QuitEvent{})
	}

	var seen input.KeySet
	for _, k := range raw.JustPressed {
		gk := MapKey(k)
		if gk == input.KeyUnknown || seen.Has(gk) {
			continue
		}
		seen = seen.With(gk)
		f.Events = append(f.Events, input.KeyDownEvent{Key: gk})
	}

	if raw.Click {
		f.Events = append(f.Events, input.MouseDownEvent{X: raw.MouseX, Y: raw.MouseY})
	}

	for _, k := range raw.Held {
		if gk := MapKey(k); gk != input.KeyUnknown {
			f.Held = f.Held.With(gk)
		}
	}
	return f
}

// InputSystem reads keyboard and mouse state from ebiten
type InputSystem struct {
	pressed []ebiten.Key
	held    []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current frame's input. Must be called from ebiten's Update.
func (s *InputSystem) Poll() input.Frame {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.held = inpututil.AppendPressedKeys(s.held[:0])
	mx, my := ebiten.CursorPosition()

	return BuildFrame(RawInput{
		JustPressed: s.pressed,
		Held:        s.held,
		Click:       inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseX:      mx,
		MouseY:      my,
		Closing:     ebiten.IsWindowBeingClosed(),
	})
}
