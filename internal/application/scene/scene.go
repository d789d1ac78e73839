// Package scene defines the Scene interface for game screens and the
// stack that decides which screen is live.
//
// Each screen (menu, flight, pause, etc.) implements Scene. Only the top
// of the Stack receives input, logic and draw calls; a screen asks for a
// change of screens by returning a Transition.
package scene

import (
	"errors"

	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

// ErrQuit is returned when a screen asks the process to exit
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen
type Scene interface {
	// Kind identifies the screen
	Kind() state.Kind

	// HandleInput consumes one frame of input.
	HandleInput(f input.Frame) Transition

	// Advance runs one frame of logic.
	Advance() Transition

	// Draw renders the screen.
	Draw(r Renderer)

	// OnEnter is called when the scene is pushed onto the stack.
	OnEnter()

	// OnExit is called when the scene is popped off the stack.
	OnExit()
}

// Overlay is implemented by scenes drawn on top of the scene beneath
// them (pause menu, end screen). The stack draws that scene first.
type Overlay interface {
	Overlay() bool
}

// Anchor selects which point of a text block sits at the given position
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	Center
)

// Renderer draws sprites and text in screen coordinates
type Renderer interface {
	DrawSprite(s entity.Sprite, x, y float64)
	DrawText(s string, size float64, x, y float64, anchor Anchor)
}

// AssetStore resolves sprite names to handles with their size
type AssetStore interface {
	Load(name string) entity.Sprite
}
