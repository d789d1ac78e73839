package screen

import (
	"strconv"

	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
)

// EndGame shows the final score over the finished flight
type EndGame struct {
	deps  Deps
	score int
	won   bool
}

// NewEndGame creates the end screen. won marks a cleared campaign level.
func NewEndGame(d Deps, score int, won bool) *EndGame {
	return &EndGame{deps: d, score: score, won: won}
}

// Kind returns state.EndGame (implements scene.Scene)
func (e *EndGame) Kind() state.Kind { return state.EndGame }

// Overlay reports that the final flight stays visible (implements scene.Overlay)
func (e *EndGame) Overlay() bool { return true }

// OnEnter does nothing (implements scene.Scene)
func (e *EndGame) OnEnter() {}

// OnExit does nothing (implements scene.Scene)
func (e *EndGame) OnExit() {}

// HandleInput leaves both this screen and the flight beneath on confirm
func (e *EndGame) HandleInput(in input.Frame) scene.Transition {
	if in.Pressed(input.KeyConfirm) || len(in.Clicks()) > 0 {
		e.deps.click()
		return scene.Pop(2)
	}
	return scene.None()
}

// Advance does nothing (implements scene.Scene)
func (e *EndGame) Advance() scene.Transition { return scene.None() }

// Draw renders the result banner and final score (implements scene.Scene)
func (e *EndGame) Draw(r scene.Renderer) {
	w, h := e.deps.screenSize()
	title := "Final Score:"
	if e.won {
		title = "You Win"
	}
	r.DrawText(title, 100, w/2, h/2-100, scene.Center)
	r.DrawText(strconv.Itoa(e.score), 100, w/2, h/2, scene.Center)
	r.DrawText("Press Enter For Main Menu", 70, w/2, h/2+100, scene.Center)
}

// Score returns the score being shown
func (e *EndGame) Score() int { return e.score }

// Won reports whether the run cleared its level
func (e *EndGame) Won() bool { return e.won }
