// Package game provides the ebiten host that drives the scene stack.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/replay"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/system"
)

// Canvas is a scene.Renderer bound to one screen image per frame
type Canvas interface {
	scene.Renderer
	Begin(screen *ebiten.Image)
}

// Game implements ebiten.Game on top of a scene stack.
type Game struct {
	stack    *scene.Stack
	clock    *system.FrameClock
	source   input.Source
	canvas   Canvas
	recorder *replay.Recorder
	screenW  int
	screenH  int
}

// New creates a Game with root at the bottom of the stack.
// The root's OnEnter is called immediately. canvas may be nil when running headless.
func New(root scene.Scene, clock *system.FrameClock, source input.Source, canvas Canvas, screenW, screenH int) *Game {
	return &Game{
		stack:   scene.NewStack(root),
		clock:   clock,
		source:  source,
		canvas:  canvas,
		screenW: screenW,
		screenH: screenH,
	}
}

// SetRecorder records every polled frame, including the one that quits
func (g *Game) SetRecorder(r *replay.Recorder) {
	g.recorder = r
}

// Update advances the clock, polls input and steps the stack.
// A quit request from the window, the keyboard or a scene ends the game with ebiten.Termination.
func (g *Game) Update() error {
	g.clock.Tick()
	f := g.source.Poll()
	if g.recorder != nil {
		g.recorder.RecordFrame(f)
	}

	if f.Quit() {
		return ebiten.Termination
	}
	if err := g.stack.Step(f); err != nil {
		if errors.Is(err, scene.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw renders the stack
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	g.canvas.Begin(screen)
	g.stack.Draw(g.canvas)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Stack returns the scene stack
func (g *Game) Stack() *scene.Stack {
	return g.stack
}
