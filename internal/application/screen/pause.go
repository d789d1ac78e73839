package screen

import (
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

const (
	optPlay    = "play"
	optRestart = "restart"
	optOptions = "options"
	optQuit    = "exit"
)

// Cursor placement inside the pause panel
const (
	pauseCursorX  = 85
	pauseCursorY  = 195
	pauseRowStep  = 90
	pauseRowLabel = 60
)

// Pause is the menu drawn over a paused flight
type Pause struct {
	deps   Deps
	flight FlightOptions
	menu   *menu
	panel  entity.Sprite
	cursor entity.Sprite
	panelX float64
	panelY float64
}

// NewPause creates a pause menu for a flight started with opts
func NewPause(d Deps, opts FlightOptions) *Pause {
	w, h := d.screenSize()
	panel := d.Assets.Load(d.Config.HUD.PauseMenu)
	cursor := d.Assets.Load(d.Config.HUD.Cursor)
	px, py := (w-panel.Width)/2, (h-panel.Height)/2

	rowH := cursor.Height
	if rowH <= 0 {
		rowH = pauseRowStep
	}
	return &Pause{
		deps:   d,
		flight: opts,
		menu: newMenu([]string{optPlay, optRestart, optOptions, optQuit},
			px+pauseCursorX, py+pauseCursorY, pauseRowStep, panel.Width-pauseCursorX, rowH),
		panel:  panel,
		cursor: cursor,
		panelX: px,
		panelY: py,
	}
}

// Kind returns state.Pause (implements scene.Scene)
func (p *Pause) Kind() state.Kind { return state.Pause }

// Overlay reports that the paused flight stays visible (implements scene.Overlay)
func (p *Pause) Overlay() bool { return true }

// OnEnter does nothing (implements scene.Scene)
func (p *Pause) OnEnter() {}

// OnExit does nothing (implements scene.Scene)
func (p *Pause) OnExit() {}

// HandleInput acts on the selected pause option (implements scene.Scene)
func (p *Pause) HandleInput(in input.Frame) scene.Transition {
	if in.Pressed(input.KeyPause) {
		return scene.Pop(1)
	}
	if !p.menu.handle(in) {
		return scene.None()
	}
	p.deps.click()

	switch p.menu.selected() {
	case optPlay:
		return scene.Pop(1)
	case optRestart:
		return scene.Replace(2, NewFlight(p.deps, p.flight))
	case optOptions:
		return scene.Push(NewSettings(p.deps))
	case optQuit:
		return scene.PopToRoot()
	}
	return scene.None()
}

// Advance does nothing, which freezes the flight beneath (implements scene.Scene)
func (p *Pause) Advance() scene.Transition { return scene.None() }

// Draw renders the panel and cursor; the stack has already drawn the flight beneath
func (p *Pause) Draw(r scene.Renderer) {
	r.DrawSprite(p.panel, p.panelX, p.panelY)
	for i, opt := range p.menu.options {
		r.DrawText(opt, 40, p.menu.x+pauseRowLabel, p.menu.rowY(i)+p.menu.h/2, scene.TopLeft)
	}
	r.DrawSprite(p.cursor, p.menu.x, p.menu.rowY(p.menu.index))
}

// Selected returns the highlighted option
func (p *Pause) Selected() string { return p.menu.selected() }
