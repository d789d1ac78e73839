package screen

import (
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

const (
	optStart    = "Start"
	optLevels   = "Levels"
	optSettings = "Settings"
	optExit     = "Exit"
)

// MainMenu is the root screen
type MainMenu struct {
	deps       Deps
	menu       *menu
	background entity.Sprite
	cursor     entity.Sprite
}

// NewMainMenu creates the main menu
func NewMainMenu(d Deps) *MainMenu {
	w, h := d.screenSize()
	return &MainMenu{
		deps:       d,
		menu:       newMenu([]string{optStart, optLevels, optSettings, optExit}, w/2-150, h/2-60, 60, 300, 50),
		background: d.Assets.Load(d.Levels.DefaultBackground),
		cursor:     d.Assets.Load(d.Config.HUD.Cursor),
	}
}

// Kind returns state.MainMenu (implements scene.Scene)
func (m *MainMenu) Kind() state.Kind { return state.MainMenu }

// OnEnter resyncs audio with the current settings (implements scene.Scene)
func (m *MainMenu) OnEnter() { m.deps.Audio.Sync() }

// OnExit does nothing (implements scene.Scene)
func (m *MainMenu) OnExit() {}

// HandleInput moves the cursor and activates the selected option (implements scene.Scene)
func (m *MainMenu) HandleInput(in input.Frame) scene.Transition {
	if !m.menu.handle(in) {
		return scene.None()
	}
	m.deps.click()

	switch m.menu.selected() {
	case optStart:
		return scene.Push(NewFlight(m.deps, FlightOptions{StartLevel: 1}))
	case optLevels:
		return scene.Push(NewLevelSelect(m.deps))
	case optSettings:
		return scene.Push(NewSettings(m.deps))
	case optExit:
		return scene.Quit()
	}
	return scene.None()
}

// Advance does nothing; the menu is static (implements scene.Scene)
func (m *MainMenu) Advance() scene.Transition { return scene.None() }

// Draw renders the background, title and options (implements scene.Scene)
func (m *MainMenu) Draw(r scene.Renderer) {
	w, h := m.deps.screenSize()
	r.DrawSprite(m.background, 0, 0)
	r.DrawText(m.deps.Config.Display.Title, 60, w/2, h/4, scene.Center)
	drawMenu(r, m.menu, m.cursor, 50)
}

// drawMenu draws each option centered in its row with the cursor to the left of the selected one
func drawMenu(r scene.Renderer, m *menu, cursor entity.Sprite, size float64) {
	for i, opt := range m.options {
		r.DrawText(opt, size, m.x+m.w/2, m.rowY(i)+m.h/2, scene.Center)
	}
	r.DrawSprite(cursor, m.x-cursor.Width, m.rowY(m.index)+(m.h-cursor.Height)/2)
}
