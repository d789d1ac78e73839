package screen

import (
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

const levelRowStep = 70

// LevelSelect lists the campaign levels
type LevelSelect struct {
	deps       Deps
	menu       *menu
	background entity.Sprite
	cursor     entity.Sprite
}

// NewLevelSelect creates the level selection screen from the level table
func NewLevelSelect(d Deps) *LevelSelect {
	w, h := d.screenSize()
	names := make([]string, 0, d.Levels.Count())
	for _, l := range d.Levels.Levels {
		names = append(names, l.Name)
	}
	return &LevelSelect{
		deps:       d,
		menu:       newMenu(names, w/2-150, h/2-125, levelRowStep, 300, 50),
		background: d.Assets.Load(d.Levels.DefaultBackground),
		cursor:     d.Assets.Load(d.Config.HUD.Cursor),
	}
}

// Kind returns state.LevelSelect (implements scene.Scene)
func (l *LevelSelect) Kind() state.Kind { return state.LevelSelect }

// OnEnter does nothing (implements scene.Scene)
func (l *LevelSelect) OnEnter() {}

// OnExit does nothing (implements scene.Scene)
func (l *LevelSelect) OnExit() {}

// HandleInput starts the highlighted level on confirm; Back returns to the main menu
func (l *LevelSelect) HandleInput(in input.Frame) scene.Transition {
	if in.Pressed(input.KeyBack) {
		return scene.Pop(1)
	}
	if !l.menu.handle(in) {
		return scene.None()
	}
	l.deps.click()

	return scene.Push(NewFlight(l.deps, FlightOptions{
		StartLevel: l.deps.Levels.Levels[l.menu.index].Number,
		Campaign:   true,
	}))
}

// Advance does nothing (implements scene.Scene)
func (l *LevelSelect) Advance() scene.Transition { return scene.None() }

// Draw renders the level list with the cursor (implements scene.Scene)
func (l *LevelSelect) Draw(r scene.Renderer) {
	w, h := l.deps.screenSize()
	r.DrawSprite(l.background, 0, 0)
	r.DrawText("Select Level", 100, w/2, h/8, scene.Center)
	drawMenu(r, l.menu, l.cursor, 50)
}

// Selected returns the highlighted level number
func (l *LevelSelect) Selected() int { return l.deps.Levels.Levels[l.menu.index].Number }
