package screen

import (
	"github.com/younwookim/skyflight/internal/application/input"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/state"
	"github.com/younwookim/skyflight/internal/domain/entity"
)

const (
	optMusic = "Music"
	optSound = "Sound"
	optBack  = "Back"
)

// Settings toggles music and sound effects
type Settings struct {
	deps       Deps
	menu       *menu
	background entity.Sprite
	cursor     entity.Sprite
}

// NewSettings creates the settings screen
func NewSettings(d Deps) *Settings {
	w, h := d.screenSize()
	return &Settings{
		deps:       d,
		menu:       newMenu([]string{optMusic, optSound, optBack}, w/2-150, h/2-60, 60, 300, 50),
		background: d.Assets.Load(d.Levels.DefaultBackground),
		cursor:     d.Assets.Load(d.Config.HUD.Cursor),
	}
}

// Kind returns state.Settings (implements scene.Scene)
func (s *Settings) Kind() state.Kind { return state.Settings }

// OnEnter does nothing (implements scene.Scene)
func (s *Settings) OnEnter() {}

// OnExit does nothing (implements scene.Scene)
func (s *Settings) OnExit() {}

// HandleInput toggles the selected setting or goes back (implements scene.Scene)
func (s *Settings) HandleInput(in input.Frame) scene.Transition {
	if in.Pressed(input.KeyBack) {
		return scene.Pop(1)
	}
	if !s.menu.handle(in) {
		return scene.None()
	}

	switch s.menu.selected() {
	case optMusic:
		s.deps.Settings.ToggleMusic()
		s.deps.Audio.Sync()
	case optSound:
		s.deps.Settings.ToggleSound()
	case optBack:
		s.deps.click()
		return scene.Pop(1)
	}
	s.deps.click()
	return scene.None()
}

// Advance does nothing (implements scene.Scene)
func (s *Settings) Advance() scene.Transition { return scene.None() }

// Draw renders the settings and their current values (implements scene.Scene)
func (s *Settings) Draw(r scene.Renderer) {
	w, h := s.deps.screenSize()
	r.DrawSprite(s.background, 0, 0)
	r.DrawText("Settings", 100, w/2, h/8, scene.Center)

	labels := []string{
		optMusic + ": " + onOff(s.deps.Settings.Music),
		optSound + ": " + onOff(s.deps.Settings.Sound),
		optBack,
	}
	for i, label := range labels {
		r.DrawText(label, 50, s.menu.x+s.menu.w/2, s.menu.rowY(i)+s.menu.h/2, scene.Center)
	}
	r.DrawSprite(s.cursor, s.menu.x-s.cursor.Width, s.menu.rowY(s.menu.index)+(s.menu.h-s.cursor.Height)/2)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
