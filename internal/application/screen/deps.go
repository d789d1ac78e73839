// Package screen implements the game's screens: menus, the flight itself
// and the overlays drawn on top of it. Screens only talk to the outside
// world through Deps, so they run the same headless as in a window.
package screen

import (
	"math/rand"

	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/application/settings"
	"github.com/younwookim/skyflight/internal/application/system"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

// Audio is the sound output used by screens
type Audio interface {
	PlaySound(name string) bool
	// Sync starts or stops background music to match the settings.
	Sync()
}

// NopAudio discards all sound
type NopAudio struct{}

func (NopAudio) PlaySound(string) bool { return false }
func (NopAudio) Sync()                 {}

// Deps is everything screens share for the lifetime of the process
type Deps struct {
	Config   *config.GameConfig
	Levels   *config.LevelsConfig
	Assets   scene.AssetStore
	Clock    system.Clock
	Rand     *rand.Rand
	Audio    Audio
	Settings *settings.Audio
}

func (d Deps) screenSize() (float64, float64) {
	return float64(d.Config.Display.ScreenWidth), float64(d.Config.Display.ScreenHeight)
}

func (d Deps) click() {
	d.Audio.PlaySound(d.Config.Audio.Click)
}

// NewRoot returns the screen at the bottom of the stack
func NewRoot(d Deps) scene.Scene {
	return NewMainMenu(d)
}
