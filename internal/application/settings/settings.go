// Package settings holds user options that live for the whole process.
package settings

// Audio controls music and sound effects. One value is owned by the
// application and shared by pointer with every screen.
type Audio struct {
	Music bool
	Sound bool
}

// Default returns settings with everything switched on
func Default() *Audio {
	return &Audio{Music: true, Sound: true}
}

// ToggleMusic flips background music and returns the new value
func (a *Audio) ToggleMusic() bool {
	a.Music = !a.Music
	return a.Music
}

// ToggleSound flips sound effects and returns the new value
func (a *Audio) ToggleSound() bool {
	a.Sound = !a.Sound
	return a.Sound
}
