package state

// Kind identifies which screen a stack entry is
type Kind int

const (
	MainMenu Kind = iota
	Flight
	Pause
	EndGame
	LevelSelect
	Settings
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case MainMenu:
		return "MainMenu"
	case Flight:
		return "Flight"
	case Pause:
		return "Pause"
	case EndGame:
		return "EndGame"
	case LevelSelect:
		return "LevelSelect"
	case Settings:
		return "Settings"
	default:
		return "Unknown"
	}
}
