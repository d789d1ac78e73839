package input

// Event is a discrete input event delivered once
type Event interface {
	isEvent()
}

// QuitEvent is a request to close the game (window close button)
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// KeyDownEvent is a key that went down this frame
type KeyDownEvent struct {
	Key Key
}

func (KeyDownEvent) isEvent() {}

// MouseDownEvent is a left click at screen coordinates
type MouseDownEvent struct {
	X, Y int
}

func (MouseDownEvent) isEvent() {}
