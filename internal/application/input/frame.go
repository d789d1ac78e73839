package input

// Frame is the input batch for a single frame
type Frame struct {
	Events []Event
	Held   KeySet
}

// Source produces one Frame per game tick
type Source interface {
	Poll() Frame
}

// Pressed reports whether k went down during this frame
func (f Frame) Pressed(k Key) bool {
	for _, ev := range f.Events {
		if kd, ok := ev.(KeyDownEvent); ok && kd.Key == k {
			return true
		}
	}
	return false
}

// Quit reports whether the frame asks the game to exit.
// Escape works as quit on every screen.
func (f Frame) Quit() bool {
	for _, ev := range f.Events {
		switch e := ev.(type) {
		case QuitEvent:
			return true
		case KeyDownEvent:
			if e.Key == KeyEscape {
				return true
			}
		}
	}
	return false
}

// Clicks returns the mouse-down events of the frame
func (f Frame) Clicks() []MouseDownEvent {
	var clicks []MouseDownEvent
	for _, ev := range f.Events {
		if md, ok := ev.(MouseDownEvent); ok {
			clicks = append(clicks, md)
		}
	}
	return clicks
}

// Direction folds held Left/Right into -1, 0 or 1. Left wins when both are held.
func (f Frame) Direction() int {
	switch {
	case f.Held.Has(KeyLeft):
		return -1
	case f.Held.Has(KeyRight):
		return 1
	default:
		return 0
	}
}

// Press builds a frame with the given keys pressed, for scripted input
func Press(keys ...Key) Frame {
	f := Frame{}
	for _, k := range keys {
		f.Events = append(f.Events, KeyDownEvent{Key: k})
	}
	return f
}

// Hold builds a frame with the given keys held down
func Hold(keys ...Key) Frame {
	f := Frame{}
	for _, k := range keys {
		f.Held = f.Held.With(k)
	}
	return f
}
