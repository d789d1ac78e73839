package replay

import (
	"fmt"

	"github.com/younwookim/skyflight/internal/application/input"
)

// Version of the replay file format
const Version = "2.0"

// Event kinds in FrameInput.E
const (
	eventQuit  = "q"
	eventKey   = "k"
	eventMouse = "m"
)

// EventInput records one discrete input event
type EventInput struct {
	T string    `json:"t"`           // Kind: q, k or m
	K input.Key `json:"k,omitempty"` // Key for key-down events
	X int       `json:"x,omitempty"` // Mouse position for mouse-down events
	Y int       `json:"y,omitempty"`
}

// FrameInput records input state for a single frame
type FrameInput struct {
	F int          `json:"f"`           // Frame number
	H input.KeySet `json:"h,omitempty"` // Held keys
	E []EventInput `json:"e,omitempty"` // Events in arrival order
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version string `json:"version"`
	Seed    int64  `json:"seed"`
	// Level is the campaign level the session started in, 0 for the main menu.
	Level     int          `json:"level,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func encodeFrame(n int, f input.Frame) FrameInput {
	fi := FrameInput{F: n, H: f.Held}
	for _, ev := range f.Events {
		switch e := ev.(type) {
		case input.QuitEvent:
			fi.E = append(fi.E, EventInput{T: eventQuit})
		case input.KeyDownEvent:
			fi.E = append(fi.E, EventInput{T: eventKey, K: e.Key})
		case input.MouseDownEvent:
			fi.E = append(fi.E, EventInput{T: eventMouse, X: e.X, Y: e.Y})
		}
	}
	return fi
}

func decodeFrame(fi FrameInput) (input.Frame, error) {
	f := input.Frame{Held: fi.H}
	for _, e := range fi.E {
		switch e.T {
		case eventQuit:
			f.Events = append(f.Events, input.QuitEvent{})
		case eventKey:
			f.Events = append(f.Events, input.KeyDownEvent{Key: e.K})
		case eventMouse:
			f.Events = append(f.Events, input.MouseDownEvent{X: e.X, Y: e.Y})
		default:
			return input.Frame{}, fmt.Errorf("frame %d: unknown event kind %q", fi.F, e.T)
		}
	}
	return f, nil
}
