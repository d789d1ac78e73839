package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/skyflight/internal/application/input"
)

// Replayer plays recorded frames back as an input.Source.
// Past the last frame it keeps returning empty frames.
type Replayer struct {
	data   ReplayData
	frames []input.Frame
	frame  int
}

// NewReplayer decodes replay data for playback
func NewReplayer(data ReplayData) (*Replayer, error) {
	frames := make([]input.Frame, len(data.Frames))
	for i, fi := range data.Frames {
		f, err := decodeFrame(fi)
		if err != nil {
			return nil, err
		}
		frames[i] = f
	}
	return &Replayer{data: data, frames: frames}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (input.Frame, bool) {
	if r.frame >= len(r.frames) {
		return input.Frame{}, false
	}
	f := r.frames[r.frame]
	r.frame++
	return f, true
}

// Poll implements input.Source
func (r *Replayer) Poll() input.Frame {
	f, _ := r.Next()
	return f
}

// Done reports whether every recorded frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Level returns the campaign level the session started in, 0 for the main menu
func (r *Replayer) Level() int {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (no input at all)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
