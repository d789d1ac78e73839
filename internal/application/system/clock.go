package system

import "time"

// Clock reports game time. Game time only moves when a frame is run,
// so pausing and replays see the same timeline.
type Clock interface {
	Now() time.Duration
}

// FrameClock advances by 1/tps seconds per tick. Time is derived from the
// frame count so whole-millisecond periods land on exact frames.
type FrameClock struct {
	frame int64
	tps   int64
}

// NewFrameClock creates a clock ticking tps times per second
func NewFrameClock(tps int) *FrameClock {
	if tps <= 0 {
		tps = 60
	}
	return &FrameClock{tps: int64(tps)}
}

// Tick advances the clock by one frame
func (c *FrameClock) Tick() {
	c.frame++
}

// Now returns the time elapsed since frame zero
func (c *FrameClock) Now() time.Duration {
	return time.Duration(c.frame) * time.Second / time.Duration(c.tps)
}

// Frame returns the number of ticks so far
func (c *FrameClock) Frame() int64 {
	return c.frame
}
