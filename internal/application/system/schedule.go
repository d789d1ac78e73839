package system

import "time"

// Schedule is a repeating timer checked once per frame against a Clock.
// It fires at most loops times; loops <= 0 means no limit.
type Schedule struct {
	next      time.Duration
	period    time.Duration
	loops     int
	remaining int
}

// NewSchedule starts a timer whose first firing is one period after now
func NewSchedule(now, period time.Duration, loops int) *Schedule {
	s := &Schedule{loops: loops}
	s.Reset(now, period)
	return s
}

// Reset restarts the timer with a new period and a fresh loop budget
func (s *Schedule) Reset(now, period time.Duration) {
	if period <= 0 {
		panic("system: schedule period must be positive")
	}
	s.period = period
	s.next = now + period
	s.remaining = s.loops
}

// Due reports whether the timer fires at now. A frame fires at most once;
// if several periods were missed the timer catches up to now instead of
// bursting.
func (s *Schedule) Due(now time.Duration) bool {
	if s.Exhausted() || now < s.next {
		return false
	}
	s.next += s.period
	if s.next <= now {
		s.next = now + s.period
	}
	if s.loops > 0 {
		s.remaining--
	}
	return true
}

// Exhausted reports whether the loop budget is spent
func (s *Schedule) Exhausted() bool {
	return s.loops > 0 && s.remaining <= 0
}

// Period returns the current period
func (s *Schedule) Period() time.Duration {
	return s.period
}
