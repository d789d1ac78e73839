package entity

// Progress tracks score and difficulty level for one run
type Progress struct {
	Score     int
	Level     int
	Threshold int

	thresholdStep int
}

// NewProgress starts a run at the given level
func NewProgress(level, threshold, step int) *Progress {
	if level < 1 {
		level = 1
	}
	return &Progress{
		Level:         level,
		Threshold:     threshold,
		thresholdStep: step,
	}
}

// Add adds points to the score
func (p *Progress) Add(points int) {
	p.Score += points
}

// CheckLevelUp raises the level by one when score reaches Level*Threshold.
// At most one level is gained per call, however far the score overshoots.
func (p *Progress) CheckLevelUp() bool {
	if p.Score < p.Level*p.Threshold {
		return false
	}
	p.Level++
	p.Threshold += p.thresholdStep
	return true
}
