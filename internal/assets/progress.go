package assets

import "sync/atomic"

// ProgressCounter tracks how many asset loads were started and how many
// have finished or failed. Loading collaborators increment it; the driver
// only polls Complete. Safe for concurrent use.
type ProgressCounter struct {
	started  atomic.Int64
	finished atomic.Int64
	failed   atomic.Int64
}

// Start records n newly started loads.
func (p *ProgressCounter) Start(n int) {
	p.started.Add(int64(n))
}

// Finish records n successfully finished loads.
func (p *ProgressCounter) Finish(n int) {
	p.finished.Add(int64(n))
}

// Fail records n failed loads.
func (p *ProgressCounter) Fail(n int) {
	p.failed.Add(int64(n))
}

// Pending returns the number of loads still in flight.
func (p *ProgressCounter) Pending() int {
	return int(p.started.Load() - p.finished.Load() - p.failed.Load())
}

// Failures returns the number of failed loads.
func (p *ProgressCounter) Failures() int {
	return int(p.failed.Load())
}

// Complete reports whether every started load has settled, successfully
// or not.
func (p *ProgressCounter) Complete() bool {
	return p.Pending() == 0
}
