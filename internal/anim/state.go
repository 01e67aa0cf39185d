package anim

import "time"

// State is the shared run record for a playground session. It is created
// once at startup and passed explicitly to everything that needs it; no
// package-level state is kept.
type State struct {
	// Runs counts pulse animations triggered this session.
	Runs int

	// LastDuration is the duration of the most recent pulse run.
	// Zero until the first run starts.
	LastDuration time.Duration
}

// NewState returns a zeroed session record.
func NewState() *State {
	return &State{}
}

// RecordRun notes a pulse run of duration d.
func (s *State) RecordRun(d time.Duration) {
	s.Runs++
	s.LastDuration = d
}
