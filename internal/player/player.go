// Package player defines the audio-output collaborator contract. The queue
// engine never decodes audio itself: a backend implementing Interface
// observes the current track, performs real playback and reports time back
// into the queue. The package ships a Mock backend that simulates playback
// for tests and for running the UI without audio hardware.
package player

import "time"

// State represents the playback state machine.
//
// Valid transitions:
//   - Stopped → Playing (via Play)
//   - Playing → Paused  (via Pause)
//   - Playing → Stopped (via Stop)
//   - Paused  → Playing (via Resume)
//   - Paused  → Stopped (via Stop)
//
// Toggle() cycles Playing ↔ Paused (no-op if Stopped). Everything else is
// handled gracefully as a no-op.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// Interface defines the audio backend contract for dependency injection
// and testing.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Position() time.Duration
	Duration() time.Duration
	SeekTo(pos time.Duration)
	FinishedChan() <-chan struct{}
}
