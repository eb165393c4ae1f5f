package queue

import "time"

// TrackChange is emitted when the playback cursor lands on a different track
// (SetQueue, GoToNext/GoToPrevious/GoToIndex, or un-shuffle relocating the
// cursor). Pure queue edits do not move the cursor and do not emit it.
type TrackChange struct {
	Previous      *Track
	Current       *Track
	PreviousIndex int
	Index         int
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []Track
	Index  int
}

// ModeChange is emitted when shuffle or repeat changes.
type ModeChange struct {
	Shuffle bool
	Repeat  RepeatMode
}

// StateChange is emitted when playback starts or stops.
type StateChange struct {
	Playing bool
}

// PositionChange is emitted on every time report from the audio collaborator.
type PositionChange struct {
	Position time.Duration
	Duration time.Duration
}

// VolumeChange is emitted when volume or mute changes.
type VolumeChange struct {
	Volume int
	Muted  bool
}

// ErrorEvent is emitted when an external failure is recorded via SetError.
type ErrorEvent struct {
	Message string
}
