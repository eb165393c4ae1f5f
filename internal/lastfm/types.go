package lastfm

import "time"

// ScrobbleTrack contains track metadata for scrobbling.
type ScrobbleTrack struct {
	Artist    string
	Track     string
	Album     string
	Duration  time.Duration
	Timestamp time.Time // When playback started
}

// scrobbleState tracks the scrobbling status of the current track.
type scrobbleState struct {
	trackPath      string    // Path of current track (for dedup)
	startedAt      time.Time // When playback started
	scrobbled      bool      // Whether this track has been scrobbled
	nowPlayingSent bool      // Whether now playing was sent
}
