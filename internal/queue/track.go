package queue

import (
	"path/filepath"
	"strings"
	"time"
)

// Placeholder metadata applied when a track arrives with blank fields.
const (
	UnknownTitle  = "Unknown Title"
	UnknownArtist = "Unknown Artist"
)

// supportedExtensions lists the audio file extensions accepted into the queue.
// Anything else is dropped at insertion time.
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".m4a":  true,
	".flac": true,
	".aac":  true,
	".wma":  true,
}

// Track represents a single playable unit. Tracks are value records produced
// by a scanning collaborator; the queue only trims and defaults their fields.
type Track struct {
	Path     string // unique identifier, case-insensitive
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
	AlbumArt []byte // optional embedded cover image
}

// IsSupportedPath returns true if the path ends in a supported audio extension.
func IsSupportedPath(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(strings.TrimSpace(path)))]
}

// Valid reports whether the track can be queued: a non-empty path with a
// supported audio extension. Metadata fields are never required.
func (t Track) Valid() bool {
	return strings.TrimSpace(t.Path) != "" && IsSupportedPath(t.Path)
}

// sanitize returns a copy with the path trimmed and blank metadata defaulted.
func (t Track) sanitize() Track {
	t.Path = strings.TrimSpace(t.Path)
	t.Title = strings.TrimSpace(t.Title)
	t.Artist = strings.TrimSpace(t.Artist)
	t.Album = strings.TrimSpace(t.Album)
	if t.Title == "" {
		t.Title = UnknownTitle
	}
	if t.Artist == "" {
		t.Artist = UnknownArtist
	}
	if t.Duration < 0 {
		t.Duration = 0
	}
	return t
}

func trimmedTitle(t Track) string {
	return strings.TrimSpace(t.Title)
}

// samePath compares track paths case-insensitively.
func samePath(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// indexOfPath returns the index of the track with the given path, or -1.
func indexOfPath(tracks []Track, path string) int {
	for i := range tracks {
		if samePath(tracks[i].Path, path) {
			return i
		}
	}
	return -1
}

func containsPath(tracks []Track, path string) bool {
	return indexOfPath(tracks, path) >= 0
}

func copyTracks(tracks []Track) []Track {
	out := make([]Track, len(tracks))
	copy(out, tracks)
	return out
}
