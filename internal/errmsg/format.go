// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Scan operations
	OpScanFolder Op = "scan music folder"
	OpReadTags   Op = "read file tags"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Configuration
	OpConfigLoad Op = "load configuration"

	// Last.fm
	OpLastfmAuth       Op = "authenticate with Last.fm"
	OpLastfmScrobble   Op = "scrobble track"
	OpLastfmNowPlaying Op = "update now playing"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
