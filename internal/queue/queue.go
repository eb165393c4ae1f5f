// Package queue implements the playback queue and transport state machine:
// the ordered list of playable tracks, the cursor on the active one,
// shuffle/repeat semantics and time/volume bookkeeping. It performs no I/O
// and never touches an audio backend; collaborators observe it through
// Subscribe and drive it through its operations.
//
// Ordinary misuse (bad index, duplicate track, empty queue) never returns an
// error: such calls are absorbed as no-ops with a diagnostic log, because the
// caller is a UI mid-interaction and a silently ignored click is the correct
// outcome. The only failure state is the error string set via SetError.
package queue

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	defaultVolume = 70

	// Pressing "previous" after this much elapsed time restarts the
	// current track instead of moving back one.
	restartThreshold = 3 * time.Second
)

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// PreviousResult is returned by GoToPrevious. When ShouldRestart is true the
// cursor did not move: the caller should seek the current track back to zero.
type PreviousResult struct {
	Track         *Track
	ShouldRestart bool
}

// Queue owns the canonical answer to "what is playing, what is next, in what
// order". All methods are safe for concurrent use and none of them block.
type Queue struct {
	mu sync.RWMutex

	tracks       []Track
	original     []Track // pre-shuffle order, restored when shuffle turns off
	currentIndex int
	current      *Track

	playing  bool
	position time.Duration
	duration time.Duration
	progress float64 // 0-100
	volume   int     // 0-100, preserved across mute
	muted    bool
	shuffle  bool
	repeat   RepeatMode
	errMsg   string

	collator *collate.Collator
	logger   *log.Logger

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// Option configures a Queue.
type Option func(*Queue)

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(q *Queue) { q.logger = l }
}

// New creates an empty queue with default transport settings
// (volume 70, unmuted, shuffle off, repeat off).
func New(opts ...Option) *Queue {
	q := &Queue{
		volume:   defaultVolume,
		collator: collate.New(language.Und, collate.Loose),
		logger:   log.Default(),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// SetQueue replaces the whole queue. Invalid tracks are dropped and
// duplicates (case-insensitive path) collapsed; if nothing playable remains
// the queue is cleared. When sortTracks is true the surviving tracks are
// ordered by title (path when blank) with locale-aware collation. startIndex
// is clamped into range and the track there becomes current. If shuffle is
// already active the new queue is re-shuffled with the chosen track moved to
// the front so playback continues from it.
func (q *Queue) SetQueue(tracks []Track, startIndex int, sortTracks bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	valid := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if !t.Valid() {
			q.logger.Warn("dropping invalid track", "path", t.Path)
			continue
		}
		if containsPath(valid, t.Path) {
			q.logger.Warn("dropping duplicate track", "path", t.Path)
			continue
		}
		valid = append(valid, t)
	}

	if len(valid) == 0 {
		q.logger.Warn("no playable tracks in input, clearing queue", "input", len(tracks))
		q.clearQueueLocked()
		return
	}

	if sortTracks {
		q.sortLocked(valid)
	}
	for i := range valid {
		valid[i] = q.sanitizeLogged(valid[i])
	}

	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex >= len(valid) {
		startIndex = len(valid) - 1
	}

	q.tracks = valid
	q.original = copyTracks(valid)

	if q.shuffle {
		start := q.tracks[startIndex].Path
		q.shuffleLocked()
		q.moveToFrontLocked(indexOfPath(q.tracks, start))
		startIndex = 0
	}

	q.setCurrentLocked(startIndex)
	q.emitQueueLocked()
}

// AddToQueue validates and appends a single track. A case-insensitive
// duplicate path is rejected as a no-op. Returns true if the track was added.
func (q *Queue) AddToQueue(track Track) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !track.Valid() {
		q.logger.Warn("rejecting invalid track", "path", track.Path)
		return false
	}
	if containsPath(q.tracks, track.Path) {
		q.logger.Warn("track already queued", "path", track.Path)
		return false
	}

	t := q.sanitizeLogged(track)
	q.tracks = append(q.tracks, t)
	q.original = append(q.original, t)
	q.emitQueueLocked()
	return true
}

// AddMultipleToQueue appends all valid tracks that are not already queued,
// deduplicating within the batch as well. Returns the number added.
func (q *Queue) AddMultipleToQueue(tracks []Track) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	added := 0
	for _, t := range tracks {
		if !t.Valid() {
			q.logger.Warn("rejecting invalid track", "path", t.Path)
			continue
		}
		if containsPath(q.tracks, t.Path) {
			q.logger.Warn("track already queued", "path", t.Path)
			continue
		}
		st := q.sanitizeLogged(t)
		q.tracks = append(q.tracks, st)
		q.original = append(q.original, st)
		added++
	}
	if added > 0 {
		q.emitQueueLocked()
	}
	return added
}

// InsertToQueue validates and splices a track in at the given position
// (clamped into [0, len]). The cursor is bumped when the insertion happens at
// or before it so it keeps pointing at the same logical track.
func (q *Queue) InsertToQueue(track Track, index int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !track.Valid() {
		q.logger.Warn("rejecting invalid track", "path", track.Path)
		return false
	}
	if containsPath(q.tracks, track.Path) {
		q.logger.Warn("track already queued", "path", track.Path)
		return false
	}

	if index < 0 {
		index = 0
	}
	if index > len(q.tracks) {
		index = len(q.tracks)
	}

	t := q.sanitizeLogged(track)
	q.insertLocked(index, t)
	if q.current != nil && index <= q.currentIndex {
		q.currentIndex++
	}
	q.rememberOriginalLocked(t)
	q.emitQueueLocked()
	return true
}

// EnqueueNext inserts a track immediately after the cursor (or as the sole
// element of an empty queue). Queueing the currently playing track right
// after itself is a no-op. Unlike AddToQueue, duplicates of other queue
// entries are allowed.
func (q *Queue) EnqueueNext(track Track) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !track.Valid() {
		q.logger.Warn("rejecting invalid track", "path", track.Path)
		return false
	}
	if q.current != nil && samePath(track.Path, q.current.Path) {
		q.logger.Debug("not queueing current track after itself", "path", track.Path)
		return false
	}

	t := q.sanitizeLogged(track)
	if len(q.tracks) == 0 {
		q.tracks = []Track{t}
	} else {
		q.insertLocked(q.currentIndex+1, t)
	}
	q.rememberOriginalLocked(t)
	q.emitQueueLocked()
	return true
}

// EnqueueNextMultiple inserts an ordered block of tracks immediately after
// the cursor, filtering the currently playing track out of the batch first.
// Returns the number inserted.
func (q *Queue) EnqueueNextMultiple(tracks []Track) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	block := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if !t.Valid() {
			q.logger.Warn("rejecting invalid track", "path", t.Path)
			continue
		}
		if q.current != nil && samePath(t.Path, q.current.Path) {
			continue
		}
		block = append(block, q.sanitizeLogged(t))
	}
	if len(block) == 0 {
		return 0
	}

	if len(q.tracks) == 0 {
		q.tracks = copyTracks(block)
	} else {
		pos := q.currentIndex + 1
		rest := copyTracks(q.tracks[pos:])
		q.tracks = append(q.tracks[:pos], block...)
		q.tracks = append(q.tracks, rest...)
	}
	q.rememberOriginalLocked(block...)
	q.emitQueueLocked()
	return len(block)
}

// RemoveFromQueue removes the track at the given index, keeping the original
// order snapshot consistent and the cursor pointing at the same logical
// track. Returns false for an out-of-range index.
func (q *Queue) RemoveFromQueue(index int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 0 || index >= len(q.tracks) {
		q.logger.Warn("remove index out of range", "index", index, "len", len(q.tracks))
		return false
	}

	removedCurrent := index == q.currentIndex && q.current != nil

	removed := q.tracks[index]
	q.tracks = append(q.tracks[:index], q.tracks[index+1:]...)
	if i := indexOfPath(q.original, removed.Path); i >= 0 {
		q.original = append(q.original[:i], q.original[i+1:]...)
	}

	if index < q.currentIndex {
		q.currentIndex--
	}
	if q.currentIndex >= len(q.tracks) {
		q.currentIndex = len(q.tracks) - 1
	}
	if q.currentIndex < 0 {
		q.currentIndex = 0
	}

	// Removing the current track promotes whatever now sits at the cursor,
	// keeping current and currentIndex in lockstep.
	if removedCurrent {
		q.setCurrentLocked(q.currentIndex)
	}

	q.emitQueueLocked()
	return true
}

// ClearQueue empties the queue and stops the transport. Modes, volume and
// the error field are untouched.
func (q *Queue) ClearQueue() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.clearQueueLocked()
}

// Reset clears the queue and restores every transport setting to its default
// (volume 70, unmuted, shuffle off, repeat off, error cleared).
func (q *Queue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.clearQueueLocked()
	q.volume = defaultVolume
	q.muted = false
	q.shuffle = false
	q.repeat = RepeatOff
	q.errMsg = ""
	q.publish(func(s *Subscription) {
		s.sendMode(ModeChange{Shuffle: q.shuffle, Repeat: q.repeat})
		s.sendVolume(VolumeChange{Volume: q.volume, Muted: q.muted})
	})
}

// GoToNext advances the cursor and returns the new current track. At the end
// of the queue it wraps to index 0 only when repeat is All; otherwise it
// returns nil and the caller decides what stopping means.
func (q *Queue) GoToNext() *Track {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.tracks) == 0 {
		return nil
	}
	switch {
	case q.currentIndex < len(q.tracks)-1:
		q.setCurrentLocked(q.currentIndex + 1)
	case q.repeat == RepeatAll:
		q.setCurrentLocked(0)
	default:
		return nil
	}
	return q.currentCopyLocked()
}

// GoToPrevious implements media-player "previous": past the restart
// threshold it asks for a restart of the current track without moving the
// cursor; otherwise it moves back one when possible.
func (q *Queue) GoToPrevious() PreviousResult {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current != nil && q.position > restartThreshold {
		return PreviousResult{Track: q.currentCopyLocked(), ShouldRestart: true}
	}
	if len(q.tracks) > 0 && q.currentIndex > 0 {
		q.setCurrentLocked(q.currentIndex - 1)
		return PreviousResult{Track: q.currentCopyLocked()}
	}
	return PreviousResult{}
}

// GoToIndex jumps the cursor to an arbitrary queue position.
// Returns nil for an out-of-range index.
func (q *Queue) GoToIndex(index int) *Track {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 0 || index >= len(q.tracks) {
		q.logger.Warn("jump index out of range", "index", index, "len", len(q.tracks))
		return nil
	}
	q.setCurrentLocked(index)
	return q.currentCopyLocked()
}

// ToggleShuffle flips shuffle mode. Turning it on shuffles the whole queue
// and relocates the current track to index 0: the song playing now keeps
// playing, only the future order changes. Turning it off restores the
// original order and re-locates the current track there (track 0 if it has
// been removed in the meantime).
func (q *Queue) ToggleShuffle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.shuffle = !q.shuffle
	if q.shuffle {
		q.shuffleLocked()
		if q.current != nil {
			q.moveToFrontLocked(indexOfPath(q.tracks, q.current.Path))
		}
		q.currentIndex = 0
	} else {
		q.tracks = copyTracks(q.original)
		switch {
		case len(q.tracks) == 0:
			q.currentIndex = 0
			q.current = nil
		case q.current == nil:
			q.currentIndex = 0
		default:
			if i := indexOfPath(q.tracks, q.current.Path); i >= 0 {
				q.currentIndex = i
			} else {
				// Current track was removed while shuffled
				q.setCurrentLocked(0)
			}
		}
	}

	q.publish(func(s *Subscription) {
		s.sendMode(ModeChange{Shuffle: q.shuffle, Repeat: q.repeat})
	})
	q.emitQueueLocked()
	return q.shuffle
}

// ToggleRepeat cycles the repeat mode: off, all, one.
func (q *Queue) ToggleRepeat() RepeatMode {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch q.repeat {
	case RepeatOff:
		q.repeat = RepeatAll
	case RepeatAll:
		q.repeat = RepeatOne
	case RepeatOne:
		q.repeat = RepeatOff
	}
	q.publish(func(s *Subscription) {
		s.sendMode(ModeChange{Shuffle: q.shuffle, Repeat: q.repeat})
	})
	return q.repeat
}

// SetPlaying records whether the audio collaborator is actually playing.
func (q *Queue) SetPlaying(playing bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.playing == playing {
		return
	}
	q.playing = playing
	q.publish(func(s *Subscription) {
		s.sendState(StateChange{Playing: playing})
	})
}

// SetTime records the elapsed time reported by the audio collaborator and
// recomputes the progress percentage.
func (q *Queue) SetTime(position time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if position < 0 {
		position = 0
	}
	q.position = position
	q.recomputeProgressLocked()
	q.publish(func(s *Subscription) {
		s.sendPosition(PositionChange{Position: q.position, Duration: q.duration})
	})
}

// SetDuration updates the authoritative track length, once real media
// metadata is available, and keeps progress consistent with it.
func (q *Queue) SetDuration(duration time.Duration) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if duration < 0 {
		q.logger.Warn("ignoring negative duration", "duration", duration)
		return
	}
	q.duration = duration
	if q.current != nil {
		q.current.Duration = duration
		if q.currentIndex < len(q.tracks) && samePath(q.tracks[q.currentIndex].Path, q.current.Path) {
			q.tracks[q.currentIndex].Duration = duration
		}
	}
	q.recomputeProgressLocked()
	q.publish(func(s *Subscription) {
		s.sendPosition(PositionChange{Position: q.position, Duration: q.duration})
	})
}

// SetProgress stores a seek intent as a percentage. Translating it back to a
// time offset is the audio collaborator's job.
func (q *Queue) SetProgress(pct float64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	q.progress = pct
}

// SetVolume clamps into [0,100]. A positive volume clears mute; muting never
// alters the stored volume, so unmute restores exactly the prior level.
func (q *Queue) SetVolume(volume int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	q.volume = volume
	if volume > 0 {
		q.muted = false
	}
	q.publish(func(s *Subscription) {
		s.sendVolume(VolumeChange{Volume: q.volume, Muted: q.muted})
	})
}

// ToggleMute flips mute without touching the stored volume.
func (q *Queue) ToggleMute() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.muted = !q.muted
	q.publish(func(s *Subscription) {
		s.sendVolume(VolumeChange{Volume: q.volume, Muted: q.muted})
	})
	return q.muted
}

// SetError records a failure reported by an external collaborator (or clears
// it with an empty message). It is cleared automatically on track change.
func (q *Queue) SetError(msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.errMsg = msg
	if msg != "" {
		q.publish(func(s *Subscription) {
			s.sendError(ErrorEvent{Message: msg})
		})
	}
}

// Subscribe creates a new event subscription.
func (q *Queue) Subscribe() *Subscription {
	q.subsMu.Lock()
	defer q.subsMu.Unlock()
	sub := newSubscription()
	q.subs = append(q.subs, sub)
	return sub
}

// Close terminates all subscriptions. The queue itself remains usable.
func (q *Queue) Close() {
	q.subsMu.Lock()
	defer q.subsMu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for _, sub := range q.subs {
		sub.close()
	}
	q.subs = nil
}

// Read-only accessors.

// Current returns a copy of the current track, or nil if none.
func (q *Queue) Current() *Track {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.currentCopyLocked()
}

// CurrentIndex returns the cursor position (0 when the queue is empty).
func (q *Queue) CurrentIndex() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.currentIndex
}

// Tracks returns a copy of the queue.
func (q *Queue) Tracks() []Track {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return copyTracks(q.tracks)
}

// Len returns the number of queued tracks.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.tracks)
}

// IsEmpty returns true if the queue has no tracks.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// HasNext reports whether a next index exists (ignoring repeat wrap).
func (q *Queue) HasNext() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.currentIndex < len(q.tracks)-1
}

// HasPrevious reports whether a previous index exists.
func (q *Queue) HasPrevious() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.tracks) > 0 && q.currentIndex > 0
}

// Playing reports whether the transport is playing.
func (q *Queue) Playing() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.playing
}

// Position returns the elapsed time of the current track.
func (q *Queue) Position() time.Duration {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.position
}

// Duration returns the authoritative length of the current track.
func (q *Queue) Duration() time.Duration {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.duration
}

// Progress returns the playback progress percentage (0-100).
func (q *Queue) Progress() float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.progress
}

// Volume returns the stored volume (0-100), unaffected by mute.
func (q *Queue) Volume() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.volume
}

// Muted reports whether audio is muted.
func (q *Queue) Muted() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.muted
}

// Shuffle reports whether shuffle mode is on.
func (q *Queue) Shuffle() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.shuffle
}

// Repeat returns the repeat mode.
func (q *Queue) Repeat() RepeatMode {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.repeat
}

// Error returns the recorded external failure message, if any.
func (q *Queue) Error() string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.errMsg
}

// FormattedPosition returns the elapsed time as M:SS.
func (q *Queue) FormattedPosition() string {
	return FormatDuration(q.Position())
}

// FormattedDuration returns the track length as M:SS.
func (q *Queue) FormattedDuration() string {
	return FormatDuration(q.Duration())
}

// ShouldRestartOnPrevious reports whether "previous" would restart the
// current track instead of moving back.
func (q *Queue) ShouldRestartOnPrevious() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.position > restartThreshold
}

// Internal helpers. All assume q.mu is held.

// setCurrentLocked moves the cursor, resets time bookkeeping and adopts the
// new track's duration. A stale external error is cleared only when a track
// actually becomes current; Reset handles the rest.
func (q *Queue) setCurrentLocked(index int) {
	prev := q.current
	prevIdx := q.currentIndex

	q.currentIndex = index
	if index < 0 || index >= len(q.tracks) {
		q.current = nil
		q.duration = 0
	} else {
		t := q.tracks[index]
		q.current = &t
		q.duration = t.Duration
		q.errMsg = ""
	}
	q.position = 0
	q.progress = 0

	cur := q.currentCopyLocked()
	q.publish(func(s *Subscription) {
		s.sendTrack(TrackChange{Previous: prev, Current: cur, PreviousIndex: prevIdx, Index: index})
		s.sendPosition(PositionChange{Position: 0, Duration: q.duration})
	})
}

func (q *Queue) clearQueueLocked() {
	hadCurrent := q.current != nil
	q.tracks = nil
	q.original = nil
	if hadCurrent {
		q.setCurrentLocked(0)
	} else {
		q.currentIndex = 0
		q.position = 0
		q.progress = 0
		q.duration = 0
	}
	if q.playing {
		q.playing = false
		q.publish(func(s *Subscription) {
			s.sendState(StateChange{Playing: false})
		})
	}
	q.emitQueueLocked()
}

func (q *Queue) currentCopyLocked() *Track {
	if q.current == nil {
		return nil
	}
	t := *q.current
	return &t
}

func (q *Queue) insertLocked(index int, t Track) {
	rest := copyTracks(q.tracks[index:])
	q.tracks = append(q.tracks[:index], t)
	q.tracks = append(q.tracks, rest...)
}

// rememberOriginalLocked keeps the original-order snapshot consistent after
// an insertion: while shuffled the new tracks are appended to it, otherwise
// the live queue is the original order and is mirrored wholesale.
func (q *Queue) rememberOriginalLocked(added ...Track) {
	if q.shuffle {
		q.original = append(q.original, added...)
	} else {
		q.original = copyTracks(q.tracks)
	}
}

// sortLocked orders tracks alphabetically by title, falling back to path for
// blank titles, using locale-aware collation.
func (q *Queue) sortLocked(tracks []Track) {
	key := func(t Track) string {
		if s := trimmedTitle(t); s != "" {
			return s
		}
		return t.Path
	}
	sort.SliceStable(tracks, func(i, j int) bool {
		ki, kj := key(tracks[i]), key(tracks[j])
		if c := q.collator.CompareString(ki, kj); c != 0 {
			return c < 0
		}
		return tracks[i].Path < tracks[j].Path
	})
}

// shuffleLocked performs a Fisher-Yates shuffle over the whole queue.
func (q *Queue) shuffleLocked() {
	rand.Shuffle(len(q.tracks), func(i, j int) {
		q.tracks[i], q.tracks[j] = q.tracks[j], q.tracks[i]
	})
}

// moveToFrontLocked relocates the track at index i to index 0, preserving
// the relative order of the rest. Negative or zero i is a no-op.
func (q *Queue) moveToFrontLocked(i int) {
	if i <= 0 || i >= len(q.tracks) {
		return
	}
	t := q.tracks[i]
	q.tracks = append(q.tracks[:i], q.tracks[i+1:]...)
	q.tracks = append([]Track{t}, q.tracks...)
}

func (q *Queue) recomputeProgressLocked() {
	if q.duration <= 0 {
		q.progress = 0
		return
	}
	pct := float64(q.position) / float64(q.duration) * 100
	if pct > 100 {
		pct = 100
	}
	q.progress = pct
}

func (q *Queue) sanitizeLogged(t Track) Track {
	if trimmedTitle(t) == "" {
		q.logger.Debug("track has no title", "path", t.Path)
	}
	return t.sanitize()
}

func (q *Queue) emitQueueLocked() {
	tracks := copyTracks(q.tracks)
	q.publish(func(s *Subscription) {
		s.sendQueue(QueueChange{Tracks: tracks, Index: q.currentIndex})
	})
}

func (q *Queue) publish(fn func(*Subscription)) {
	q.subsMu.RLock()
	defer q.subsMu.RUnlock()
	for _, sub := range q.subs {
		fn(sub)
	}
}
