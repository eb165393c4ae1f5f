package lastfm

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/yosimar43/resona/internal/errmsg"
	"github.com/yosimar43/resona/internal/queue"
)

const (
	// minScrobbleDuration is the shortest track Last.fm accepts a scrobble for.
	minScrobbleDuration = 30 * time.Second
	// maxScrobblePoint caps the play time required before a scrobble counts.
	maxScrobblePoint = 4 * time.Minute
)

// Submitter is the slice of Client the watcher needs. Tests substitute a fake.
type Submitter interface {
	UpdateNowPlaying(track ScrobbleTrack) error
	Scrobble(track ScrobbleTrack) error
	IsAuthenticated() bool
}

// Watcher observes queue events and submits now-playing updates and
// scrobbles. A track scrobbles once it has played for half its duration or
// four minutes, whichever is less, and never scrobbles twice.
type Watcher struct {
	client Submitter
	sub    *queue.Subscription
	logger *log.Logger

	current *queue.Track
	state   scrobbleState

	done chan struct{}
}

// NewWatcher creates a watcher subscribed to q. Call Start to begin
// processing events and Stop when done.
func NewWatcher(client Submitter, q *queue.Queue, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		client: client,
		sub:    q.Subscribe(),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start launches the event loop on its own goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Stop terminates the event loop.
func (w *Watcher) Stop() {
	close(w.done)
}

func (w *Watcher) loop() {
	for {
		select {
		case e := <-w.sub.TrackChanged:
			w.handleTrackChange(e)
		case e := <-w.sub.PositionChanged:
			w.drainTrackChanges()
			w.handlePosition(e)
		case <-w.sub.Done:
			return
		case <-w.done:
			return
		}
	}
}

// drainTrackChanges applies any buffered track changes first, so a position
// event is never attributed to a track the watcher has not seen yet.
func (w *Watcher) drainTrackChanges() {
	for {
		select {
		case e := <-w.sub.TrackChanged:
			w.handleTrackChange(e)
		default:
			return
		}
	}
}

func (w *Watcher) handleTrackChange(e queue.TrackChange) {
	if e.Current == nil {
		w.current = nil
		w.state = scrobbleState{}
		return
	}
	if w.current != nil && e.Current.Path == w.state.trackPath {
		return
	}

	track := *e.Current
	w.current = &track
	w.state = scrobbleState{
		trackPath: track.Path,
		startedAt: time.Now(),
	}

	if !w.client.IsAuthenticated() {
		return
	}
	err := w.client.UpdateNowPlaying(ScrobbleTrack{
		Artist:   track.Artist,
		Track:    track.Title,
		Album:    track.Album,
		Duration: track.Duration,
	})
	if err != nil {
		w.logger.Warn(errmsg.Format(errmsg.OpLastfmNowPlaying, err), "track", track.Title)
		return
	}
	w.state.nowPlayingSent = true
}

func (w *Watcher) handlePosition(e queue.PositionChange) {
	if w.current == nil || w.state.scrobbled {
		return
	}
	if !shouldScrobble(e.Position, e.Duration) {
		return
	}
	if !w.client.IsAuthenticated() {
		return
	}

	err := w.client.Scrobble(ScrobbleTrack{
		Artist:    w.current.Artist,
		Track:     w.current.Title,
		Album:     w.current.Album,
		Duration:  e.Duration,
		Timestamp: w.state.startedAt,
	})
	if err != nil {
		w.logger.Warn(errmsg.Format(errmsg.OpLastfmScrobble, err), "track", w.current.Title)
		return
	}
	w.logger.Debug("scrobbled", "track", w.current.Title, "artist", w.current.Artist)
	w.state.scrobbled = true
}

// shouldScrobble implements the Last.fm submission rule: the track must run
// at least 30 seconds and must have played for half its duration or four
// minutes, whichever comes first.
func shouldScrobble(position, duration time.Duration) bool {
	if duration < minScrobbleDuration {
		return false
	}
	point := duration / 2
	if point > maxScrobblePoint {
		point = maxScrobblePoint
	}
	return position >= point
}
