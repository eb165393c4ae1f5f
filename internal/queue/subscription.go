package queue

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	TrackChanged    <-chan TrackChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	StateChanged    <-chan StateChange
	PositionChanged <-chan PositionChange
	VolumeChanged   <-chan VolumeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	// Internal write channels
	trackCh    chan TrackChange
	queueCh    chan QueueChange
	modeCh     chan ModeChange
	stateCh    chan StateChange
	positionCh chan PositionChange
	volumeCh   chan VolumeChange
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		trackCh:    make(chan TrackChange, eventBufferSize),
		queueCh:    make(chan QueueChange, eventBufferSize),
		modeCh:     make(chan ModeChange, eventBufferSize),
		stateCh:    make(chan StateChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.TrackChanged = s.trackCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.StateChanged = s.stateCh
	s.PositionChanged = s.positionCh
	s.VolumeChanged = s.volumeCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendTrack sends a track change event (non-blocking).
func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendQueue sends a queue change event (non-blocking).
func (s *Subscription) sendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

// sendMode sends a mode change event (non-blocking).
func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}

// sendState sends a state change event (non-blocking).
func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

// sendPosition sends a position change event (non-blocking).
func (s *Subscription) sendPosition(e PositionChange) {
	select {
	case s.positionCh <- e:
	default:
	}
}

// sendVolume sends a volume change event (non-blocking).
func (s *Subscription) sendVolume(e VolumeChange) {
	select {
	case s.volumeCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
