package player

import (
	"sync"
	"time"
)

// defaultTrackDuration is used when no duration has been configured for a
// track, so simulated playback always ends eventually.
const defaultTrackDuration = 3 * time.Minute

// Mock simulates an audio backend. Position advances only through Advance,
// which keeps tests deterministic; the demo binary drives it from a ticker.
type Mock struct {
	mu sync.Mutex

	state         State
	position      time.Duration
	trackDuration time.Duration
	playErr       error
	playCalls     []string
	seekCalls     []time.Duration
	finishedCh    chan struct{}
}

// NewMock creates a new mock player.
func NewMock() *Mock {
	return &Mock{
		trackDuration: defaultTrackDuration,
		finishedCh:    make(chan struct{}, 1),
	}
}

func (m *Mock) Play(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.playCalls = append(m.playCalls, path)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
	m.position = 0
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		m.state = Playing
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trackDuration
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seekCalls = append(m.seekCalls, pos)
	if pos < 0 {
		pos = 0
	}
	if pos > m.trackDuration {
		pos = m.trackDuration
	}
	m.position = pos
}

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

// Advance moves simulated playback forward. Crossing the end of the track
// stops the player and signals FinishedChan.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Playing {
		return
	}
	m.position += d
	if m.trackDuration > 0 && m.position >= m.trackDuration {
		m.position = m.trackDuration
		m.state = Stopped
		select {
		case m.finishedCh <- struct{}{}:
		default:
		}
	}
}

// Test helpers

func (m *Mock) SetTrackDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trackDuration = d
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.playCalls...)
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
