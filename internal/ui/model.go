// Package ui implements the terminal front end: a queue panel above a
// player bar, driven by the playback queue and an audio backend.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yosimar43/resona/internal/errmsg"
	"github.com/yosimar43/resona/internal/player"
	"github.com/yosimar43/resona/internal/queue"
)

const volumeStep = 5

type tickMsg time.Time

// Model is the bubbletea model for the queue view.
type Model struct {
	queue  *queue.Queue
	player player.Interface
	keys   KeyMap

	cursor int
	offset int
	width  int
	height int
}

// New creates the UI model around a queue and an audio backend.
func New(q *queue.Queue, p player.Interface) Model {
	return Model{
		queue:  q,
		player: p,
		keys:   DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()

	case tickMsg:
		m.syncPlayer()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.player.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.scrollToCursor()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.queue.Len()-1 {
			m.cursor++
		}
		m.scrollToCursor()

	case key.Matches(msg, m.keys.PlayPause):
		m.togglePlayback()

	case key.Matches(msg, m.keys.Next):
		m.playNext()

	case key.Matches(msg, m.keys.Previous):
		m.playPrevious()

	case key.Matches(msg, m.keys.Shuffle):
		m.queue.ToggleShuffle()
		m.clampCursor()

	case key.Matches(msg, m.keys.Repeat):
		m.queue.ToggleRepeat()

	case key.Matches(msg, m.keys.VolumeUp):
		m.queue.SetVolume(m.queue.Volume() + volumeStep)

	case key.Matches(msg, m.keys.VolumeDown):
		m.queue.SetVolume(m.queue.Volume() - volumeStep)

	case key.Matches(msg, m.keys.Mute):
		m.queue.ToggleMute()

	case key.Matches(msg, m.keys.Play):
		if track := m.queue.GoToIndex(m.cursor); track != nil {
			m.playTrack(*track)
		}

	case key.Matches(msg, m.keys.Remove):
		m.queue.RemoveFromQueue(m.cursor)
		m.clampCursor()
	}
	return m, nil
}

// syncPlayer pulls time from the audio backend into the queue and handles
// end-of-track transitions.
func (m *Model) syncPlayer() {
	select {
	case <-m.player.FinishedChan():
		m.onTrackFinished()
	default:
	}

	if m.player.State() == player.Playing {
		m.queue.SetTime(m.player.Position())
	}
}

func (m *Model) onTrackFinished() {
	if m.queue.Repeat() == queue.RepeatOne {
		if current := m.queue.Current(); current != nil {
			m.playTrack(*current)
		}
		return
	}
	m.playNext()
}

func (m *Model) togglePlayback() {
	switch m.player.State() {
	case player.Playing:
		m.player.Pause()
		m.queue.SetPlaying(false)
	case player.Paused:
		m.player.Resume()
		m.queue.SetPlaying(true)
	case player.Stopped:
		if current := m.queue.Current(); current != nil {
			m.playTrack(*current)
		}
	}
}

func (m *Model) playNext() {
	if next := m.queue.GoToNext(); next != nil {
		m.playTrack(*next)
		return
	}
	m.player.Stop()
	m.queue.SetPlaying(false)
}

func (m *Model) playPrevious() {
	res := m.queue.GoToPrevious()
	if res.ShouldRestart {
		m.player.SeekTo(0)
		m.queue.SetTime(0)
		return
	}
	if res.Track != nil {
		m.playTrack(*res.Track)
	}
}

func (m *Model) playTrack(track queue.Track) {
	if err := m.player.Play(track.Path); err != nil {
		m.queue.SetError(errmsg.FormatWith(errmsg.OpPlaybackStart, track.Title, err))
		m.queue.SetPlaying(false)
		return
	}
	m.queue.SetPlaying(true)
	m.queue.SetDuration(m.player.Duration())
}

func (m *Model) clampCursor() {
	if last := m.queue.Len() - 1; m.cursor > last {
		m.cursor = last
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	visible := m.listHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
