package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/yosimar43/resona/internal/player"
	"github.com/yosimar43/resona/internal/queue"
)

const playerBarHeight = 3 // top border + content + bottom border

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	currentTrackStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	playerBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// listHeight returns how many queue rows fit above the player bar.
func (m Model) listHeight() int {
	// header + list + player bar + help line
	h := m.height - playerBarHeight - 2
	if m.height == 0 {
		return 10
	}
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString(m.playerBarView())
	b.WriteString("\n")
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) headerView() string {
	title := "Queue"
	if n := m.queue.Len(); n > 0 {
		title = fmt.Sprintf("Queue (%d/%s)", m.queue.CurrentIndex()+1, humanize.Comma(int64(n)))
	}

	var modes []string
	if m.queue.Shuffle() {
		modes = append(modes, "shuffle")
	}
	switch m.queue.Repeat() {
	case queue.RepeatAll:
		modes = append(modes, "repeat all")
	case queue.RepeatOne:
		modes = append(modes, "repeat one")
	case queue.RepeatOff:
	}

	header := headerStyle.Render(title)
	if len(modes) > 0 {
		header += dimStyle.Render("  [" + strings.Join(modes, ", ") + "]")
	}
	return header
}

func (m Model) listView() string {
	tracks := m.queue.Tracks()
	if len(tracks) == 0 {
		return dimStyle.Render("  (queue is empty)") + "\n"
	}

	visible := m.listHeight()
	end := m.offset + visible
	if end > len(tracks) {
		end = len(tracks)
	}

	var b strings.Builder
	currentIndex := m.queue.CurrentIndex()
	for i := m.offset; i < end; i++ {
		track := tracks[i]

		marker := "  "
		if i == currentIndex && m.queue.Current() != nil {
			marker = "♪ "
		}
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("%s%s%s", prefix, marker, trackLine(track))
		if i == currentIndex && m.queue.Current() != nil {
			line = currentTrackStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func trackLine(t queue.Track) string {
	if t.Artist != "" && t.Artist != queue.UnknownArtist {
		return fmt.Sprintf("%s - %s", t.Artist, t.Title)
	}
	return t.Title
}

func (m Model) playerBarView() string {
	innerWidth := m.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	status := "⏹"
	switch m.player.State() {
	case player.Playing:
		status = "▶"
	case player.Paused:
		status = "⏸"
	case player.Stopped:
	}

	left := " " + status + "  "
	if current := m.queue.Current(); current != nil {
		left += trackLine(*current)
	} else {
		left += "Nothing playing"
	}

	volume := fmt.Sprintf("Vol %d%%", m.queue.Volume())
	if m.queue.Muted() {
		volume = "Muted"
	}
	right := fmt.Sprintf("%s / %s · %s ",
		m.queue.FormattedPosition(), m.queue.FormattedDuration(), volume)

	gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	content := left + strings.Repeat(" ", gap) + right

	return playerBarStyle.Width(innerWidth).Render(content)
}

func (m Model) helpView() string {
	if msg := m.queue.Error(); msg != "" {
		return errorStyle.Render(msg)
	}
	return dimStyle.Render("space play/pause · n next · p prev · s shuffle · r repeat · +/- volume · m mute · x remove · q quit")
}
