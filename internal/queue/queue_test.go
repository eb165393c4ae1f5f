//nolint:goconst // test file with repeated string literals
package queue

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestQueue() *Queue {
	return New(WithLogger(log.New(io.Discard)))
}

func tr(path, title string) Track {
	return Track{Path: path, Title: title}
}

func paths(tracks []Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Path
	}
	return out
}

func pathSet(tracks []Track) map[string]bool {
	set := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		set[t.Path] = true
	}
	return set
}

func TestNew_Defaults(t *testing.T) {
	q := newTestQueue()

	if q.Volume() != 70 {
		t.Errorf("Volume() = %d, want 70", q.Volume())
	}
	if q.Muted() {
		t.Error("Muted() should be false by default")
	}
	if q.Shuffle() {
		t.Error("Shuffle() should be false by default")
	}
	if q.Repeat() != RepeatOff {
		t.Errorf("Repeat() = %v, want RepeatOff", q.Repeat())
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
	if q.Current() != nil {
		t.Error("Current() should be nil for empty queue")
	}
}

func TestSetQueue_FiltersInvalidAndDuplicates(t *testing.T) {
	q := newTestQueue()

	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("", "no path"),
		tr("/notes.txt", "wrong extension"),
		tr("/A.MP3", "duplicate of a"),
		tr("/b.flac", "Beta"),
	}, 0, true)

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	got := paths(q.Tracks())
	if got[0] != "/a.mp3" || got[1] != "/b.flac" {
		t.Errorf("queue paths = %v, want [/a.mp3 /b.flac]", got)
	}
}

func TestSetQueue_NoValidTracksClears(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)

	q.SetQueue([]Track{tr("/bad.txt", "nope"), {}}, 0, true)

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.Current() != nil {
		t.Error("Current() should be nil after clearing")
	}
}

func TestSetQueue_Empty(t *testing.T) {
	q := newTestQueue()

	q.SetQueue(nil, 0, true)

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.Current() != nil {
		t.Error("Current() should be nil")
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
}

func TestSetQueue_SortsByTitle(t *testing.T) {
	q := newTestQueue()

	q.SetQueue([]Track{
		tr("/c.mp3", "Charlie"),
		tr("/a.mp3", "alpha"),
		tr("/b.mp3", "Bravo"),
	}, 0, true)

	got := paths(q.Tracks())
	want := []string{"/a.mp3", "/b.mp3", "/c.mp3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("queue paths = %v, want %v", got, want)
		}
	}
}

func TestSetQueue_SortFallsBackToPath(t *testing.T) {
	q := newTestQueue()

	q.SetQueue([]Track{
		tr("/z/02.mp3", ""),
		tr("/z/01.mp3", "  "),
	}, 0, true)

	got := paths(q.Tracks())
	if got[0] != "/z/01.mp3" || got[1] != "/z/02.mp3" {
		t.Errorf("queue paths = %v, want path order", got)
	}
	// Blank titles get the placeholder on insertion
	if q.Tracks()[0].Title != UnknownTitle {
		t.Errorf("Title = %q, want %q", q.Tracks()[0].Title, UnknownTitle)
	}
}

func TestSetQueue_NoSortPreservesOrder(t *testing.T) {
	q := newTestQueue()

	q.SetQueue([]Track{
		tr("/c.mp3", "Charlie"),
		tr("/a.mp3", "Alpha"),
	}, 0, false)

	got := paths(q.Tracks())
	if got[0] != "/c.mp3" || got[1] != "/a.mp3" {
		t.Errorf("queue paths = %v, want input order", got)
	}
}

func TestSetQueue_StartIndex(t *testing.T) {
	q := newTestQueue()

	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
	}, 1, true)

	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", q.CurrentIndex())
	}
	if cur := q.Current(); cur == nil || cur.Path != "/b.mp3" {
		t.Errorf("Current() = %v, want /b.mp3", cur)
	}
	if !q.HasNext() {
		t.Error("HasNext() should be true")
	}
	if !q.HasPrevious() {
		t.Error("HasPrevious() should be true")
	}
}

func TestSetQueue_ClampsStartIndex(t *testing.T) {
	q := newTestQueue()
	tracks := []Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}

	q.SetQueue(tracks, 99, true)
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1 (clamped)", q.CurrentIndex())
	}

	q.SetQueue(tracks, -5, true)
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (clamped)", q.CurrentIndex())
	}
}

func TestSetQueue_Idempotent(t *testing.T) {
	input := []Track{
		tr("/c.mp3", "Charlie"),
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
	}

	q1 := newTestQueue()
	q1.SetQueue(input, 1, true)
	q2 := newTestQueue()
	q2.SetQueue(input, 1, true)

	p1, p2 := paths(q1.Tracks()), paths(q2.Tracks())
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("orders differ: %v vs %v", p1, p2)
		}
	}
	if q1.CurrentIndex() != q2.CurrentIndex() {
		t.Errorf("indices differ: %d vs %d", q1.CurrentIndex(), q2.CurrentIndex())
	}
}

func TestSetQueue_WhileShuffled(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/x.mp3", "X")}, 0, true)
	q.ToggleShuffle()

	tracks := []Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
		tr("/d.mp3", "Delta"),
	}
	q.SetQueue(tracks, 2, true)

	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 after shuffled SetQueue", q.CurrentIndex())
	}
	if cur := q.Current(); cur == nil || cur.Path != "/c.mp3" {
		t.Errorf("Current() = %v, want the originally selected /c.mp3", cur)
	}
	if q.Len() != 4 {
		t.Errorf("Len() = %d, want 4", q.Len())
	}
	set := pathSet(q.Tracks())
	for _, in := range tracks {
		if !set[in.Path] {
			t.Errorf("shuffled queue is missing %s", in.Path)
		}
	}
}

func TestSetQueue_ResetsTimeAndAdoptsDuration(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)
	q.SetDuration(3 * time.Minute)
	q.SetTime(90 * time.Second)

	q.SetQueue([]Track{{Path: "/b.mp3", Title: "Bravo", Duration: 2 * time.Minute}}, 0, true)

	if q.Position() != 0 {
		t.Errorf("Position() = %v, want 0", q.Position())
	}
	if q.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", q.Progress())
	}
	if q.Duration() != 2*time.Minute {
		t.Errorf("Duration() = %v, want 2m", q.Duration())
	}
}

func TestAddToQueue_DuplicateIsNoop(t *testing.T) {
	q := newTestQueue()

	if !q.AddToQueue(tr("x.mp3", "X")) {
		t.Fatal("first AddToQueue should succeed")
	}
	if q.AddToQueue(tr("x.mp3", "X")) {
		t.Error("second AddToQueue should be a no-op")
	}
	if q.AddToQueue(tr("X.MP3", "case-insensitive dup")) {
		t.Error("case-insensitive duplicate should be rejected")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestAddToQueue_Invalid(t *testing.T) {
	q := newTestQueue()

	if q.AddToQueue(tr("", "no path")) {
		t.Error("empty path should be rejected")
	}
	if q.AddToQueue(tr("/song.txt", "bad ext")) {
		t.Error("unsupported extension should be rejected")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestAddToQueue_Sanitizes(t *testing.T) {
	q := newTestQueue()

	q.AddToQueue(Track{Path: "  /a.mp3  ", Title: " ", Artist: "", Album: "  "})

	got := q.Tracks()[0]
	if got.Path != "/a.mp3" {
		t.Errorf("Path = %q, want trimmed", got.Path)
	}
	if got.Title != UnknownTitle {
		t.Errorf("Title = %q, want %q", got.Title, UnknownTitle)
	}
	if got.Artist != UnknownArtist {
		t.Errorf("Artist = %q, want %q", got.Artist, UnknownArtist)
	}
	if got.Album != "" {
		t.Errorf("Album = %q, want empty", got.Album)
	}
}

func TestAddMultipleToQueue_Dedupes(t *testing.T) {
	q := newTestQueue()
	q.AddToQueue(tr("/a.mp3", "Alpha"))

	added := q.AddMultipleToQueue([]Track{
		tr("/a.mp3", "already queued"),
		tr("/b.mp3", "Bravo"),
		tr("/b.mp3", "dup within batch"),
		tr("/bad.doc", "invalid"),
		tr("/c.mp3", "Charlie"),
	})

	if added != 3 {
		t.Errorf("added = %d, want 3", added)
	}
	if q.Len() != 4 {
		t.Errorf("Len() = %d, want 4", q.Len())
	}
}

func TestInsertToQueue_BumpsCurrentIndex(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
	}, 1, true)

	if !q.InsertToQueue(tr("/new.mp3", "New"), 0) {
		t.Fatal("InsertToQueue should succeed")
	}

	if q.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2 (bumped)", q.CurrentIndex())
	}
	if cur := q.Current(); cur == nil || cur.Path != "/b.mp3" {
		t.Errorf("Current() = %v, want still /b.mp3", cur)
	}
	if got := paths(q.Tracks())[0]; got != "/new.mp3" {
		t.Errorf("queue[0] = %s, want /new.mp3", got)
	}
}

func TestInsertToQueue_ClampsIndex(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)

	q.InsertToQueue(tr("/b.mp3", "Bravo"), 99)
	if got := paths(q.Tracks()); got[1] != "/b.mp3" {
		t.Errorf("queue = %v, want /b.mp3 appended", got)
	}

	q.InsertToQueue(tr("/c.mp3", "Charlie"), -3)
	if got := paths(q.Tracks()); got[0] != "/c.mp3" {
		t.Errorf("queue = %v, want /c.mp3 first", got)
	}
}

func TestEnqueueNext_CurrentTrackIsNoop(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 0, true)

	if q.EnqueueNext(tr("/a.mp3", "Alpha")) {
		t.Error("queueing the current track after itself should be a no-op")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (unchanged)", q.Len())
	}
}

func TestEnqueueNext_AllowsDuplicatesOfOtherEntries(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 0, true)

	if !q.EnqueueNext(tr("/b.mp3", "Bravo")) {
		t.Fatal("duplicates of non-current entries are allowed here")
	}
	got := paths(q.Tracks())
	want := []string{"/a.mp3", "/b.mp3", "/b.mp3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("queue = %v, want %v", got, want)
		}
	}
}

func TestEnqueueNext_EmptyQueue(t *testing.T) {
	q := newTestQueue()

	if !q.EnqueueNext(tr("/a.mp3", "Alpha")) {
		t.Fatal("EnqueueNext into empty queue should succeed")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestEnqueueNextMultiple_FiltersCurrent(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/d.mp3", "Delta")}, 0, true)

	n := q.EnqueueNextMultiple([]Track{
		tr("/b.mp3", "Bravo"),
		tr("/a.mp3", "the current track"),
		tr("/c.mp3", "Charlie"),
	})

	if n != 2 {
		t.Errorf("inserted = %d, want 2", n)
	}
	got := paths(q.Tracks())
	want := []string{"/a.mp3", "/b.mp3", "/c.mp3", "/d.mp3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("queue = %v, want %v", got, want)
		}
	}
}

func TestRemoveFromQueue(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
	}, 1, true)

	if !q.RemoveFromQueue(0) {
		t.Fatal("RemoveFromQueue(0) should succeed")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0 (decremented)", q.CurrentIndex())
	}
	got := paths(q.Tracks())
	if got[0] != "/b.mp3" || got[1] != "/c.mp3" {
		t.Errorf("queue = %v, relative order not preserved", got)
	}
}

func TestRemoveFromQueue_CurrentTrack(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
	}, 1, true)

	if !q.RemoveFromQueue(1) {
		t.Fatal("RemoveFromQueue(1) should succeed")
	}

	cur := q.Current()
	if cur == nil || cur.Path != "/c.mp3" {
		t.Errorf("Current() = %v, want promoted /c.mp3", cur)
	}
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", q.CurrentIndex())
	}
	if cur != nil && q.Tracks()[q.CurrentIndex()].Path != cur.Path {
		t.Errorf("Current() = %q but queue[%d] = %q", cur.Path, q.CurrentIndex(), q.Tracks()[q.CurrentIndex()].Path)
	}
}

func TestRemoveFromQueue_CurrentTrackAtEnd(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 1, true)

	if !q.RemoveFromQueue(1) {
		t.Fatal("RemoveFromQueue(1) should succeed")
	}

	cur := q.Current()
	if cur == nil || cur.Path != "/a.mp3" {
		t.Errorf("Current() = %v, want /a.mp3 after cursor clamp", cur)
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
}

func TestRemoveFromQueue_LastTrackClearsCurrent(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)

	if !q.RemoveFromQueue(0) {
		t.Fatal("RemoveFromQueue(0) should succeed")
	}

	if !q.IsEmpty() {
		t.Errorf("Len() = %d, want empty queue", q.Len())
	}
	if cur := q.Current(); cur != nil {
		t.Errorf("Current() = %v, want nil for emptied queue", cur)
	}
}

func TestRemoveFromQueue_OutOfRange(t *testing.T) {
	q := newTestQueue()
	q.AddToQueue(tr("/a.mp3", "Alpha"))

	if q.RemoveFromQueue(-1) {
		t.Error("negative index should return false")
	}
	if q.RemoveFromQueue(1) {
		t.Error("index past end should return false")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestRemoveFromQueue_EveryIndexShrinksByOne(t *testing.T) {
	for remove := 0; remove < 3; remove++ {
		q := newTestQueue()
		q.SetQueue([]Track{
			tr("/a.mp3", "Alpha"),
			tr("/b.mp3", "Bravo"),
			tr("/c.mp3", "Charlie"),
		}, 0, true)

		if !q.RemoveFromQueue(remove) {
			t.Fatalf("RemoveFromQueue(%d) should succeed", remove)
		}
		if q.Len() != 2 {
			t.Errorf("after removing %d: Len() = %d, want 2", remove, q.Len())
		}
	}
}

func TestGoToNext_Advances(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 0, true)

	next := q.GoToNext()
	if next == nil || next.Path != "/b.mp3" {
		t.Errorf("GoToNext() = %v, want /b.mp3", next)
	}
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", q.CurrentIndex())
	}
}

func TestGoToNext_EndWithoutRepeat(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 1, true)

	if next := q.GoToNext(); next != nil {
		t.Errorf("GoToNext() at end = %v, want nil", next)
	}
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want unchanged", q.CurrentIndex())
	}
}

func TestGoToNext_RepeatAllWraps(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
	}, 0, true)
	q.ToggleRepeat() // off -> all

	if !q.HasNext() {
		t.Fatal("expected HasNext at start")
	}
	for q.HasNext() {
		if q.GoToNext() == nil {
			t.Fatal("GoToNext() returned nil before end of queue")
		}
	}
	// At the last index now; one more wraps instead of returning nil
	wrapped := q.GoToNext()
	if wrapped == nil || wrapped.Path != "/a.mp3" {
		t.Errorf("GoToNext() = %v, want wrap to /a.mp3", wrapped)
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
}

func TestGoToPrevious_RestartAfterThreshold(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 1, true)
	q.SetDuration(3 * time.Minute)
	q.SetTime(5 * time.Second)

	res := q.GoToPrevious()
	if !res.ShouldRestart {
		t.Error("ShouldRestart should be true past the 3s threshold")
	}
	if res.Track == nil || res.Track.Path != "/b.mp3" {
		t.Errorf("Track = %v, want current /b.mp3", res.Track)
	}
	if q.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, want unchanged 1", q.CurrentIndex())
	}
}

func TestGoToPrevious_MovesBack(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 1, true)
	q.SetTime(2 * time.Second)

	res := q.GoToPrevious()
	if res.ShouldRestart {
		t.Error("ShouldRestart should be false under the threshold")
	}
	if res.Track == nil || res.Track.Path != "/a.mp3" {
		t.Errorf("Track = %v, want /a.mp3", res.Track)
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
}

func TestGoToPrevious_AtStart(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)

	res := q.GoToPrevious()
	if res.Track != nil || res.ShouldRestart {
		t.Errorf("GoToPrevious() at start = %+v, want empty result", res)
	}
}

func TestGoToIndex(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 0, true)

	if got := q.GoToIndex(1); got == nil || got.Path != "/b.mp3" {
		t.Errorf("GoToIndex(1) = %v, want /b.mp3", got)
	}
	if got := q.GoToIndex(5); got != nil {
		t.Errorf("GoToIndex(5) = %v, want nil", got)
	}
	if got := q.GoToIndex(-1); got != nil {
		t.Errorf("GoToIndex(-1) = %v, want nil", got)
	}
}

func TestToggleShuffle_CurrentMovesToFront(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
		tr("/d.mp3", "Delta"),
	}, 2, true)

	if !q.ToggleShuffle() {
		t.Fatal("ToggleShuffle() should report shuffle on")
	}
	if q.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", q.CurrentIndex())
	}
	if got := q.Tracks()[0].Path; got != "/c.mp3" {
		t.Errorf("queue[0] = %s, want the playing track /c.mp3", got)
	}
	if q.Len() != 4 {
		t.Errorf("Len() = %d, want 4", q.Len())
	}
}

func TestToggleShuffle_RoundTripRestoresOrder(t *testing.T) {
	input := []Track{
		tr("/c.mp3", "Charlie"),
		tr("/a.mp3", "Alpha"),
		tr("/d.mp3", "Delta"),
		tr("/b.mp3", "Bravo"),
	}

	q := newTestQueue()
	q.SetQueue(input, 2, true) // sorted: a b c d, current = /c.mp3
	sorted := paths(q.Tracks())
	before := q.Current()

	q.ToggleShuffle()
	q.ToggleShuffle()

	got := paths(q.Tracks())
	for i := range sorted {
		if got[i] != sorted[i] {
			t.Fatalf("order after round-trip = %v, want %v", got, sorted)
		}
	}
	after := q.Current()
	if before == nil || after == nil || !samePath(before.Path, after.Path) {
		t.Errorf("current changed across round-trip: %v -> %v", before, after)
	}
	if q.CurrentIndex() != indexOfPath(q.Tracks(), before.Path) {
		t.Errorf("CurrentIndex() = %d, not pointing at current track", q.CurrentIndex())
	}
}

func TestToggleShuffle_OffAfterCurrentRemoved(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{
		tr("/a.mp3", "Alpha"),
		tr("/b.mp3", "Bravo"),
		tr("/c.mp3", "Charlie"),
	}, 1, true)

	q.ToggleShuffle()
	// Current (/b.mp3) sits at index 0 while shuffled; removing it
	// promotes the next shuffled track
	q.RemoveFromQueue(0)
	promoted := q.Current()
	q.ToggleShuffle()

	cur := q.Current()
	if promoted == nil || cur == nil || !samePath(promoted.Path, cur.Path) {
		t.Fatalf("current changed across shuffle off: %v -> %v", promoted, cur)
	}
	if q.CurrentIndex() != indexOfPath(q.Tracks(), cur.Path) {
		t.Errorf("CurrentIndex() = %d, not pointing at current track", q.CurrentIndex())
	}
}

func TestToggleRepeat_Cycles(t *testing.T) {
	q := newTestQueue()

	if got := q.ToggleRepeat(); got != RepeatAll {
		t.Errorf("first toggle = %v, want RepeatAll", got)
	}
	if got := q.ToggleRepeat(); got != RepeatOne {
		t.Errorf("second toggle = %v, want RepeatOne", got)
	}
	if got := q.ToggleRepeat(); got != RepeatOff {
		t.Errorf("third toggle = %v, want RepeatOff", got)
	}
}

func TestSetTime_RecomputesProgress(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)
	q.SetDuration(200 * time.Second)

	q.SetTime(50 * time.Second)
	if q.Progress() != 25 {
		t.Errorf("Progress() = %v, want 25", q.Progress())
	}

	// Time past the duration caps at 100
	q.SetTime(500 * time.Second)
	if q.Progress() != 100 {
		t.Errorf("Progress() = %v, want 100 (capped)", q.Progress())
	}
}

func TestSetDuration_RecomputesFromExistingTime(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)
	q.SetTime(30 * time.Second)

	q.SetDuration(120 * time.Second)

	if q.Progress() != 25 {
		t.Errorf("Progress() = %v, want 25", q.Progress())
	}
	if cur := q.Current(); cur == nil || cur.Duration != 120*time.Second {
		t.Errorf("Current().Duration = %v, want 2m", cur)
	}
}

func TestSetProgress_Clamps(t *testing.T) {
	q := newTestQueue()

	q.SetProgress(150)
	if q.Progress() != 100 {
		t.Errorf("Progress() = %v, want 100", q.Progress())
	}
	q.SetProgress(-10)
	if q.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", q.Progress())
	}
}

func TestVolume_ClampAndMuteIndependence(t *testing.T) {
	q := newTestQueue()

	q.SetVolume(150)
	if q.Volume() != 100 {
		t.Errorf("Volume() = %d, want 100 (clamped)", q.Volume())
	}

	q.SetVolume(0)
	q.ToggleMute()
	q.ToggleMute()
	if q.Volume() != 0 {
		t.Errorf("Volume() = %d, want 0 unaffected by mute toggles", q.Volume())
	}
	if q.Muted() {
		t.Error("Muted() should be false after double toggle")
	}
}

func TestSetVolume_PositiveClearsMute(t *testing.T) {
	q := newTestQueue()
	q.ToggleMute()

	q.SetVolume(40)
	if q.Muted() {
		t.Error("positive volume should clear mute")
	}

	q.ToggleMute()
	q.SetVolume(0)
	if !q.Muted() {
		t.Error("setting volume 0 should not clear mute")
	}
	if q.Volume() != 0 {
		t.Errorf("Volume() = %d, want 0", q.Volume())
	}
}

func TestError_ClearedOnTrackChange(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha"), tr("/b.mp3", "Bravo")}, 0, true)

	q.SetError("decode failed")
	if q.Error() != "decode failed" {
		t.Fatalf("Error() = %q", q.Error())
	}

	q.GoToNext()
	if q.Error() != "" {
		t.Errorf("Error() = %q, want cleared on track change", q.Error())
	}
}

func TestClearQueue(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)
	q.SetPlaying(true)
	q.SetVolume(30)
	q.ToggleRepeat()

	q.ClearQueue()

	if q.Len() != 0 || q.Current() != nil || q.Playing() {
		t.Error("ClearQueue should empty the queue and stop the transport")
	}
	// Modes and volume survive ClearQueue (unlike Reset)
	if q.Volume() != 30 {
		t.Errorf("Volume() = %d, want 30", q.Volume())
	}
	if q.Repeat() != RepeatAll {
		t.Errorf("Repeat() = %v, want RepeatAll", q.Repeat())
	}
}

func TestClearQueue_PreservesError(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)
	q.SetError("decoder exploded")

	q.ClearQueue()

	if q.Error() != "decoder exploded" {
		t.Errorf("Error() = %q, want preserved across ClearQueue", q.Error())
	}
	if q.Len() != 0 || q.Current() != nil {
		t.Error("ClearQueue should still empty the queue")
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	q := newTestQueue()
	q.SetQueue([]Track{tr("/a.mp3", "Alpha")}, 0, true)
	q.SetVolume(0)
	q.ToggleMute()
	q.ToggleShuffle()
	q.ToggleRepeat()
	q.SetError("boom")

	q.Reset()

	if q.Len() != 0 || q.Current() != nil {
		t.Error("Reset should clear the queue")
	}
	if q.Volume() != 70 || q.Muted() || q.Shuffle() || q.Repeat() != RepeatOff {
		t.Error("Reset should restore transport defaults")
	}
	if q.Error() != "" {
		t.Errorf("Error() = %q, want cleared", q.Error())
	}
}

func TestSetQueueLengthProperty(t *testing.T) {
	// queue length never exceeds input length; equal only without dupes/invalid
	clean := []Track{tr("/a.mp3", "A"), tr("/b.mp3", "B")}
	dirty := append([]Track{tr("/a.mp3", "dup"), tr("/x.txt", "bad")}, clean...)

	q := newTestQueue()
	q.SetQueue(clean, 0, true)
	if q.Len() != len(clean) {
		t.Errorf("clean input: Len() = %d, want %d", q.Len(), len(clean))
	}

	q.SetQueue(dirty, 0, true)
	if q.Len() >= len(dirty) {
		t.Errorf("dirty input: Len() = %d, want < %d", q.Len(), len(dirty))
	}
}
