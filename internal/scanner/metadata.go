package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"

	"github.com/yosimar43/resona/internal/errmsg"
	"github.com/yosimar43/resona/internal/queue"
)

// readTrack builds a track from the file's embedded tags. Files without
// readable tags still yield a track: title and artist fall back to
// filename heuristics so the queue never sees an empty title.
func (s *Scanner) readTrack(path string) queue.Track {
	t := queue.Track{Path: path}

	f, err := os.Open(path)
	if err != nil {
		s.logger.Debug("cannot open file for tags", "path", path, "err", err)
		return fallbackTrack(t)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		s.logger.Debug(errmsg.FormatWith(errmsg.OpReadTags, path, err))
		return fallbackTrack(t)
	}

	t.Title = strings.TrimSpace(meta.Title())
	t.Artist = strings.TrimSpace(meta.Artist())
	t.Album = strings.TrimSpace(meta.Album())
	if pic := meta.Picture(); pic != nil {
		t.AlbumArt = pic.Data
	}
	return fallbackTrack(t)
}

// fallbackTrack fills missing title and artist from the filename.
func fallbackTrack(t queue.Track) queue.Track {
	if t.Title == "" {
		t.Title = titleFromFilename(t.Path)
	}
	if t.Artist == "" {
		if artist := artistFromFilename(t.Path); artist != "" {
			t.Artist = artist
		}
	}
	return t
}

// titleFromFilename derives a display title from the file name: the
// extension goes, then a leading track number ("01 - Song", "03. Song",
// "07_Song"), then any artist prefix separated by " - ".
func titleFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = stripTrackNumber(name)

	if _, title, ok := splitArtistTitle(name); ok {
		name = title
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return queue.UnknownTitle
	}
	return name
}

// artistFromFilename extracts the artist from "Artist - Title" style names.
// Returns "" when the name has no separator or the candidate looks like a
// stray track number.
func artistFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = stripTrackNumber(name)

	artist, _, ok := splitArtistTitle(name)
	if !ok {
		return ""
	}
	return artist
}

// stripTrackNumber removes a leading "NN - ", "NN. ", "NN_" or "NN " prefix.
func stripTrackNumber(name string) string {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 || i > 3 {
		return name
	}
	rest := name[i:]
	for _, sep := range []string{" - ", ". ", "- ", "._", "_", " ", "."} {
		if strings.HasPrefix(rest, sep) {
			return strings.TrimSpace(strings.TrimPrefix(rest, sep))
		}
	}
	return name
}

// splitArtistTitle splits "Artist - Title" on the first dash separator.
func splitArtistTitle(name string) (artist, title string, ok bool) {
	for _, sep := range []string{" - ", " – ", " _ "} {
		if before, after, found := strings.Cut(name, sep); found {
			artist = strings.TrimSpace(before)
			title = strings.TrimSpace(after)
			if artist == "" || title == "" || allDigits(artist) {
				return "", "", false
			}
			return artist, title, true
		}
	}
	return "", "", false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
