// Package scanner discovers audio files under a folder and extracts their
// metadata into queue tracks. It is the file-scanning collaborator of the
// playback engine: the queue itself never reads the filesystem.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yosimar43/resona/internal/queue"
)

const (
	// maxScanDepth limits directory recursion.
	maxScanDepth = 10
	// maxFilesPerScan caps how many audio files a single scan may collect.
	maxFilesPerScan = 10000

	progressEvery = 50
)

// ErrScanLimit is returned when a scan hits maxFilesPerScan. The tracks
// collected up to that point are still returned.
var ErrScanLimit = errors.New("scan file limit exceeded")

// Progress reports scan advancement to an optional callback.
type Progress struct {
	Found int    // audio files collected so far
	Path  string // last file seen
}

// Scanner walks music folders and produces playable tracks.
type Scanner struct {
	logger *log.Logger
}

// New creates a scanner.
func New(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{logger: logger}
}

// Scan walks root and returns a track for every supported audio file found.
// Individual unreadable files are skipped with a log, never an error;
// symlinks are not followed and recursion stops at maxScanDepth levels.
func (s *Scanner) Scan(root string, progress func(Progress)) ([]queue.Track, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: not a directory", root)
	}

	var tracks []queue.Track
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Keep scanning the rest of the tree
			s.logger.Debug("skipping unreadable entry", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			if depth(root, path) > maxScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !queue.IsSupportedPath(path) {
			return nil
		}
		if len(tracks) >= maxFilesPerScan {
			return ErrScanLimit
		}

		tracks = append(tracks, s.readTrack(path))
		if progress != nil && len(tracks)%progressEvery == 0 {
			progress(Progress{Found: len(tracks), Path: path})
		}
		return nil
	})

	if walkErr != nil {
		if errors.Is(walkErr, ErrScanLimit) {
			s.logger.Warn("scan stopped at file limit", "limit", maxFilesPerScan, "root", root)
			return tracks, ErrScanLimit
		}
		return tracks, walkErr
	}

	s.logger.Info("scan completed", "root", root, "tracks", len(tracks))
	return tracks, nil
}

// depth returns how many directory levels separate path from root.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
