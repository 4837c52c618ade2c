// Package ledger persists the top five scores as a small JSON file:
//
//	[{"score": 500}, {"score": 400}]
//
// The file is rewritten wholesale on every record. A missing or
// unreadable file is an empty ledger, never an error for the reader.
package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// MaxEntries is the number of scores kept.
const MaxEntries = 5

// Entry is one persisted score.
type Entry struct {
	Score int `json:"score"`
}

// Ledger loads and records top scores.
type Ledger interface {
	Load() []Entry
	Record(score int) error
}

// File is a Ledger backed by a JSON file.
type File struct {
	path   string
	logger *log.Logger
}

var _ Ledger = (*File)(nil)

// NewFile creates a file ledger. A leading ~ in path is expanded.
// The file is not touched until Load or Record is called.
func NewFile(path string, logger *log.Logger) (*File, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &File{path: expanded, logger: logger}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Load returns at most MaxEntries entries, highest score first.
// Read or parse failures yield an empty ledger.
func (f *File) Load() []Entry {
	entries, err := f.read()
	if err != nil {
		f.logger.Debug("score ledger unreadable, treating as empty", "path", f.path, "error", err)
		return []Entry{}
	}
	return top(entries)
}

// Record adds a score, keeps the best MaxEntries and rewrites the file.
func (f *File) Record(score int) error {
	entries := append(f.Load(), Entry{Score: score})
	entries = top(entries)

	if err := f.write(entries); err != nil {
		return err
	}

	f.logger.Debug("score recorded", "score", score, "entries", len(entries))
	return nil
}

func (f *File) read() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ledger: cannot parse %s: %w", f.path, err)
	}
	return entries, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (f *File) write(entries []Entry) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ledger: cannot create directory %s: %w", dir, err)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("ledger: cannot encode scores: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scoreboard-*.json")
	if err != nil {
		return fmt.Errorf("ledger: cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("ledger: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("ledger: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("ledger: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// top sorts entries by score descending and truncates to MaxEntries.
// Equal scores keep their existing order.
func top(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > MaxEntries {
		sorted = sorted[:MaxEntries]
	}
	return sorted
}

// Scores returns the score values of entries.
func Scores(entries []Entry) []int {
	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	return scores
}
