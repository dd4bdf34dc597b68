// Package summary accumulates per-file outcomes into per-folder summaries
// and a whole-run total. The driving goroutine is the only writer; nothing
// here needs locking, and a Summary is never mutated after its folder
// completes.
package summary

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Status classifies the outcome of processing one record.
type Status string

const (
	StatusFixed          Status = "fixed"
	StatusNoMatch        Status = "skipped-no-match"
	StatusUnparsableDate Status = "skipped-unparsable-date"
	StatusDuplicate      Status = "duplicate"
	StatusError          Status = "error"
)

// Outcome is the result of processing one matched (or unmatched) record.
type Outcome struct {
	Path     string // resolved filesystem location; empty when no file matched
	Name     string // the record's declared name
	Checksum string

	Status Status

	// Timestamp is the applied capture instant; set only when Status is
	// StatusFixed.
	Timestamp time.Time

	// Detail is the human-readable failure description; set only when
	// Status is StatusError.
	Detail string

	Size int64
}

// FlaggedFile is one entry of the favorite/hidden/deleted lists.
type FlaggedFile struct {
	Path      string `json:"path"`
	Timestamp string `json:"timestamp,omitempty"` // RFC3339 UTC, when resolved
}

// Summary aggregates one export folder.
type Summary struct {
	Folder string

	Processed       int // records consumed from the folder's tables
	Fixed           int
	NoMatch         int
	UnparsableDates int
	DuplicateRefs   int
	Errors          int
	ParseErrors     int // rows skipped before producing a record

	Favorites []FlaggedFile
	Hidden    []FlaggedFile
	Deleted   []FlaggedFile

	Outcomes []Outcome

	ExtCounts  map[string]int // lowercase extension → count
	YearCounts map[int]int    // resolved capture year → count
	TotalBytes int64

	groups map[string][]string // checksum → distinct matched paths
}

// New returns an empty Summary for one export folder.
func New(folder string) *Summary {
	return &Summary{
		Folder:     folder,
		ExtCounts:  make(map[string]int),
		YearCounts: make(map[int]int),
		groups:     make(map[string][]string),
	}
}

// Record consumes one outcome. Once recorded an outcome is never retracted.
func (s *Summary) Record(o Outcome) {
	s.Processed++
	switch o.Status {
	case StatusFixed:
		s.Fixed++
	case StatusNoMatch:
		s.NoMatch++
	case StatusUnparsableDate:
		s.UnparsableDates++
	case StatusDuplicate:
		s.DuplicateRefs++
	case StatusError:
		s.Errors++
	}

	// Tally file types for existing files only; a no-match row has no file.
	if o.Path != "" {
		if ext := strings.ToLower(filepath.Ext(o.Name)); ext != "" {
			s.ExtCounts[ext]++
		}
	}
	if !o.Timestamp.IsZero() {
		s.YearCounts[o.Timestamp.UTC().Year()]++
	}
	s.TotalBytes += o.Size

	if o.Checksum != "" && o.Path != "" {
		s.addToGroup(o.Checksum, o.Path)
	}
	s.Outcomes = append(s.Outcomes, o)
}

// Flag records the per-record favorite/hidden/deleted markers. Flags are
// independent of the timestamp outcome: a file can be an apply error and
// still appear in the favorites list. Each list holds a path at most once,
// so a second table row for the same file never doubles an entry.
func (s *Summary) Flag(path string, favorite, hidden, deleted bool, ts time.Time) {
	entry := FlaggedFile{Path: path}
	if !ts.IsZero() {
		entry.Timestamp = ts.UTC().Format(time.RFC3339)
	}
	if favorite {
		s.Favorites = appendFlag(s.Favorites, entry)
	}
	if hidden {
		s.Hidden = appendFlag(s.Hidden, entry)
	}
	if deleted {
		s.Deleted = appendFlag(s.Deleted, entry)
	}
}

func appendFlag(list []FlaggedFile, entry FlaggedFile) []FlaggedFile {
	for _, f := range list {
		if f.Path == entry.Path {
			return list
		}
	}
	return append(list, entry)
}

// RecordParseError counts a table row that never became a record.
func (s *Summary) RecordParseError() { s.ParseErrors++ }

// addToGroup appends path to the checksum's group unless already present
// (a duplicate reference to the same file must not fabricate a group).
func (s *Summary) addToGroup(checksum, path string) {
	for _, p := range s.groups[checksum] {
		if p == path {
			return
		}
	}
	s.groups[checksum] = append(s.groups[checksum], path)
}

// DuplicateGroups returns only the checksums with at least two distinct
// paths, each path list sorted for stable report output.
func (s *Summary) DuplicateGroups() map[string][]string {
	out := make(map[string][]string)
	for sum, paths := range s.groups {
		if len(paths) < 2 {
			continue
		}
		sorted := make([]string, len(paths))
		copy(sorted, paths)
		sort.Strings(sorted)
		out[sum] = sorted
	}
	return out
}
