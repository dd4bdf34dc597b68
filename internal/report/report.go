// Package report writes the JSON run reports: overall statistics,
// duplicate groups, and the favorite/deleted file lists.
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/photofix/internal/summary"
)

const (
	statisticsFile = "photo_statistics.json"
	duplicatesFile = "duplicates.json"
	favoritesFile  = "favorites.json"
	deletedFile    = "deleted_files.json"
)

type statistics struct {
	RunID           string         `json:"run_id"`
	GeneratedAt     string         `json:"generated_at"`
	Processed       int            `json:"processed"`
	Fixed           int            `json:"fixed"`
	NoMatch         int            `json:"no_match"`
	UnparsableDates int            `json:"unparsable_dates"`
	DuplicateRefs   int            `json:"duplicate_refs"`
	Errors          int            `json:"errors"`
	ParseErrors     int            `json:"parse_errors"`
	Favorites       int            `json:"favorites"`
	Hidden          int            `json:"hidden"`
	Deleted         int            `json:"deleted"`
	FileTypes       map[string]int `json:"file_types"`
	Years           map[string]int `json:"years"`
	TotalSizeBytes  int64          `json:"total_size_bytes"`
	FailedFolders   []string       `json:"failed_folders,omitempty"`
}

// Write emits the reports for one run into dir, creating it if needed.
// Duplicate and flag reports are written only when they have content;
// the statistics report is always written.
func Write(fs afero.Fs, dir string, run *summary.RunTotal) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	total := run.Combined()

	stats := statistics{
		RunID:           run.RunID.String(),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Processed:       total.Processed,
		Fixed:           total.Fixed,
		NoMatch:         total.NoMatch,
		UnparsableDates: total.UnparsableDates,
		DuplicateRefs:   total.DuplicateRefs,
		Errors:          total.Errors,
		ParseErrors:     total.ParseErrors,
		Favorites:       len(total.Favorites),
		Hidden:          len(total.Hidden),
		Deleted:         len(total.Deleted),
		FileTypes:       total.ExtCounts,
		Years:           make(map[string]int, len(total.YearCounts)),
		TotalSizeBytes:  total.TotalBytes,
		FailedFolders:   run.FailedFolders,
	}
	for year, n := range total.YearCounts {
		stats.Years[fmt.Sprintf("%d", year)] = n
	}
	if err := writeJSON(fs, filepath.Join(dir, statisticsFile), stats); err != nil {
		return err
	}

	if groups := total.DuplicateGroups(); len(groups) > 0 {
		if err := writeJSON(fs, filepath.Join(dir, duplicatesFile), groups); err != nil {
			return err
		}
	}
	if len(total.Favorites) > 0 {
		list := sortedFlags(total.Favorites)
		if err := writeJSON(fs, filepath.Join(dir, favoritesFile), list); err != nil {
			return err
		}
	}
	if len(total.Deleted) > 0 {
		list := sortedFlags(total.Deleted)
		if err := writeJSON(fs, filepath.Join(dir, deletedFile), list); err != nil {
			return err
		}
	}
	return nil
}

func sortedFlags(in []summary.FlaggedFile) []summary.FlaggedFile {
	out := make([]summary.FlaggedFile, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func writeJSON(fs afero.Fs, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
