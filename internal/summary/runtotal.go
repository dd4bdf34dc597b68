package summary

import "github.com/google/uuid"

// RunTotal collects folder summaries for one invocation.
type RunTotal struct {
	RunID         uuid.UUID
	Folders       []*Summary
	FailedFolders []string // folders whose tables could not be read at all
}

// NewRunTotal allocates a RunTotal with a fresh run id.
func NewRunTotal() *RunTotal {
	return &RunTotal{RunID: uuid.New()}
}

// Add appends one completed folder summary.
func (r *RunTotal) Add(s *Summary) { r.Folders = append(r.Folders, s) }

// Fail records a folder that produced no summary.
func (r *RunTotal) Fail(folder string) {
	r.FailedFolders = append(r.FailedFolders, folder)
}

// Combined flattens every folder summary into one. The combined summary
// has no Folder name and carries merged duplicate groups, so reports can
// treat a multi-folder run like a single large folder.
func (r *RunTotal) Combined() *Summary {
	total := New("")
	for _, s := range r.Folders {
		total.Processed += s.Processed
		total.Fixed += s.Fixed
		total.NoMatch += s.NoMatch
		total.UnparsableDates += s.UnparsableDates
		total.DuplicateRefs += s.DuplicateRefs
		total.Errors += s.Errors
		total.ParseErrors += s.ParseErrors
		total.TotalBytes += s.TotalBytes

		total.Favorites = append(total.Favorites, s.Favorites...)
		total.Hidden = append(total.Hidden, s.Hidden...)
		total.Deleted = append(total.Deleted, s.Deleted...)
		total.Outcomes = append(total.Outcomes, s.Outcomes...)

		for ext, n := range s.ExtCounts {
			total.ExtCounts[ext] += n
		}
		for year, n := range s.YearCounts {
			total.YearCounts[year] += n
		}
		for sum, paths := range s.groups {
			for _, p := range paths {
				total.addToGroup(sum, p)
			}
		}
	}
	return total
}
