// Package metadata parses the CSV sidecar tables that accompany an iCloud
// photo export ("Photo Details*.csv").
package metadata

// Column names defined by the export's table schema. Unknown columns are
// ignored; optional columns default when absent.
const (
	colName     = "imgName"
	colChecksum = "fileChecksum"
	colDate     = "originalCreationDate"
	colFavorite = "favorite"
	colHidden   = "hidden"
	colDeleted  = "deleted"
	colViews    = "viewCount"
	colImported = "importDate"
)

// Record is one row of a metadata table.
//
// Name is the filename as recorded by the export; it may not exactly match
// the on-disk name (see the match package). OriginalDate and ImportDate are
// kept as raw strings: resolution happens in the dates package so that a
// row with an unparsable date survives as a record instead of being dropped.
type Record struct {
	Name         string
	Checksum     string
	OriginalDate string
	Favorite     bool
	Hidden       bool
	Deleted      bool
	ViewCount    int
	ImportDate   string
}
