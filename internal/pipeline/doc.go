// Package pipeline orchestrates export-folder discovery, per-record
// processing, and run summary reporting.
//
// A run walks each export folder, reads its detail tables, matches every
// declared name against the files on disk, resolves the original capture
// date, and applies it as the file's timestamp. Records are processed
// strictly in table order; one bad record or one broken folder never stops
// the rest of the run.
package pipeline
