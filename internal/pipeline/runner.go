package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/photofix/internal/apply"
	"github.com/backmassage/photofix/internal/config"
	"github.com/backmassage/photofix/internal/dates"
	"github.com/backmassage/photofix/internal/display"
	"github.com/backmassage/photofix/internal/match"
	"github.com/backmassage/photofix/internal/metadata"
	"github.com/backmassage/photofix/internal/organize"
	"github.com/backmassage/photofix/internal/probe"
	"github.com/backmassage/photofix/internal/report"
	"github.com/backmassage/photofix/internal/summary"
)

// Logger is the logging surface the pipeline needs. *logging.Logger
// satisfies it; tests substitute a silent implementation.
type Logger interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(verbose bool, format string, args ...interface{})
}

// Run is the top-level entry point. It discovers the export folders,
// processes each one sequentially, then runs the optional organize and
// report stages. The returned error covers setup failures only, including
// a run where every folder failed; per-record problems and individual
// folder failures are logged, counted, and survived.
func Run(cfg *config.Config, fs afero.Fs, log Logger) (*summary.RunTotal, error) {
	var folders []string
	if cfg.SingleDir {
		folders = []string{cfg.Path}
	} else {
		found, err := FindExportFolders(fs, cfg.Path, cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", cfg.Path, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no export folders matching %s under %s", cfg.FolderPattern, cfg.Path)
		}
		folders = found
	}

	run := summary.NewRunTotal()
	log.Info("Found %d export folder(s)", len(folders))

	setter := apply.New(fs)
	if cfg.DryRun {
		setter = apply.Nop()
	}

	for _, folder := range folders {
		sum, err := processFolder(cfg, fs, log, setter, folder)
		if err != nil {
			log.Error("Folder %s: %v", filepath.Base(folder), err)
			run.Fail(folder)
			continue
		}
		run.Add(sum)
		logFolderSummary(log, sum)
	}

	// Every folder failing is a setup problem, not a per-record one: the
	// run touched nothing and must exit nonzero.
	if len(run.Folders) == 0 {
		return nil, fmt.Errorf("no usable export folder under %s", cfg.Path)
	}

	total := run.Combined()

	if cfg.OrganizeDir != "" {
		copied := organize.Run(fs, cfg.OrganizeDir, total.Outcomes, cfg.DryRun, cfg.Verbose, log)
		if cfg.DryRun {
			log.Info("[DRY] Would organize %d file(s) into %s", copied, cfg.OrganizeDir)
		} else {
			log.Info("Organized %d file(s) into %s", copied, cfg.OrganizeDir)
		}
	}
	if cfg.ReportsDir != "" {
		if cfg.DryRun {
			log.Info("[DRY] Would write reports to %s", cfg.ReportsDir)
		} else if err := report.Write(fs, cfg.ReportsDir, run); err != nil {
			log.Error("Writing reports: %v", err)
		} else {
			log.Info("Reports written to %s", cfg.ReportsDir)
		}
	}

	logRunSummary(cfg, log, run, total)
	return run, nil
}

// processFolder handles one export folder: locate tables, index the media
// directory, and consume every record of every table with one shared
// matcher so duplicate references across continuation tables are caught.
func processFolder(cfg *config.Config, fs afero.Fs, log Logger, setter apply.Setter, folder string) (*summary.Summary, error) {
	tables, err := FindTables(fs, folder, cfg.TableBase)
	if err != nil {
		return nil, fmt.Errorf("locating tables: %w", err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no %q tables found", cfg.TableBase)
	}

	mediaDir := filepath.Dir(tables[0])
	names, err := mediaNames(fs, mediaDir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", mediaDir, err)
	}

	log.Info("Processing %s (%d tables, %d files)", filepath.Base(folder), len(tables), len(names))

	matcher := match.New(names, cfg.ExtensionAliases)
	sum := summary.New(filepath.Base(folder))

	for _, table := range tables {
		if err := processTable(cfg, fs, log, setter, matcher, sum, table, mediaDir); err != nil {
			log.Warn("Table %s: %v", filepath.Base(table), err)
		}
	}
	return sum, nil
}

func processTable(
	cfg *config.Config,
	fs afero.Fs,
	log Logger,
	setter apply.Setter,
	matcher *match.Matcher,
	sum *summary.Summary,
	table, mediaDir string,
) error {
	f, err := fs.Open(table)
	if err != nil {
		return err
	}
	defer f.Close()

	parser, err := metadata.NewParser(f)
	if err != nil {
		return err
	}

	for {
		rec, err := parser.Next()
		if err == io.EOF {
			return nil
		}
		var parseErr *csv.ParseError
		if errors.Is(err, metadata.ErrMissingName) || errors.As(err, &parseErr) {
			sum.RecordParseError()
			log.Debug(cfg.Verbose, "Skipping row: %v", err)
			continue
		}
		if err != nil {
			return err
		}
		processRecord(cfg, fs, log, setter, matcher, sum, rec, mediaDir)
	}
}

// processRecord resolves one record: match → duplicate check → stat →
// date resolution → timestamp apply. Exactly one outcome is recorded.
func processRecord(
	cfg *config.Config,
	fs afero.Fs,
	log Logger,
	setter apply.Setter,
	matcher *match.Matcher,
	sum *summary.Summary,
	rec metadata.Record,
	mediaDir string,
) {
	name, verdict := matcher.Match(rec.Name)
	if verdict != match.Matched {
		if verdict == match.Ambiguous {
			log.Warn("Ambiguous name %q, skipping", rec.Name)
		} else {
			log.Debug(cfg.Verbose, "No file for %q", rec.Name)
		}
		sum.Record(summary.Outcome{Name: rec.Name, Checksum: rec.Checksum, Status: summary.StatusNoMatch})
		return
	}

	path := filepath.Join(mediaDir, name)

	if matcher.Claimed(name) {
		log.Debug(cfg.Verbose, "Duplicate reference to %s", name)
		// The row still carries flags for an existing file.
		sum.Flag(path, rec.Favorite, rec.Hidden, rec.Deleted, time.Time{})
		sum.Record(summary.Outcome{Path: path, Name: rec.Name, Checksum: rec.Checksum, Status: summary.StatusDuplicate})
		return
	}
	matcher.Claim(name)

	var size int64
	if info, err := fs.Stat(path); err == nil {
		size = info.Size()
	}

	ts, ok := dates.Resolve(rec.OriginalDate, cfg.Location)
	if !ok && cfg.ExifFallback {
		if exifTS, err := probe.CaptureTime(fs, path, cfg.Location); err == nil {
			ts, ok = exifTS, true
			log.Debug(cfg.Verbose, "EXIF capture time for %s", name)
		}
	}

	sum.Flag(path, rec.Favorite, rec.Hidden, rec.Deleted, ts)

	if !ok {
		log.Warn("Unparsable date %q for %s", rec.OriginalDate, name)
		sum.Record(summary.Outcome{Path: path, Name: rec.Name, Checksum: rec.Checksum,
			Status: summary.StatusUnparsableDate, Size: size})
		return
	}

	if err := setter.SetTimes(path, ts); err != nil {
		log.Error("Setting times on %s: %v", name, err)
		sum.Record(summary.Outcome{Path: path, Name: rec.Name, Checksum: rec.Checksum,
			Status: summary.StatusError, Detail: err.Error(), Size: size})
		return
	}

	if cfg.DryRun {
		log.Debug(cfg.Verbose, "[DRY] Would set %s to %s", name, ts.Format(dates.Layout))
	} else {
		log.Debug(cfg.Verbose, "Set %s to %s", name, ts.Format(dates.Layout))
	}
	sum.Record(summary.Outcome{Path: path, Name: rec.Name, Checksum: rec.Checksum,
		Status: summary.StatusFixed, Timestamp: ts, Size: size})
}

func logFolderSummary(log Logger, sum *summary.Summary) {
	log.Info("  %d processed: %d fixed, %d no match, %d unparsable dates, %d duplicate refs, %d errors",
		sum.Processed, sum.Fixed, sum.NoMatch, sum.UnparsableDates, sum.DuplicateRefs, sum.Errors)
	if sum.ParseErrors > 0 {
		log.Warn("  %d table row(s) skipped", sum.ParseErrors)
	}
}

func logRunSummary(cfg *config.Config, log Logger, run *summary.RunTotal, total *summary.Summary) {
	log.Info("==============================")
	verb := "fixed"
	if cfg.DryRun {
		verb = "would fix"
	}
	log.Success("Done: %s %d of %d file reference(s) across %d folder(s), %s of media",
		verb, total.Fixed, total.Processed, len(run.Folders), display.FormatBytes(total.TotalBytes))
	if groups := total.DuplicateGroups(); len(groups) > 0 {
		log.Info("Duplicate groups: %d", len(groups))
	}
	if total.Errors > 0 || total.ParseErrors > 0 {
		log.Warn("Problems: %d apply error(s), %d unreadable row(s)", total.Errors, total.ParseErrors)
	}
	if len(run.FailedFolders) > 0 {
		log.Warn("Failed folders: %d", len(run.FailedFolders))
	}
}
