// Package check implements the --check flow: validate the export layout
// without touching any file.
package check

import (
	"encoding/csv"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"

	"github.com/backmassage/photofix/internal/config"
	"github.com/backmassage/photofix/internal/metadata"
	"github.com/backmassage/photofix/internal/pipeline"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck walks the export layout and reports what a run would see:
// matching folders, their tables, and per-table row counts. Returns false
// only when the layout is unusable (nothing to process).
func RunCheck(cfg *config.Config, fs afero.Fs, log Logger) bool {
	log.Info("=== Export Layout Check ===")

	var folders []string
	if cfg.SingleDir {
		folders = []string{cfg.Path}
	} else {
		found, err := pipeline.FindExportFolders(fs, cfg.Path, cfg.Pattern)
		if err != nil {
			log.Error("Cannot scan %s: %v", cfg.Path, err)
			return false
		}
		folders = found
	}
	if len(folders) == 0 {
		log.Error("No folders matching %s under %s", cfg.FolderPattern, cfg.Path)
		return false
	}
	log.Success("Export folders: %d", len(folders))

	usable := 0
	for _, folder := range folders {
		if checkFolder(cfg, fs, log, folder) {
			usable++
		}
	}
	checkBirthTimeTool(log)

	if usable == 0 {
		log.Error("No usable folders")
		return false
	}
	log.Success("Usable folders: %d of %d", usable, len(folders))
	return true
}

func checkFolder(cfg *config.Config, fs afero.Fs, log Logger, folder string) bool {
	name := filepath.Base(folder)
	tables, err := pipeline.FindTables(fs, folder, cfg.TableBase)
	if err != nil {
		log.Error("%s: %v", name, err)
		return false
	}
	if len(tables) == 0 {
		log.Warn("%s: no %q tables", name, cfg.TableBase)
		return false
	}

	log.Info("%s: %d table(s)", name, len(tables))
	for _, table := range tables {
		rows, bad := countRows(fs, table)
		if bad < 0 {
			log.Warn("  %s: unreadable", filepath.Base(table))
			continue
		}
		if bad > 0 {
			log.Warn("  %s: %d row(s), %d unreadable", filepath.Base(table), rows, bad)
		} else {
			log.Info("  %s: %d row(s)", filepath.Base(table), rows)
		}
	}
	return true
}

// countRows reads one table end to end, returning the usable row count and
// the number of rows a run would skip. bad is -1 when the table itself
// cannot be opened or has no usable header.
func countRows(fs afero.Fs, table string) (rows, bad int) {
	f, err := fs.Open(table)
	if err != nil {
		return 0, -1
	}
	defer f.Close()

	parser, err := metadata.NewParser(f)
	if err != nil {
		return 0, -1
	}
	for {
		_, err := parser.Next()
		if err == io.EOF {
			return rows, bad
		}
		var parseErr *csv.ParseError
		if errors.Is(err, metadata.ErrMissingName) || errors.As(err, &parseErr) {
			bad++
			continue
		}
		if err != nil {
			return rows, -1
		}
		rows++
	}
}

// checkBirthTimeTool reports whether creation times can be set on this
// host. Modification times always work; SetFile is a macOS extra.
func checkBirthTimeTool(log Logger) {
	if runtime.GOOS != "darwin" {
		log.Info("Creation times: modification time only (not macOS)")
		return
	}
	if _, err := exec.LookPath("SetFile"); err != nil {
		log.Warn("SetFile not found; creation times will not be set")
		return
	}
	log.Success("SetFile available; creation times will be set")
}
