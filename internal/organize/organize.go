// Package organize copies files with a resolved capture time into a
// year/month directory layout.
package organize

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/backmassage/photofix/internal/summary"
)

// Logger is the subset of the application logger organize needs.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Debug(verbose bool, format string, args ...interface{})
}

// Run copies every outcome carrying a resolved timestamp into
// destDir/YYYY/MM/<name>. Copy failures are logged and skipped; the run
// never aborts over a single file. Returns the number of files copied.
func Run(fs afero.Fs, destDir string, outcomes []summary.Outcome, dryRun, verbose bool, log Logger) int {
	copied := 0
	for _, o := range outcomes {
		if o.Timestamp.IsZero() || o.Path == "" {
			continue
		}
		ts := o.Timestamp.UTC()
		subdir := filepath.Join(destDir, fmt.Sprintf("%04d", ts.Year()), fmt.Sprintf("%02d", ts.Month()))
		dest := filepath.Join(subdir, filepath.Base(o.Path))

		if dryRun {
			log.Info("[DRY] Would copy %s -> %s", o.Path, dest)
			copied++
			continue
		}
		if err := copyFile(fs, o.Path, dest, subdir); err != nil {
			log.Warn("Organize: %v", err)
			continue
		}
		if err := fs.Chtimes(dest, ts, ts); err != nil {
			log.Warn("Organize: setting times on %s: %v", dest, err)
		}
		log.Debug(verbose, "Copied %s -> %s", o.Path, dest)
		copied++
	}
	return copied
}

func copyFile(fs afero.Fs, src, dest, destDir string) error {
	if err := fs.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := fs.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
