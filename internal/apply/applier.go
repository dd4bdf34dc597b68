// Package apply is the single "set file times" capability: it stamps a
// resolved capture instant onto a file's modification and access times and,
// where the platform exposes one, its creation time.
package apply

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
)

// Setter applies a capture instant to one file. Implementations must treat
// every failure as file-local: the caller records an error outcome and
// moves on, never aborting the batch.
type Setter interface {
	SetTimes(path string, ts time.Time) error
}

// New returns the real Setter for fs. Modification and access time are set
// to the same instant via Chtimes; on macOS against the real filesystem the
// creation time is set too when the SetFile helper is available.
func New(fs afero.Fs) Setter {
	return &fsSetter{fs: fs, birth: newBirthTool(fs)}
}

// Nop returns the dry-run Setter: it performs no mutation and always
// succeeds, so dry-run classifies outcomes exactly like a real run.
func Nop() Setter { return nopSetter{} }

type fsSetter struct {
	fs    afero.Fs
	birth *birthTool // nil when creation time is not settable
}

func (s *fsSetter) SetTimes(path string, ts time.Time) error {
	if _, err := s.fs.Stat(path); err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := s.fs.Chtimes(path, ts, ts); err != nil {
		return fmt.Errorf("set times on %s: %w", path, err)
	}
	if s.birth != nil {
		if err := s.birth.set(path, ts); err != nil {
			return fmt.Errorf("set creation time on %s: %w", path, err)
		}
	}
	return nil
}

type nopSetter struct{}

func (nopSetter) SetTimes(string, time.Time) error { return nil }
