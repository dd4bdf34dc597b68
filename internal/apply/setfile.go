package apply

// Creation time has no portable syscall. On macOS the Developer Tools ship
// SetFile, which can set it; everywhere else (and on abstract filesystems)
// we silently settle for modification+access time.

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// newBirthTool returns the darwin creation-time helper, or nil when the
// platform, filesystem, or PATH cannot support it.
func newBirthTool(fs afero.Fs) *birthTool {
	if runtime.GOOS != "darwin" {
		return nil
	}
	if _, ok := fs.(*afero.OsFs); !ok {
		return nil
	}
	bin, err := exec.LookPath("SetFile")
	if err != nil {
		return nil
	}
	return &birthTool{bin: bin}
}

type birthTool struct {
	bin string
}

// set invokes SetFile -d with the instant formatted in UTC, matching how
// the modification time was interpreted.
func (b *birthTool) set(path string, ts time.Time) error {
	cmd := exec.Command(b.bin, "-d", ts.UTC().Format("01/02/2006 15:04:05"), path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("SetFile: %s", msg)
		}
		return fmt.Errorf("SetFile: %w", err)
	}
	return nil
}
