// Package config holds runtime configuration: defaults, CLI flag parsing,
// the optional YAML settings file, and validation.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML settings file ([LoadSettings]) and CLI flags
// ([ParseFlags]), then passed (by pointer) to packages that need it.
type Config struct {
	// Path (set from the positional arg): export root, or a single export
	// folder when SingleDir is set.
	Path      string
	SingleDir bool

	// Behavior flags.
	DryRun       bool
	OrganizeDir  string // Copy media into <dir>/YYYY/MM when non-empty.
	ReportsDir   string // Write JSON reports into <dir> when non-empty.
	ExifFallback bool   // Read EXIF capture time for rows with unresolvable dates.

	// Export layout settings (overridable via the settings file).
	TableBase        string     // Default: "Photo Details".
	FolderPattern    string     // Default: `^iCloudPhotosPart\d+of\d+$`.
	Timezone         string     // Reference timezone name. Default: "UTC".
	ExtensionAliases [][]string // Extension classes treated as equivalent when matching.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Validate export layout and exit.
	ConfigFile string    // Optional YAML settings file path.

	// Derived by Validate.
	Pattern  *regexp.Regexp
	Location *time.Location
}

// DefaultConfig returns a Config with the defaults matching the iCloud
// export layout. Used as the base before settings-file and CLI overrides.
func DefaultConfig() Config {
	return Config{
		TableBase:     "Photo Details",
		FolderPattern: `^iCloudPhotosPart\d+of\d+$`,
		Timezone:      "UTC",
		ExtensionAliases: [][]string{
			{"jpg", "jpeg"},
			{"tif", "tiff"},
			{"heic", "heif"},
		},
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and layout fields and resolves the derived Pattern
// and Location. Alias classes are normalized in place (lowercase, no dot).
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.TableBase) == "" {
		return errors.New("table base name must not be empty")
	}

	re, err := regexp.Compile(c.FolderPattern)
	if err != nil {
		return fmt.Errorf("invalid folder pattern %q: %w", c.FolderPattern, err)
	}
	c.Pattern = re

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("unknown reference timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	for i, class := range c.ExtensionAliases {
		if len(class) < 2 {
			return fmt.Errorf("extension alias class %d needs at least two entries", i+1)
		}
		for j, ext := range class {
			c.ExtensionAliases[i][j] = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		}
	}

	if c.Path == "" {
		return errors.New("need exactly one export path")
	}
	return nil
}
