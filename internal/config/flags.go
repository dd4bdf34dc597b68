package config

// This file implements CLI flag parsing and help text.
// Boolean overrides (e.g. --no-color) are applied after Parse so Config
// defaults hold unless the flag is set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing path).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("photofix", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var ov overrides

	fs.BoolVar(&cfg.SingleDir, "single-dir", false, "Treat <path> as one export folder")
	fs.BoolVar(&cfg.SingleDir, "s", false, "Same as --single-dir")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; no filesystem mutation")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&cfg.OrganizeDir, "organize", "", "Copy media into <dir>/YYYY/MM by resolved timestamp")
	fs.StringVar(&cfg.ReportsDir, "reports", "", "Write JSON reports into <dir>")
	fs.BoolVar(&cfg.ExifFallback, "exif-fallback", false, "Use EXIF capture time when a row's date is unresolvable")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML settings file (table base, folder pattern, timezone, aliases)")

	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Validate the export layout and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")

	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if ov.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "photofix v"+version)
		os.Exit(0)
	}
	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}

	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one export path")
	}
	cfg.Path = NormalizeDirArg(args[0])
	return nil
}

// overrides holds boolean flags that are applied after Parse.
// These either adjust a default (noColor -> ColorNever) or trigger exit.
type overrides struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "PhotoFix v" + version + " - iCloud photo export timestamp repair"},
		{"", ""},
		{"  photofix [OPTIONS] <path>", ""},
		{"", ""},
		{"Selection", ""},
		{"  -s, --single-dir", "Treat <path> as one export folder"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview only; no filesystem mutation"},
		{"  --organize <dir>", "Copy media into <dir>/YYYY/MM by resolved timestamp"},
		{"  --reports <dir>", "Write photo_statistics/duplicates/favorites/deleted JSON"},
		{"  --exif-fallback", "Use EXIF capture time when a row's date is unresolvable"},
		{"  --config <file>", "YAML settings (table base, folder pattern, timezone)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Validate export layout (folders, tables) and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
