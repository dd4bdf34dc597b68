// Command photofix restores the original capture timestamps of an iCloud
// photo export from its CSV detail tables. It parses flags, validates
// config and paths, and either checks the export layout (--check) or runs
// the fixing pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/backmassage/photofix/internal/check"
	"github.com/backmassage/photofix/internal/config"
	"github.com/backmassage/photofix/internal/display"
	"github.com/backmassage/photofix/internal/logging"
	"github.com/backmassage/photofix/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

// run keeps the exit status in one place: 1 for setup failures, 0 once
// the pipeline starts, whatever it encounters per record.
func run() int {
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "photofix: %v\n", err)
		return 1
	}

	fs := afero.NewOsFs()

	if cfg.ConfigFile != "" {
		if err := config.LoadSettings(fs, cfg.ConfigFile, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "photofix: %v\n", err)
			return 1
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "photofix: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "photofix: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	info, err := fs.Stat(cfg.Path)
	if err != nil {
		log.Error("Path not found: %s", cfg.Path)
		return 1
	}
	if !info.IsDir() {
		log.Error("Not a directory: %s", cfg.Path)
		return 1
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, fs, log) {
			return 1
		}
		return 0
	}

	log.Info("=== PhotoFix v%s (%s) ===", version, commit)
	log.Info("Export: %s", cfg.Path)
	if cfg.Timezone != "UTC" {
		log.Info("Timezone: %s", cfg.Timezone)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	if _, err := pipeline.Run(&cfg, fs, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
