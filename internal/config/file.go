package config

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Settings is the YAML shape of the optional --config file. Every field is
// optional; zero values leave the corresponding Config default untouched.
type Settings struct {
	TableBase        string     `yaml:"table_base"`
	FolderPattern    string     `yaml:"folder_pattern"`
	Timezone         string     `yaml:"timezone"`
	ExtensionAliases [][]string `yaml:"extension_aliases"`
}

// LoadSettings reads a YAML settings file and applies its non-empty fields
// to cfg. Called between flag parsing and Validate, so a bad pattern or
// timezone from the file still fails validation with a clear error.
func LoadSettings(fs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.TableBase != "" {
		cfg.TableBase = s.TableBase
	}
	if s.FolderPattern != "" {
		cfg.FolderPattern = s.FolderPattern
	}
	if s.Timezone != "" {
		cfg.Timezone = s.Timezone
	}
	if len(s.ExtensionAliases) > 0 {
		cfg.ExtensionAliases = s.ExtensionAliases
	}
	return nil
}
