package pipeline

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// photosSubdir is where newer exports keep the media and tables.
const photosSubdir = "Photos"

// FindExportFolders lists the immediate subdirectories of root whose name
// matches the export folder pattern, sorted lexicographically so parts
// process in order.
func FindExportFolders(fs afero.Fs, root string, pattern *regexp.Regexp) ([]string, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, err
	}
	var folders []string
	for _, e := range entries {
		if e.IsDir() && pattern.MatchString(e.Name()) {
			folders = append(folders, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// FindTables locates the detail tables of one export folder: CSV files
// whose name starts with the table base ("Photo Details", "Photo
// Details-1", ...). The folder itself is checked first, then its Photos
// subdirectory. Results are sorted lexicographically for a deterministic
// processing order; no cross-table record order is promised.
func FindTables(fs afero.Fs, dir, base string) ([]string, error) {
	for _, candidate := range []string{dir, filepath.Join(dir, photosSubdir)} {
		tables, err := tablesIn(fs, candidate, base)
		if err != nil {
			continue
		}
		if len(tables) > 0 {
			sort.Strings(tables)
			return tables, nil
		}
	}
	return nil, nil
}

func tablesIn(fs afero.Fs, dir, base string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var tables []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, base) && strings.EqualFold(filepath.Ext(name), ".csv") {
			tables = append(tables, filepath.Join(dir, name))
		}
	}
	return tables, nil
}

// mediaNames lists the plain file names in the media directory, excluding
// the tables themselves. These are the match candidates for one folder.
func mediaNames(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
