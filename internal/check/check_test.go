package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/backmassage/photofix/internal/config"
)

// mockLogger captures log lines by level for assertions.
type mockLogger struct {
	lines []string
}

func (m *mockLogger) log(level, format string, args ...interface{}) {
	m.lines = append(m.lines, level+": "+fmt.Sprintf(format, args...))
}

func (m *mockLogger) Info(f string, a ...interface{})    { m.log("INFO", f, a...) }
func (m *mockLogger) Success(f string, a ...interface{}) { m.log("OK", f, a...) }
func (m *mockLogger) Warn(f string, a ...interface{})    { m.log("WARN", f, a...) }
func (m *mockLogger) Error(f string, a ...interface{})   { m.log("ERROR", f, a...) }
func (m *mockLogger) Debug(bool, string, ...interface{}) {}

func (m *mockLogger) contains(substr string) bool {
	for _, l := range m.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func checkConfig(t *testing.T, path string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return &cfg
}

func TestRunCheckUsableLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	table := "imgName,fileChecksum,originalCreationDate\n" +
		"a.jpg,c1,01/01/2020 00:00:00\n" +
		",c2,01/01/2020 00:00:00\n"
	if err := afero.WriteFile(fs, "/e/iCloudPhotosPart1of1/Photos/Photo Details.csv", []byte(table), 0o644); err != nil {
		t.Fatal(err)
	}

	log := &mockLogger{}
	if !RunCheck(checkConfig(t, "/e"), fs, log) {
		t.Fatal("RunCheck = false for a usable layout")
	}
	if !log.contains("1 row(s), 1 unreadable") {
		t.Errorf("row counts not reported: %v", log.lines)
	}
}

func TestRunCheckNoFolders(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/e", 0o755); err != nil {
		t.Fatal(err)
	}

	log := &mockLogger{}
	if RunCheck(checkConfig(t, "/e"), fs, log) {
		t.Fatal("RunCheck = true with no export folders")
	}
	if !log.contains("ERROR") {
		t.Errorf("no error logged: %v", log.lines)
	}
}

func TestRunCheckFolderWithoutTables(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/e/iCloudPhotosPart1of1", 0o755); err != nil {
		t.Fatal(err)
	}

	log := &mockLogger{}
	if RunCheck(checkConfig(t, "/e"), fs, log) {
		t.Fatal("RunCheck = true when no folder has tables")
	}
	if !log.contains("no \"Photo Details\" tables") {
		t.Errorf("missing-table warning not logged: %v", log.lines)
	}
}
