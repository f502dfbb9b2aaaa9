package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", tmpl)
	}
	if !strings.Contains(String(), "version: v1.2.3") {
		t.Errorf("String() = %q", String())
	}
}

func TestCurrentKeepsLinkerValues(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = "v0.4.0", "abc123", "2026-01-02T03:04:05Z"
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	want := Info{Version: "v0.4.0", Commit: "abc123", Date: "2026-01-02T03:04:05Z"}
	if got := Current(); got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
}

func TestCurrentDefaults(t *testing.T) {
	info := Current()
	if info.Version == "" || info.Commit == "" || info.Date == "" {
		t.Errorf("Current() has empty fields: %+v", info)
	}
}
