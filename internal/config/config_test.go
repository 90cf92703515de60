package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes a config file under a fake home directory.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "gb")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load = %v, want nil", err)
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, want origin", cfg.Remote)
	}
	if !cfg.ShowRemotes {
		t.Error("ShowRemotes = false, want true")
	}
	if cfg.Keys.Pull != "ctrl+p" {
		t.Errorf("Keys.Pull = %q, want ctrl+p", cfg.Keys.Pull)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	writeConfig(t, `
remote = "upstream"

[keys]
pull = "ctrl+l"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load = %v, want nil", err)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want upstream", cfg.Remote)
	}
	if cfg.Keys.Pull != "ctrl+l" {
		t.Errorf("Keys.Pull = %q, want ctrl+l", cfg.Keys.Pull)
	}
	if cfg.Keys.Push != "ctrl+o" {
		t.Errorf("Keys.Push = %q, want default ctrl+o", cfg.Keys.Push)
	}
}

func TestLoad_ShowRemotesFalse(t *testing.T) {
	writeConfig(t, `show_remotes = false`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load = %v, want nil", err)
	}
	if cfg.ShowRemotes {
		t.Error("ShowRemotes = true, want false")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	writeConfig(t, `remote = [broken`)

	if _, err := Load(); err == nil {
		t.Error("Load = nil, want parse error")
	}
}

func TestLoad_InvalidKey(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"reserved", "[keys]\npull = \"enter\""},
		{"bad syntax", "[keys]\npull = \"shift+p\""},
		{"multi rune", "[keys]\npull = \"ctrl+pp\""},
		{"duplicate", "[keys]\npull = \"ctrl+x\"\npush = \"ctrl+x\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)
			if _, err := Load(); err == nil {
				t.Errorf("Load = nil, want error for %s", tt.name)
			}
		})
	}
}

func TestLoad_InvalidRemote(t *testing.T) {
	writeConfig(t, `remote = "bad remote"`)

	if _, err := Load(); err == nil {
		t.Error("Load = nil, want error for remote with whitespace")
	}
}

func TestInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path, err := Init(false)
	if err != nil {
		t.Fatalf("Init = %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created config: %v", err)
	}
	if !strings.Contains(string(data), "[keys]") {
		t.Error("default config missing [keys] section")
	}

	// Second Init without force fails, with force succeeds.
	if _, err := Init(false); err == nil {
		t.Error("Init on existing file = nil, want error")
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init force = %v, want nil", err)
	}

	// Default config's commented values round-trip through Load.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load after Init = %v", err)
	}
	if cfg.Remote != "origin" {
		t.Errorf("Remote = %q, want origin", cfg.Remote)
	}
}
