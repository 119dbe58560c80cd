package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("missing file should give defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[editor]
tab_size = 2
soft_tabs = false

[behavior]
quit_times = 1

[keybindings.global]
"ctrl+w" = "save"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabSize != 2 || cfg.Editor.SoftTabs {
		t.Errorf("editor section not applied: %+v", cfg.Editor)
	}
	if !cfg.Editor.AutoIndent || cfg.Editor.GutterWidth != 6 {
		t.Errorf("omitted keys should keep defaults: %+v", cfg.Editor)
	}
	if cfg.Behavior.QuitTimes != 1 {
		t.Errorf("quit_times = %d, want 1", cfg.Behavior.QuitTimes)
	}
	if cfg.Keybindings.Global["ctrl+w"] != "save" {
		t.Errorf("keybinding override missing: %v", cfg.Keybindings.Global)
	}
}

func TestLoadReportsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[editor]\ntab_size = 0\n[display]\ncolour = \"red\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for tab_size = 0 and an unknown key")
	}
	if !strings.Contains(err.Error(), "tab_size") || !strings.Contains(err.Error(), "display.colour") {
		t.Errorf("error should mention both problems, got %q", err)
	}
	if cfg.Editor.TabSize != 4 {
		t.Errorf("invalid tab_size should fall back to 4, got %d", cfg.Editor.TabSize)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("parse error should return defaults")
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	wrote, err := WriteDefault(path)
	if err != nil || !wrote {
		t.Fatalf("WriteDefault = %v, %v", wrote, err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load written default: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("written default did not round-trip: %+v", cfg)
	}

	wrote, err = WriteDefault(path)
	if err != nil || wrote {
		t.Errorf("second WriteDefault = %v, %v; want false, nil", wrote, err)
	}
}

func TestWelcome(t *testing.T) {
	cfg := Default()
	if got := cfg.Welcome("1.2.3"); got != "Ninja --- Version 1.2.3" {
		t.Errorf("Welcome = %q", got)
	}
}

func TestPathHonoursEnv(t *testing.T) {
	t.Setenv("NINJA_CONFIG", "/tmp/custom.toml")
	p, err := Path()
	if err != nil || p != "/tmp/custom.toml" {
		t.Errorf("Path = %q, %v", p, err)
	}
}
