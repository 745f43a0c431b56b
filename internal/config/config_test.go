package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ansiterm.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg != Default() {
		t.Errorf("Load(\"\") = %+v, %v, want defaults and nil", cfg, err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "ice = \"off\"\nsafe = false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ice != "off" {
		t.Errorf("Ice = %q, want %q", cfg.Ice, "off")
	}
	if cfg.Safe {
		t.Error("Safe = true, want false")
	}
	// Keys absent from the file keep their defaults.
	if !cfg.AltScreen {
		t.Error("AltScreen = false, want default true")
	}
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "ice = [broken")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Ice != "auto" || !cfg.Safe || !cfg.AltScreen {
		t.Errorf("Default() = %+v", cfg)
	}
}
