package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaultTheme(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_GarbageFileDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q after parse failure", p.Theme, defaultTheme)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Paper"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p := Load(path)
	if p.Theme != "Paper" {
		t.Fatalf("Theme = %q, want Paper", p.Theme)
	}
}

func TestLoad_BlankThemeUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = "  "`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}
