package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileHasNoTheme(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "" {
		t.Fatalf("Theme = %q, want empty", p.Theme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "dex")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"dark\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeDark {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeDark)
	}
}

func TestLoad_NormalizesTheme(t *testing.T) {
	cases := map[string]string{
		"theme = \" Light \"\n": ThemeLight,
		"theme = \"DARK\"\n":    ThemeDark,
		"theme = \"Dracula\"\n": "",
		"theme = \"\"\n":        "",
	}
	for body, want := range cases {
		prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
		if err := os.WriteFile(prefsFile, []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		p, err := Load(prefsFile)
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if p.Theme != want {
			t.Fatalf("Load(%q).Theme = %q, want %q", body, p.Theme, want)
		}
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: ThemeLight}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, ThemeLight)
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "" {
		t.Fatalf("Theme = %q, want empty", p.Theme)
	}
}
