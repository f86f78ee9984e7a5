package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults to empty", func(t *testing.T) {
		t.Setenv("OPENCLAW_STATE_DIR", "")
		t.Setenv("CLAWMGR_TUI", "")
		t.Setenv("CLAWMGR_NO_RESTART", "")

		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("LoadSettings: %v", err)
		}
		if s.StateDir != "" || s.ForceTUI || s.NoRestart {
			t.Errorf("expected zero settings, got %+v", s)
		}
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("OPENCLAW_STATE_DIR", "/srv/openclaw")
		t.Setenv("CLAWMGR_TUI", "true")
		t.Setenv("CLAWMGR_NO_RESTART", "1")

		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("LoadSettings: %v", err)
		}
		if s.StateDir != "/srv/openclaw" {
			t.Errorf("StateDir = %q, want /srv/openclaw", s.StateDir)
		}
		if !s.ForceTUI {
			t.Error("CLAWMGR_TUI=true should set ForceTUI")
		}
		if !s.NoRestart {
			t.Error("CLAWMGR_NO_RESTART=1 should set NoRestart")
		}
	})
}

func TestResolvePaths(t *testing.T) {
	t.Run("state dir override wins", func(t *testing.T) {
		dir := t.TempDir()

		p, err := ResolvePaths(Settings{StateDir: dir})
		if err != nil {
			t.Fatalf("ResolvePaths: %v", err)
		}
		if p.BaseDir != dir {
			t.Errorf("BaseDir = %q, want %q", p.BaseDir, dir)
		}
		if p.ConfigFile != filepath.Join(dir, "openclaw.json") {
			t.Errorf("ConfigFile = %q", p.ConfigFile)
		}
		if p.AuthStore != filepath.Join(dir, "credentials", "auth-profiles.json") {
			t.Errorf("AuthStore = %q", p.AuthStore)
		}
		if p.Legacy {
			t.Error("override layout should not be marked legacy")
		}
	})

	t.Run("defaults to the openclaw layout", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		p, err := ResolvePaths(Settings{})
		if err != nil {
			t.Fatalf("ResolvePaths: %v", err)
		}
		if p.ConfigFile != filepath.Join(home, ".openclaw", "openclaw.json") {
			t.Errorf("ConfigFile = %q", p.ConfigFile)
		}
		if p.Legacy {
			t.Error("fresh layout should not be marked legacy")
		}
	})

	t.Run("falls back to a legacy clawdbot install", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		legacyDir := filepath.Join(home, ".clawdbot")
		if err := os.MkdirAll(legacyDir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(legacyDir, "clawdbot.json"), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}

		p, err := ResolvePaths(Settings{})
		if err != nil {
			t.Fatalf("ResolvePaths: %v", err)
		}
		if p.ConfigFile != filepath.Join(legacyDir, "clawdbot.json") {
			t.Errorf("ConfigFile = %q, want the legacy config", p.ConfigFile)
		}
		if !p.Legacy {
			t.Error("legacy layout should be marked legacy")
		}
	})

	t.Run("prefers the current layout once it exists", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("USERPROFILE", home)

		for dir, name := range map[string]string{
			".openclaw": "openclaw.json",
			".clawdbot": "clawdbot.json",
		} {
			if err := os.MkdirAll(filepath.Join(home, dir), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(home, dir, name), []byte("{}"), 0600); err != nil {
				t.Fatal(err)
			}
		}

		p, err := ResolvePaths(Settings{})
		if err != nil {
			t.Fatalf("ResolvePaths: %v", err)
		}
		if p.ConfigFile != filepath.Join(home, ".openclaw", "openclaw.json") {
			t.Errorf("ConfigFile = %q, want the current layout", p.ConfigFile)
		}
	})
}
