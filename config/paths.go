// Package config locates, loads and persists the gateway's configuration
// documents.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"clawmgr/config/storage"
)

const (
	defaultDirName       = ".openclaw"
	legacyDirName        = ".clawdbot"
	configFileName       = "openclaw.json"
	legacyConfigFileName = "clawdbot.json"
)

// Settings carries the environment overrides honored by every command.
type Settings struct {
	// StateDir replaces the home-derived base directory outright. Set by
	// OpenClaw itself in containerized installs.
	StateDir  string `env:"OPENCLAW_STATE_DIR"`
	ForceTUI  bool   `env:"CLAWMGR_TUI"`
	NoRestart bool   `env:"CLAWMGR_NO_RESTART"`
}

// LoadSettings reads the overrides from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}

// Paths is the resolved on-disk layout for one run.
type Paths struct {
	BaseDir    string
	ConfigFile string
	AuthStore  string
	// Legacy is set when the run operates on the old clawdbot layout.
	Legacy bool
}

// ResolvePaths picks the layout the run operates on. An explicit state dir
// wins outright. Otherwise ~/.openclaw is used, unless only the legacy
// ~/.clawdbot config exists, in which case the run keeps maintaining the
// legacy layout instead of splitting state across both.
func ResolvePaths(s Settings) (Paths, error) {
	if s.StateDir != "" {
		return layout(s.StateDir, configFileName, false), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("locate home directory: %w", err)
	}

	current := layout(filepath.Join(home, defaultDirName), configFileName, false)
	if !storage.FileExists(current.ConfigFile) {
		legacy := layout(filepath.Join(home, legacyDirName), legacyConfigFileName, true)
		if storage.FileExists(legacy.ConfigFile) {
			return legacy, nil
		}
	}
	return current, nil
}

func layout(baseDir, configName string, legacy bool) Paths {
	return Paths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, configName),
		AuthStore:  filepath.Join(baseDir, "credentials", "auth-profiles.json"),
		Legacy:     legacy,
	}
}
