package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the configuration directory.
const AppName = "highlight"

// ConfigEnvVar overrides the configuration file location.
const ConfigEnvVar = "HIGHLIGHT_CONFIG"

// ConfigFilenames are tried in order inside the configuration directory.
var ConfigFilenames = []string{
	"config.toml",
	"config.yaml",
	"config.yml",
	"config.json",
}

// ConfigDirectory returns the configuration directory using, in order:
//  1. $XDG_CONFIG_HOME/highlight
//  2. $HOME/.config/highlight
//
// It returns "" when neither variable is set.
func ConfigDirectory(env map[string]string) string {
	if xdg := strings.TrimSpace(env["XDG_CONFIG_HOME"]); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", AppName)
	}
	return ""
}

// ResolveConfigPath picks the configuration file. An explicit path (flag or
// $HIGHLIGHT_CONFIG) is returned as-is with explicit set. Otherwise the first
// existing file in ConfigDirectory is returned, or the default config.toml
// location when none exists yet. The result may be "" when no directory can
// be determined.
func ResolveConfigPath(flagPath string, env map[string]string) (path string, explicit bool) {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p, true
	}
	if p := strings.TrimSpace(env[ConfigEnvVar]); p != "" {
		return p, true
	}
	dir := ConfigDirectory(env)
	if dir == "" {
		return "", false
	}
	for _, name := range ConfigFilenames {
		candidate := filepath.Join(dir, name)
		if FileExists(candidate) {
			return candidate, false
		}
	}
	return filepath.Join(dir, ConfigFilenames[0]), false
}

// FileExists reports whether path is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// EnsureParentDirectory creates the directory holding path.
func EnsureParentDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0700)
}
