package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirectory(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"xdg wins", map[string]string{"XDG_CONFIG_HOME": "/xdg", "HOME": "/home/u"}, filepath.Join("/xdg", "highlight")},
		{"home fallback", map[string]string{"HOME": "/home/u"}, filepath.Join("/home/u", ".config", "highlight")},
		{"nothing", map[string]string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigDirectory(tt.env); got != tt.want {
				t.Errorf("ConfigDirectory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	env := map[string]string{"HOME": home}
	dir := filepath.Join(home, ".config", "highlight")

	got, explicit := ResolveConfigPath("", env)
	if explicit || got != filepath.Join(dir, "config.toml") {
		t.Fatalf("ResolveConfigPath() = %q, %v; want default toml", got, explicit)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("foreground: red\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got, _ := ResolveConfigPath("", env); got != yamlPath {
		t.Errorf("ResolveConfigPath() = %q, want existing %q", got, yamlPath)
	}

	env[ConfigEnvVar] = "/etc/hl.toml"
	if got, explicit := ResolveConfigPath("", env); got != "/etc/hl.toml" || !explicit {
		t.Errorf("env override = %q, %v", got, explicit)
	}
	if got, explicit := ResolveConfigPath("flag.json", env); got != "flag.json" || !explicit {
		t.Errorf("flag override = %q, %v", got, explicit)
	}

	if got, _ := ResolveConfigPath("", map[string]string{}); got != "" {
		t.Errorf("no directory should give empty path, got %q", got)
	}
}

func TestAtomicWriteFileWithLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := WithFileLock(path, func() error {
		if _, err := os.Stat(path + ".lock"); err != nil {
			t.Errorf("lock file missing while held: %v", err)
		}
		return AtomicWriteFile(path, []byte("color = \"never\"\n"))
	})
	if err != nil {
		t.Fatalf("WithFileLock() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "color = \"never\"\n" {
		t.Errorf("content = %q", data)
	}
	if FileExists(path + ".lock") {
		t.Error("lock file should be released")
	}
	if FileExists(path + ".tmp") {
		t.Error("temporary file should be renamed away")
	}
}

func TestAcquireLockBusy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := AcquireLock(path, 0); err != nil {
		t.Fatalf("first AcquireLock() error = %v", err)
	}
	defer ReleaseLock(path)
	err := AcquireLock(path, 1)
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("second AcquireLock() = %v, want ErrLocked", err)
	}
}
