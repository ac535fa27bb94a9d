// Package config loads and saves user defaults for highlight.
//
// The file may be TOML, YAML or JSON, chosen by extension. All keys are
// optional; command line flags override them.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mchlksk/highlight/internal/fileutil"
	"github.com/mchlksk/highlight/internal/format"
	"github.com/mchlksk/highlight/internal/highlight"
)

// Config represents the configuration file.
type Config struct {
	Attribute  *string `toml:"attribute,omitempty" yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Foreground *string `toml:"foreground,omitempty" yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Background *string `toml:"background,omitempty" yaml:"background,omitempty" json:"background,omitempty"`
	Color      *string `toml:"color,omitempty" yaml:"color,omitempty" json:"color,omitempty"`
	BufferSize *int    `toml:"buffer_size,omitempty" yaml:"buffer_size,omitempty" json:"buffer_size,omitempty"`
	IgnoreCase *bool   `toml:"ignore_case,omitempty" yaml:"ignore_case,omitempty" json:"ignore_case,omitempty"`
}

// ValidKeys lists the accepted configuration keys.
var ValidKeys = []string{"attribute", "foreground", "background", "color", "buffer_size", "ignore_case"}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return cfg, fmt.Errorf("%s: unsupported config extension %q", path, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg, err = decode(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields an empty Config.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// Validate checks names and ranges.
func (c Config) Validate() error {
	if c.Attribute != nil {
		if _, ok := format.LookupAttribute(*c.Attribute); !ok {
			return fmt.Errorf("unknown attribute -- %s", *c.Attribute)
		}
	}
	if c.Foreground != nil {
		if _, ok := format.LookupColor(*c.Foreground); !ok {
			return fmt.Errorf("unknown foreground color -- %s", *c.Foreground)
		}
	}
	if c.Background != nil {
		if _, ok := format.LookupColor(*c.Background); !ok {
			return fmt.Errorf("unknown background color -- %s", *c.Background)
		}
	}
	if c.Color != nil {
		if _, err := format.ParseMode(*c.Color); err != nil {
			return err
		}
	}
	if c.BufferSize != nil && *c.BufferSize < highlight.MinBufferSize {
		return fmt.Errorf("buffer_size must be at least %d, got %d", highlight.MinBufferSize, *c.BufferSize)
	}
	return nil
}

// Merge returns c with every field set in over replacing c's value.
func (c Config) Merge(over Config) Config {
	if over.Attribute != nil {
		c.Attribute = over.Attribute
	}
	if over.Foreground != nil {
		c.Foreground = over.Foreground
	}
	if over.Background != nil {
		c.Background = over.Background
	}
	if over.Color != nil {
		c.Color = over.Color
	}
	if over.BufferSize != nil {
		c.BufferSize = over.BufferSize
	}
	if over.IgnoreCase != nil {
		c.IgnoreCase = over.IgnoreCase
	}
	return c
}

// Save merges update into the file at path (creating it if needed) and
// writes it atomically while holding a lock. The encoding follows the
// extension; unknown extensions are rejected.
func Save(path string, update Config) error {
	if err := update.Validate(); err != nil {
		return err
	}
	if err := fileutil.EnsureParentDirectory(path); err != nil {
		return err
	}
	return fileutil.WithFileLock(path, func() error {
		current, err := LoadOptional(path)
		if err != nil {
			return err
		}
		content, err := encode(path, current.Merge(update))
		if err != nil {
			return err
		}
		return fileutil.AtomicWriteFile(path, content)
	})
}

func encode(path string, cfg Config) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Marshal(cfg)
	case ".yaml", ".yml":
		return yaml.Marshal(cfg)
	case ".json":
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("%s: unsupported config extension %q", path, ext)
	}
}

func decode(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		var err error
		switch normalizeKey(key) {
		case "attribute":
			cfg.Attribute, err = expectString(value, key)
		case "foreground":
			cfg.Foreground, err = expectString(value, key)
		case "background":
			cfg.Background, err = expectString(value, key)
		case "color":
			cfg.Color, err = expectString(value, key)
		case "buffer_size":
			cfg.BufferSize, err = expectInt(value, key)
		case "ignore_case":
			cfg.IgnoreCase, err = expectBool(value, key)
		default:
			return cfg, fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(ValidKeys, ", "))
		}
		if err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, "-", "_")
}

func expectString(value any, key string) (*string, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%s: expected string, got %T", key, value)
	}
	s = strings.TrimSpace(s)
	return &s, nil
}

func expectBool(value any, key string) (*bool, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%s: expected boolean, got %T", key, value)
	}
	return &b, nil
}

func expectInt(value any, key string) (*int, error) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%s: expected integer, got %v", key, v)
		}
		n = int(v)
	default:
		return nil, fmt.Errorf("%s: expected integer, got %T", key, value)
	}
	return &n, nil
}
