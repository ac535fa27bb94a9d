package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mchlksk/highlight/internal/config"
	"github.com/mchlksk/highlight/internal/fileutil"
	"github.com/mchlksk/highlight/internal/format"
	"github.com/mchlksk/highlight/internal/highlight"
)

type flagValues struct {
	ignoreCase bool
	lineMode   bool
	extended   bool
	attribute  string
	foreground string
	background string
	color      string
	bufferSize int
	configPath string
	saveStyle  bool
	debug      bool
	help       bool
	version    bool

	set *pflag.FlagSet
}

func (f *flagValues) register(fs *pflag.FlagSet) {
	f.set = fs
	fs.SortFlags = false
	fs.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "ignore case")
	fs.BoolVarP(&f.extended, "extended-regexp", "E", false, "PATTERN is an extended regular expression")
	fs.StringVarP(&f.attribute, "attribute", "a", "", "set attribute of highlighted text")
	fs.StringVarP(&f.foreground, "foreground", "f", "", "set foreground color of highlighted text")
	fs.StringVarP(&f.background, "background", "b", "", "set background color of highlighted text")
	fs.BoolVarP(&f.lineMode, "line", "l", false, "line mode (highlight whole lines)")
	fs.StringVar(&f.color, "color", "", "when to emit escape sequences: always, auto or never")
	fs.IntVar(&f.bufferSize, "buffer-size", highlight.DefaultBufferSize, "line buffer size in bytes")
	fs.StringVar(&f.configPath, "config", "", "read defaults from this configuration file")
	fs.BoolVar(&f.saveStyle, "save-style", false, "save the style options as defaults and exit")
	fs.BoolVar(&f.debug, "debug", false, "print debug information on standard error")
	fs.BoolVarP(&f.version, "version", "v", false, "display program version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "display this help and exit")
}

func (f *flagValues) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}

// fromFlags returns the configuration given on the command line. Names are
// validated; a bad value is a usage error.
func (f *flagValues) fromFlags() (config.Config, error) {
	var cfg config.Config
	if f.changed("attribute") {
		if _, ok := format.LookupAttribute(f.attribute); !ok {
			return cfg, usageErrorf("unknown attribute -- " + f.attribute)
		}
		cfg.Attribute = &f.attribute
	}
	if f.changed("foreground") {
		if _, ok := format.LookupColor(f.foreground); !ok {
			return cfg, usageErrorf("unknown foreground color -- " + f.foreground)
		}
		cfg.Foreground = &f.foreground
	}
	if f.changed("background") {
		if _, ok := format.LookupColor(f.background); !ok {
			return cfg, usageErrorf("unknown background color -- " + f.background)
		}
		cfg.Background = &f.background
	}
	if f.changed("color") {
		if _, err := format.ParseMode(f.color); err != nil {
			return cfg, usageErrorf(err.Error())
		}
		cfg.Color = &f.color
	}
	if f.changed("buffer-size") {
		if f.bufferSize < highlight.MinBufferSize {
			return cfg, usageErrorf(fmt.Sprintf("invalid buffer size -- %d (minimum %d)", f.bufferSize, highlight.MinBufferSize))
		}
		cfg.BufferSize = &f.bufferSize
	}
	if f.changed("ignore-case") {
		cfg.IgnoreCase = &f.ignoreCase
	}
	return cfg, nil
}

// settings is the immutable configuration of one run, built once from the
// configuration file and the flags.
type settings struct {
	selection  format.Selection
	mode       format.ColorMode
	bufferSize int
	ignoreCase bool
	lineMode   bool
	extended   bool
	configPath string
}

func (a *app) resolveConfigPath() (string, bool) {
	return fileutil.ResolveConfigPath(a.flags.configPath, a.env)
}

func (a *app) loadSettings() (settings, error) {
	flagCfg, err := a.flags.fromFlags()
	if err != nil {
		return settings{}, err
	}

	path, explicit := a.resolveConfigPath()
	var fileCfg config.Config
	if explicit {
		fileCfg, err = config.Load(path)
	} else {
		fileCfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return settings{}, err
	}
	a.reporter.Debugf("config file: %q (explicit=%v)", path, explicit)

	cfg := fileCfg.Merge(flagCfg)
	s := settings{
		bufferSize: highlight.DefaultBufferSize,
		lineMode:   a.flags.lineMode,
		extended:   a.flags.extended,
		configPath: path,
	}
	if cfg.Attribute != nil {
		i, _ := format.LookupAttribute(*cfg.Attribute)
		s.selection.Attribute = &i
	}
	if cfg.Foreground != nil {
		i, _ := format.LookupColor(*cfg.Foreground)
		s.selection.Foreground = &i
	}
	if cfg.Background != nil {
		i, _ := format.LookupColor(*cfg.Background)
		s.selection.Background = &i
	}
	if cfg.Color != nil {
		s.mode, _ = format.ParseMode(*cfg.Color)
	}
	if cfg.BufferSize != nil {
		s.bufferSize = *cfg.BufferSize
	}
	if cfg.IgnoreCase != nil {
		s.ignoreCase = *cfg.IgnoreCase
	}
	return s, nil
}

// style returns the highlight style for out, honoring the color mode.
func (a *app) style(s settings) format.Style {
	if !format.Enabled(s.mode, a.streams.Out, a.env) {
		return format.Disabled()
	}
	return format.Build(s.selection)
}
