package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when highlighting sequences are emitted.
type ColorMode int

const (
	ModeAlways ColorMode = iota
	ModeAuto
	ModeNever
)

// ValidModes lists the accepted --color values.
var ValidModes = []string{"always", "auto", "never"}

func (m ColorMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeNever:
		return "never"
	default:
		return "always"
	}
}

// ParseMode parses a --color value. The empty string means always.
func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "always":
		return ModeAlways, nil
	case "auto":
		return ModeAuto, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAlways, fmt.Errorf("unknown color mode -- %s", v)
	}
}

// EnvMap converts os.Environ style entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		if idx := strings.Index(entry, "="); idx >= 0 {
			env[entry[:idx]] = entry[idx+1:]
		} else {
			env[entry] = ""
		}
	}
	return env
}

// Enabled reports whether highlighting should be emitted on out.
//
// ModeAlways and ModeNever are constant. ModeAuto checks, first match wins:
//  1. TERM=dumb disables colors.
//  2. NO_COLOR disables colors.
//  3. CLICOLOR=0 disables colors.
//  4. CLICOLOR_FORCE / FORCE_COLOR with a non-zero value enable colors.
//  5. Otherwise colors are emitted only when out is a terminal.
func Enabled(mode ColorMode, out io.Writer, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if v := strings.ToLower(strings.TrimSpace(env["TERM"])); v == "dumb" {
		return false
	}
	if strings.TrimSpace(env["NO_COLOR"]) != "" {
		return false
	}
	if strings.TrimSpace(env["CLICOLOR"]) == "0" {
		return false
	}
	if forceColor(env["CLICOLOR_FORCE"]) || forceColor(env["FORCE_COLOR"]) {
		return true
	}
	return isTerminal(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
