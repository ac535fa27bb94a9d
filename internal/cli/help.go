package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mchlksk/highlight/internal/fileutil"
	"github.com/mchlksk/highlight/internal/format"
)

func usageLine() string {
	return fmt.Sprintf("Usage: %s [OPTION]... PATTERN [FILE]", programName)
}

// hint prints the short usage message shown after invocation errors.
func (a *app) hint(w io.Writer) {
	fmt.Fprintln(w, usageLine())
	fmt.Fprintf(w, "Try '%s --help' for more information.\n", programName)
}

func versionText() string {
	return fmt.Sprintf("%s version %s (commit: %s)\n", programName, Version, Commit)
}

// help prints the version first when --version was also given, then the full
// usage. Invalid option values still fail as they would without --help.
func (a *app) help(cmd *cobra.Command) {
	if _, err := a.flags.fromFlags(); err != nil {
		a.report(err)
		a.status = ExitError
		return
	}
	out := cmd.OutOrStdout()
	if a.flags.version {
		fmt.Fprint(out, versionText())
	}
	fmt.Fprint(out, helpText())
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString(usageLine() + "\n")
	sb.WriteString("Highlight PATTERN using ANSI escape sequences, read from FILE or standard input.\n")
	fmt.Fprintf(&sb, "Example: %s -f red 'hello world' main.c\n", programName)
	sb.WriteString(`
Pattern interpretation:
  -i, --ignore-case        ignore case
  -E, --extended-regexp    PATTERN is an extended regular expression

Highlighting:
  -a, --attribute ATTR     set attribute of highlighted text
                           possible attributes are: ` + strings.Join(format.Attributes, " ") + `
  -f, --foreground COLOR   set foreground color of highlighted text
                           possible colors are: ` + strings.Join(format.Colors, " ") + `
  -b, --background COLOR   set background color of highlighted text
                           possible colors are: ` + strings.Join(format.Colors, " ") + `
  -l, --line               line mode (highlight whole lines)
      --color WHEN         emit escape sequences: ` + strings.Join(format.ValidModes, ", ") + ` (default always)

Input and configuration:
      --buffer-size N      line buffer size in bytes (default 16384)
      --config FILE        read defaults from FILE
      --save-style         save -a, -f, -b and --color as defaults and exit
      --debug              print debug information on standard error

  -v, --version            display program version and exit
  -h, --help               display this help and exit

With no FILE, or when FILE is -, read standard input.
`)
	fmt.Fprintf(&sb, "Defaults are read from $%s or <config dir>/%s/config.{toml,yaml,yml,json}.\n",
		fileutil.ConfigEnvVar, fileutil.AppName)
	fmt.Fprintf(&sb, "Exit status is %d if no error, %d on warning, %d on fatal error.\n",
		ExitOK, ExitWarning, ExitError)
	return sb.String()
}
