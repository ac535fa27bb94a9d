package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchlksk/highlight/internal/config"
	"github.com/mchlksk/highlight/internal/highlight"
	"github.com/mchlksk/highlight/internal/match"
)

func (a *app) run(cmd *cobra.Command, args []string) error {
	if _, err := a.flags.fromFlags(); err != nil {
		return err
	}
	if a.flags.version {
		fmt.Fprint(cmd.OutOrStdout(), versionText())
		return nil
	}
	if a.flags.saveStyle {
		return a.saveStyle(cmd)
	}

	if len(args) == 0 {
		return usageErrorf("")
	}
	if len(args) > 2 {
		return usageErrorf("redundant parameter -- " + args[2])
	}
	pattern := args[0]
	filename := "-"
	if len(args) == 2 {
		filename = args[1]
	}

	s, err := a.loadSettings()
	if err != nil {
		return err
	}
	style := a.style(s)
	a.reporter.Debugf("pattern=%q regex=%v ignore-case=%v line=%v buffer=%d colors=%v style=%q",
		pattern, s.extended, s.ignoreCase, s.lineMode, s.bufferSize, style.Enabled(), style.Start)

	matcher, err := match.New(pattern, match.Options{Regex: s.extended, IgnoreCase: s.ignoreCase})
	if err != nil {
		return err
	}

	input, closeInput, err := a.openInput(filename)
	if err != nil {
		return err
	}
	defer closeInput()

	h := highlight.New(matcher, style, s.lineMode)
	stats, err := h.Run(highlight.NewSource(input, s.bufferSize), a.streams.Out, func(w highlight.Warning) {
		a.reporter.Warning(w.Error())
	})
	a.reporter.Debugf("lines=%d matched=%d matches=%d truncated=%d",
		stats.Lines, stats.MatchedLines, stats.Matches, stats.Truncated)
	if err != nil {
		return err
	}
	if stats.Truncated > 0 {
		a.status = ExitWarning
	}
	return nil
}

func (a *app) openInput(filename string) (io.Reader, func(), error) {
	if filename == "-" {
		return a.streams.In, func() {}, nil
	}
	f, err := os.Open(filename)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, nil, fmt.Errorf("cannot open input file %s: %w", filename, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func (a *app) saveStyle(cmd *cobra.Command) error {
	update, err := a.flags.fromFlags()
	if err != nil {
		return err
	}
	update.BufferSize = nil
	update.IgnoreCase = nil
	if update == (config.Config{}) {
		return usageErrorf("--save-style needs at least one of -a, -f, -b or --color")
	}

	path, _ := a.resolveConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine configuration file location; use --config")
	}
	if err := config.Save(path, update); err != nil {
		return fmt.Errorf("save style: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Style saved to %s\n", path)
	return nil
}
