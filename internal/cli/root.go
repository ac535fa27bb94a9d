package cli

import (
	"errors"
	"io"
	"os"

	"github.com/mchlksk/highlight/internal/format"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
)

const programName = "highlight"

// Exit statuses.
const (
	ExitOK      = 0
	ExitWarning = 1
	ExitError   = 2
)

// Streams are the standard streams a run reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// UsageError is an invalid invocation. It is reported together with the
// usage hint.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(msg string) error {
	return &UsageError{Msg: msg}
}

// app carries the state of one invocation.
type app struct {
	streams  Streams
	env      map[string]string
	reporter *format.Reporter
	flags    flagValues
	status   int
}

func newApp(streams Streams, env map[string]string) *app {
	return &app{
		streams:  streams,
		env:      env,
		reporter: format.NewReporter(streams.Err, programName),
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName + " [OPTION]... PATTERN [FILE]",
		Short: "Highlight PATTERN using ANSI escape sequences",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.reporter.SetDebug(a.flags.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	a.flags.register(rootCmd.Flags())
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf(err.Error())
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		a.help(cmd)
	})
	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		a.hint(cmd.ErrOrStderr())
		return nil
	})
	rootCmd.SetIn(a.streams.In)
	rootCmd.SetOut(a.streams.Out)
	rootCmd.SetErr(a.streams.Err)
	return rootCmd
}

// Run executes highlight with args and returns the exit status.
func Run(args []string, streams Streams, env map[string]string) int {
	if args == nil {
		args = []string{}
	}
	a := newApp(streams, env)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		a.report(err)
		return ExitError
	}
	return a.status
}

// Execute runs the root command against the process streams and exits.
func Execute() {
	streams := Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	os.Exit(Run(os.Args[1:], streams, format.EnvMap(os.Environ())))
}

func (a *app) report(err error) {
	var usage *UsageError
	if errors.As(err, &usage) {
		if usage.Msg != "" {
			a.reporter.Error(usage.Msg)
		}
		a.hint(a.streams.Err)
		return
	}
	a.reporter.Errorf("%v", err)
}
