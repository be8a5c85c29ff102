package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitMatch        = 1
	ExitUsageError   = 2
	ExitUnsupported  = 3
	ExitRuntimeError = 4
)

// app carries per-invocation state: bound flag values and the exit code set
// by command handlers.
type app struct {
	flags    flags
	exitCode int
}

type flags struct {
	keys          string
	addKeys       string
	replace       string
	partial       bool
	strict        bool
	ignoreUnknown bool
	format        string
	inputFormat   string
	out           string
	scanValues    bool
	logLevel      string
	failOnMatch   bool
}

// Run executes the root command and returns an exit code.
func Run() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{exitCode: ExitSuccess}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return a.exitCode
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "redactobj",
		Short: "Redact sensitive keys from JSON and YAML documents",
		Long: "redactobj copies structured documents with the values of sensitive keys " +
			"(passwords, tokens, API keys) replaced, so they can be logged or shared safely.",
	}
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(a.scrubCmd())
	root.AddCommand(a.matchCmd())
	root.AddCommand(a.configCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print redactobj version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "redactobj version %s\n", version)
		},
	}
}
