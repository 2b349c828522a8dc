// Package app maps a command line onto a design run and an exit code.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"prdesign/internal/appcore"
	"prdesign/internal/cli"
	"prdesign/internal/config"
	"prdesign/internal/writers"
)

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	code := appcore.ExitOK
	root := cli.NewRootCommand(func(cmd *cobra.Command, cfg config.Config) error {
		code = appcore.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		return nil
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	switch {
	case err == nil:
		return code
	case writers.IsBrokenPipe(err):
		return appcore.ExitOK
	case errors.Is(err, context.Canceled):
		return appcore.ExitCancelled
	}

	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	var ue *cli.UsageError
	if errors.As(err, &ue) || errors.Is(err, config.ErrInvalid) {
		_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return appcore.ExitUsage
	}
	return appcore.ExitIO
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
