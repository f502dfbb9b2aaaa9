package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/strprof/internal/cli"
	strerrors "github.com/matzehuels/strprof/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code != exitCanceled {
			fmt.Fprintln(os.Stderr, "error:", strerrors.UserMessage(err))
		}
		os.Exit(code)
	}
}

const (
	exitFailure  = 1
	exitBadInput = 2
	exitCanceled = 130 // 128 + SIGINT
)

// exitCode separates rejected input (bad arguments, config or data files)
// from failures while producing output.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return exitCanceled
	}
	switch strerrors.GetCode(err) {
	case strerrors.ErrCodeInvalidParameter, strerrors.ErrCodeInvalidFormat,
		strerrors.ErrCodeInvalidConfig, strerrors.ErrCodeMalformedData,
		strerrors.ErrCodeFileNotFound:
		return exitBadInput
	}
	return exitFailure
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Apply the log level before the root hook loads config, so config
	// loading is logged at the requested level too.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := cli.LogInfo
		if verbose {
			level = cli.LogDebug
		}
		c.SetLogLevel(level)

		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
