package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"
)

// ErrUsage marks command line misuse. Run maps it to exit code 2.
var ErrUsage = errors.New("usage error")

// Run executes the CLI against the streams, environment and filesystem of rt
// and returns the exit code.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	if rt == nil {
		return 1, fmt.Errorf("runtime is required")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &Deps{Runtime: rt}
	defer func() {
		if deps.Shutdown != nil {
			deps.Shutdown()
		}
	}()

	streams := rt.Stream()
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return ExitCode(err), err
	}
	return 0, nil
}

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 2
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return 130
	}
	return 1
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return rangeArgs(n, n)
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			if lo == hi {
				return fmt.Errorf("%w: %s accepts %d arg(s), received %d", ErrUsage, cmd.CommandPath(), lo, len(args))
			}
			return fmt.Errorf("%w: %s accepts %d to %d args, received %d", ErrUsage, cmd.CommandPath(), lo, hi, len(args))
		}
		return nil
	}
}
