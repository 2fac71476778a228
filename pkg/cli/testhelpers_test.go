package cli_test

import (
	"context"
	"testing"

	tu "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"

	"github.com/jlrickert/datadigest/pkg/cli"
)

// NewSandbox returns a jailed runtime whose working directory is the test
// user's home, so relative paths and the default config file resolve there.
func NewSandbox(t *testing.T, opts ...tu.Option) *tu.Sandbox {
	sb := tu.NewSandbox(t, &tu.Options{
		Home: "/home/testuser",
		User: "testuser",
	}, opts...)
	sb.Setwd("~")
	return sb
}

func NewProcess(t *testing.T, isTTY bool, args ...string) *tu.Process {
	return tu.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.Run(ctx, rt, args)
	}, isTTY)
}
