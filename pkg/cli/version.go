package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version may be overridden at build-time with
// -ldflags "-X github.com/jlrickert/datadigest/pkg/cli.Version=v1.2.3".
var Version = "dev"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the datadigest version",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
			return err
		},
	}
}
