package cli

// NewRootCmd builds the root cobra command and wires persistent flags. The
// PersistentPreRunE loads configuration, applies flag overrides and installs
// a logger only when the incoming context does not already carry one (tests
// pass their own).
import (
	"fmt"
	"os"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"

	"github.com/jlrickert/datadigest/pkg/config"
	"github.com/jlrickert/datadigest/pkg/digest"
	"github.com/jlrickert/datadigest/pkg/log"
)

type Deps struct {
	Shutdown func()
	Runtime  *toolkit.Runtime

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	Algorithm string
	Format    string
	JSON      bool
	NoHeader  bool

	Config   *config.Config
	Digester *digest.Digester
}

func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:           "datadigest",
		Short:         "Compute stable content digests of dataset files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			wd, err := rt.Env().Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(rt, deps.ConfigPath, wd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("algorithm") {
				cfg.Algorithm = deps.Algorithm
			}
			if flags.Changed("format") {
				cfg.Format = deps.Format
			}
			if flags.Changed("json") && deps.JSON {
				cfg.Output = config.OutputJSON
			}
			if flags.Changed("no-header") {
				cfg.CSV.NoHeader = deps.NoHeader
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			alg, err := digest.ParseAlgorithm(cfg.Algorithm)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			deps.Config = cfg
			deps.Digester = digest.New(alg)

			if !log.HasLogger(ctx) {
				// create a logger out-> stderr or file
				out := cmd.ErrOrStderr()
				if deps.LogFile != "" {
					f, err := os.OpenFile(deps.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
					if err != nil {
						return err
					}
					deps.Shutdown = func() { _ = f.Close() }
					out = f
				}
				lg := log.NewLogger(log.LoggerConfig{
					Out:     out,
					Level:   log.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
					Version: Version,
				})
				ctx = log.ContextWithLogger(ctx, lg)
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&deps.LogFile, "log-file", "", "write logs to file (default stderr)")
	pf.StringVar(&deps.LogLevel, "log-level", "warn", "minimum log level")
	pf.BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")
	pf.StringVarP(&deps.ConfigPath, "config", "c", "", "path to config file (default ./"+config.DefaultFileName+")")
	pf.StringVar(&deps.Algorithm, "algorithm", string(digest.MD5), "finisher hash: md5 or blake3")
	pf.StringVarP(&deps.Format, "format", "f", "", "input format: csv, json, yaml or md (default from extension)")
	pf.BoolVar(&deps.JSON, "json", false, "print results as JSON")
	pf.BoolVar(&deps.NoHeader, "no-header", false, "treat the first CSV line as data")

	cmd.AddCommand(
		NewRowCmd(deps),
		NewColumnCmd(deps),
		NewBinaryCmd(deps),
		NewArrayCmd(deps),
		NewWatchCmd(deps),
		NewVersionCmd(),
	)

	return cmd
}
