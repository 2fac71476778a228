package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jlrickert/datadigest/pkg/dataset"
	"github.com/jlrickert/datadigest/pkg/load"
	"github.com/jlrickert/datadigest/pkg/log"
)

// columnAlgorithm is reported for column-table digests, which do not use
// the configurable finisher.
const columnAlgorithm = "xxh3-128"

func NewRowCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "row FILE",
		Short: "Digest a file as a row-oriented table (8 hex characters)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableDigest(cmd, deps, args[0], dataset.KindRowTable)
		},
	}
}

func NewColumnCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "column FILE",
		Short: "Digest a file as a column-store table (32 hex characters)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableDigest(cmd, deps, args[0], dataset.KindColumnTable)
		},
	}
}

func NewBinaryCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "binary FILE",
		Short: "Digest a file as a columnar binary table (not yet supported)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableDigest(cmd, deps, args[0], dataset.KindBinaryTable)
		},
	}
}

func NewArrayCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "array FEATURES [TARGETS]",
		Short: "Digest a features array file and an optional targets array file",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := digestArrays(cmd.Context(), deps, args...)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), deps.Config.Output, res)
		},
	}
}

func runTableDigest(cmd *cobra.Command, deps *Deps, path string, kind dataset.Kind) error {
	res, err := digestFile(cmd.Context(), deps, path, kind)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), deps.Config.Output, res)
}

func loadOptions(deps *Deps, kind dataset.Kind) load.Options {
	cfg := deps.Config
	return load.Options{
		Format:    cfg.Format,
		Kind:      kind,
		Delimiter: cfg.CSV.DelimiterRune(),
		Comment:   cfg.CSV.CommentRune(),
		NoHeader:  cfg.CSV.NoHeader,
	}
}

// readDataset reads path through the runtime and shapes it as kind.
func readDataset(deps *Deps, path string, kind dataset.Kind) (dataset.Dataset, error) {
	opts, err := load.ResolveOptions(path, loadOptions(deps, kind))
	if err != nil {
		return nil, err
	}
	data, err := deps.Runtime.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ds, err := load.Bytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// digestFile loads path as kind and digests it.
func digestFile(ctx context.Context, deps *Deps, path string, kind dataset.Kind) (Result, error) {
	ds, err := readDataset(deps, path, kind)
	if err != nil {
		return Result{}, err
	}
	sum, err := deps.Digester.Compute(ctx, ds)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	alg := string(deps.Digester.Algorithm)
	if ds.Kind() == dataset.KindColumnTable {
		alg = columnAlgorithm
	}
	return Result{Path: path, Kind: ds.Kind().String(), Digest: sum, Algorithm: alg}, nil
}

// digestArrays loads paths[0] as features and, when given, paths[1] as
// targets.
func digestArrays(ctx context.Context, deps *Deps, paths ...string) (Result, error) {
	inputs := make([]dataset.ArrayInput, 2)
	for i, p := range paths {
		ds, err := readDataset(deps, p, 0)
		if err != nil {
			return Result{}, err
		}
		in, ok := ds.(dataset.ArrayInput)
		if !ok {
			return Result{}, fmt.Errorf("%s: %w: %s content is not an array", p, load.ErrKind, ds.Kind())
		}
		inputs[i] = in
	}

	sum, err := deps.Digester.ForArray(inputs[0], inputs[1])
	if err != nil {
		return Result{}, err
	}
	log.FromContext(ctx).Debug("array digest computed",
		slog.Any("paths", paths),
		slog.String("digest", sum))

	return Result{
		Path:      paths[0],
		Targets:   targetPath(paths),
		Kind:      dataset.KindArray.String(),
		Digest:    sum,
		Algorithm: string(deps.Digester.Algorithm),
	}, nil
}

func targetPath(paths []string) string {
	if len(paths) > 1 {
		return paths[1]
	}
	return ""
}
