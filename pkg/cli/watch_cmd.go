package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"

	"github.com/jlrickert/datadigest/pkg/dataset"
	"github.com/jlrickert/datadigest/pkg/log"
)

func NewWatchCmd(deps *Deps) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the digest of FILE now and again whenever it changes",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := dataset.ParseKind(kindName)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}

			path := args[0]
			compute := func(ctx context.Context) (Result, error) {
				if kind == dataset.KindArray {
					return digestArrays(ctx, deps, path)
				}
				return digestFile(ctx, deps, path, kind)
			}
			hostPath, err := resolveHostPath(deps.Runtime, path)
			if err != nil {
				return err
			}
			return watchFile(cmd.Context(), hostPath, compute, func(res Result) error {
				return printResult(cmd.OutOrStdout(), deps.Config.Output, res)
			})
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "row", "dataset kind: row, column or array")
	return cmd
}

// resolveHostPath maps a runtime path to the path fsnotify must watch on the
// host, which differs when the runtime is jailed.
func resolveHostPath(rt *toolkit.Runtime, path string) (string, error) {
	resolved, err := rt.ResolvePath(path, true)
	if err != nil {
		return "", fmt.Errorf("resolve watch path: %w", err)
	}
	if jail := strings.TrimSpace(rt.GetJail()); jail != "" {
		trimmed := strings.TrimPrefix(resolved, string(filepath.Separator))
		return filepath.Join(jail, trimmed), nil
	}
	return resolved, nil
}

// watchFile emits the result of compute once, then again each time the file
// changes and its digest differs from the last one emitted. Compute failures
// after the first are logged and the loop keeps going, since files are
// often briefly invalid while being rewritten. It returns nil when ctx ends.
func watchFile(
	ctx context.Context,
	path string,
	compute func(context.Context) (Result, error),
	emit func(Result) error,
) error {
	lg := log.FromContext(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are still seen.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	res, err := compute(ctx)
	if err != nil {
		return err
	}
	if err := emit(res); err != nil {
		return err
	}
	last := res.Digest

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target ||
				!(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			res, err := compute(ctx)
			if err != nil {
				lg.Warn("digest failed", slog.String("path", path), slog.Any("error", err))
				continue
			}
			if res.Digest == last {
				continue
			}
			last = res.Digest
			if err := emit(res); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			lg.Warn("watch error", slog.String("path", path), slog.Any("error", err))
		}
	}
}
