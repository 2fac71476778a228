package digest_test

import (
	"context"
	"testing"

	"github.com/jlrickert/datadigest/pkg/dataset"
	"github.com/jlrickert/datadigest/pkg/digest"
	"github.com/jlrickert/datadigest/pkg/log"
	"github.com/stretchr/testify/require"
)

func TestCompute_DispatchesByKind(t *testing.T) {
	t.Parallel()

	lg, th := log.NewTestLogger(t)
	ctx := log.ContextWithLogger(context.Background(), lg)

	rowWant, err := digest.ForRowTable(abTable())
	require.NoError(t, err)
	colWant, err := digest.ForColumnTable(abColumns())
	require.NoError(t, err)
	arrWant, err := digest.ForArray(grid(2, 3), nil)
	require.NoError(t, err)

	got, err := digest.Compute(ctx, abTable())
	require.NoError(t, err)
	require.Equal(t, rowWant, got)

	got, err = digest.Compute(ctx, abColumns())
	require.NoError(t, err)
	require.Equal(t, colWant, got)

	got, err = digest.Compute(ctx, grid(2, 3))
	require.NoError(t, err)
	require.Equal(t, arrWant, got)

	got, err = digest.Compute(ctx, dataset.ArrayMap{"x": grid(2, 3)})
	require.NoError(t, err)
	require.Equal(t, arrWant, got)

	_, err = digest.Compute(ctx, &dataset.BinaryTable{})
	require.True(t, digest.IsUnimplemented(err))

	_, err = digest.Compute(ctx, nil)
	require.True(t, digest.IsInvalidArgument(err))

	for name, ds := range map[string]dataset.Dataset{
		"row table":    (*dataset.RowTable)(nil),
		"column table": (*dataset.ColumnTable)(nil),
		"array":        (*dataset.Array)(nil),
	} {
		_, err = digest.Compute(ctx, ds)
		require.True(t, digest.IsInvalidArgument(err), "typed nil %s: %v", name, err)
	}

	entries := log.FindEntries(th, func(e log.LoggedEntry) bool { return e.Msg == "digest computed" })
	require.Len(t, entries, 4)
	require.Equal(t, "row", entries[0].Attrs["kind"])
	require.Equal(t, rowWant, entries[0].Attrs["digest"])
}
