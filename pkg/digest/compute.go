package digest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jlrickert/datadigest/pkg/dataset"
	"github.com/jlrickert/datadigest/pkg/log"
)

// Compute digests ds with the operation matching its kind. Arrays and array
// maps are digested as features with no targets.
func (d *Digester) Compute(ctx context.Context, ds dataset.Dataset) (string, error) {
	lg := log.FromContext(ctx)

	var (
		sum string
		err error
	)
	switch v := ds.(type) {
	case *dataset.RowTable:
		sum, err = d.ForRowTable(v)
	case *dataset.ColumnTable:
		sum, err = ForColumnTable(v)
	case *dataset.BinaryTable:
		sum, err = ForBinaryTable(v)
	case *dataset.Array:
		sum, err = d.ForArray(v, nil)
	case dataset.ArrayMap:
		sum, err = d.ForArray(v, nil)
	case nil:
		return "", NewInvalidArgumentError("nil dataset")
	default:
		return "", NewInvalidArgumentError(fmt.Sprintf("unsupported dataset type %T", ds))
	}
	if err != nil {
		lg.Debug("digest failed",
			slog.String("kind", ds.Kind().String()),
			slog.Any("error", err))
		return "", err
	}

	lg.Debug("digest computed",
		slog.String("kind", ds.Kind().String()),
		slog.String("algorithm", string(d.Algorithm)),
		slog.String("digest", sum))
	return sum, nil
}

// Compute digests ds with the default Digester.
func Compute(ctx context.Context, ds dataset.Dataset) (string, error) {
	return Default.Compute(ctx, ds)
}
