// Package load reads dataset files (CSV, JSON, YAML and Markdown tables)
// into the in-memory shapes of package dataset.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

// Input formats.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "md"
)

var (
	// ErrParse is wrapped by every decode failure.
	ErrParse = errors.New("unable to parse")

	// ErrKind reports a file whose content cannot be shaped into the
	// requested dataset kind.
	ErrKind = errors.New("dataset kind not supported by input")
)

// Options controls how a file is read.
type Options struct {
	// Format forces the input format. Empty infers it from the extension.
	Format string

	// Kind is the dataset kind to produce. Zero keeps the natural kind of
	// the content: row tables for tabular input, arrays or array maps
	// otherwise.
	Kind dataset.Kind

	// Delimiter separates CSV fields. Zero means ','.
	Delimiter rune
	// Comment marks CSV lines to skip. Zero disables comments.
	Comment rune
	// NoHeader treats the first CSV line as data.
	NoHeader bool
}

// FormatFromPath infers an input format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: cannot infer format of %q", ErrParse, path)
}

// ResolveOptions fills in the format of opts from the extension of path when
// it is unset. A .tsv file also defaults the delimiter to a tab.
func ResolveOptions(path string, opts Options) (Options, error) {
	if opts.Format != "" {
		return opts, nil
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return opts, err
	}
	opts.Format = f
	if strings.EqualFold(filepath.Ext(path), ".tsv") && opts.Delimiter == 0 {
		opts.Delimiter = '\t'
	}
	return opts, nil
}

// File reads path and shapes it per opts.
func File(path string, opts Options) (dataset.Dataset, error) {
	opts, err := ResolveOptions(path, opts)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ds, err := Bytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Reader reads all of r and shapes it per opts. opts.Format is required.
func Reader(r io.Reader, opts Options) (dataset.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Bytes(data, opts)
}

// Bytes decodes data per opts. opts.Format is required.
func Bytes(data []byte, opts Options) (dataset.Dataset, error) {
	var (
		ds  dataset.Dataset
		err error
	)
	switch opts.Format {
	case FormatCSV:
		ds, err = readCSV(bytes.NewReader(data), opts)
	case FormatJSON:
		ds, err = readJSON(data)
	case FormatYAML:
		ds, err = readYAML(data)
	case FormatMarkdown:
		ds, err = readMarkdown(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrParse, opts.Format)
	}
	if err != nil {
		return nil, err
	}
	return Convert(ds, opts.Kind)
}

// Convert reshapes ds into kind. Row tables convert to column and binary
// tables; an array converts to an array map holding it under "features".
func Convert(ds dataset.Dataset, kind dataset.Kind) (dataset.Dataset, error) {
	if kind == 0 || ds.Kind() == kind {
		return ds, nil
	}

	switch v := ds.(type) {
	case *dataset.RowTable:
		switch kind {
		case dataset.KindColumnTable:
			return dataset.ColumnTableFromRows(v), nil
		case dataset.KindBinaryTable:
			ct := dataset.ColumnTableFromRows(v)
			return &dataset.BinaryTable{Schema: ct.Schema, NumRows: v.Len()}, nil
		}
	case *dataset.Array:
		if kind == dataset.KindArrayMap {
			return dataset.ArrayMap{"features": v}, nil
		}
	case dataset.ArrayMap:
		if keys := v.Keys(); kind == dataset.KindArray && len(keys) == 1 {
			return v[keys[0]], nil
		}
	}
	return nil, fmt.Errorf("%w: cannot use %s content as %s", ErrKind, ds.Kind(), kind)
}
