package load

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

func readCSV(r io.Reader, opts Options) (*dataset.RowTable, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.Comment = opts.Comment

	var (
		names []string
		cells [][]string
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %w", ErrParse, err)
		}
		if names == nil && !opts.NoHeader {
			names = append([]string(nil), rec...)
			continue
		}
		cells = append(cells, rec)
	}

	if names == nil {
		width := 0
		if len(cells) > 0 {
			width = len(cells[0])
		}
		names = make([]string, width)
		for i := range names {
			names[i] = "col" + strconv.Itoa(i)
		}
	}
	return tableFromStrings(names, cells), nil
}

// tableFromStrings builds a row table from text cells, inferring one type per
// column. Empty cells become nil.
func tableFromStrings(names []string, cells [][]string) *dataset.RowTable {
	rt := &dataset.RowTable{
		Columns: make([]dataset.Field, len(names)),
		Rows:    make([][]any, len(cells)),
	}
	for r := range cells {
		rt.Rows[r] = make([]any, len(names))
	}

	col := make([]string, len(cells))
	for c, name := range names {
		for r, rec := range cells {
			col[r] = ""
			if c < len(rec) {
				col[r] = rec[c]
			}
		}
		dtype, values := inferColumn(col)
		rt.Columns[c] = dataset.Field{Name: name, DType: dtype}
		for r, v := range values {
			rt.Rows[r][c] = v
		}
	}
	return rt
}

// inferColumn picks the narrowest type every non-empty value parses as:
// int64, then float64, then bool, then RFC 3339 datetime, then string.
func inferColumn(raw []string) (dataset.DType, []any) {
	parsers := []struct {
		dtype dataset.DType
		parse func(string) (any, bool)
	}{
		{dataset.DTypeInt64, parseInt},
		{dataset.DTypeFloat64, parseFloat},
		{dataset.DTypeBool, parseBool},
		{dataset.DTypeDatetime, parseTime},
	}

	out := make([]any, len(raw))
	for _, p := range parsers {
		ok, seen := true, false
		for i, s := range raw {
			s = strings.TrimSpace(s)
			if s == "" {
				out[i] = nil
				continue
			}
			v, good := p.parse(s)
			if !good {
				ok = false
				break
			}
			out[i] = v
			seen = true
		}
		if ok && seen {
			return p.dtype, out
		}
	}

	for i, s := range raw {
		if strings.TrimSpace(s) == "" {
			out[i] = nil
		} else {
			out[i] = s
		}
	}
	return dataset.DTypeString, out
}

func parseInt(s string) (any, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

func parseFloat(s string) (any, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func parseBool(s string) (any, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return nil, false
}

func parseTime(s string) (any, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	return t.UTC(), err == nil
}
