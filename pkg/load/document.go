package load

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

func readJSON(data []byte) (dataset.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrParse, err)
	}
	return fromDocument(doc)
}

func readYAML(data []byte) (dataset.Dataset, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	return fromDocument(doc)
}

// fromDocument shapes a decoded JSON or YAML document:
//
//   - a list of objects is a row table (columns in ascending key order)
//   - any other list is an array, its shape inferred from nesting
//   - an object whose values are all lists is an array map
func fromDocument(doc any) (dataset.Dataset, error) {
	switch v := doc.(type) {
	case []any:
		if len(v) > 0 && allRecords(v) {
			return recordsTable(v), nil
		}
		return listArray(v), nil
	case map[string]any:
		m := dataset.ArrayMap{}
		for k, item := range v {
			list, ok := item.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: value of %q is not a list", ErrKind, k)
			}
			m[k] = listArray(list)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: top level must be a list or an object of lists, got %T", ErrKind, doc)
}

func allRecords(list []any) bool {
	for _, item := range list {
		if _, ok := item.(map[string]any); !ok {
			return false
		}
	}
	return true
}

func recordsTable(list []any) *dataset.RowTable {
	seen := map[string]bool{}
	var names []string
	for _, item := range list {
		for k := range item.(map[string]any) {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	sort.Strings(names)

	rt := &dataset.RowTable{
		Columns: make([]dataset.Field, len(names)),
		Rows:    make([][]any, len(list)),
	}
	for r, item := range list {
		rec := item.(map[string]any)
		row := make([]any, len(names))
		for c, name := range names {
			row[c] = scalar(rec[name])
		}
		rt.Rows[r] = row
	}
	for c, name := range names {
		rt.Columns[c] = dataset.Field{Name: name, DType: columnType(rt.Rows, c)}
	}
	return rt
}

// columnType infers a column's type from decoded values. Integer columns
// that also hold floats are widened to float64 in place.
func columnType(rows [][]any, c int) dataset.DType {
	var ints, floats, bools, strs, other int
	for _, row := range rows {
		switch row[c].(type) {
		case nil:
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		case string:
			strs++
		default:
			other++
		}
	}

	switch {
	case other > 0:
		return dataset.DTypeObject
	case strs > 0 && ints+floats+bools == 0:
		return dataset.DTypeString
	case bools > 0 && ints+floats+strs == 0:
		return dataset.DTypeBool
	case floats > 0 && bools+strs == 0:
		for _, row := range rows {
			if n, ok := row[c].(int64); ok {
				row[c] = float64(n)
			}
		}
		return dataset.DTypeFloat64
	case ints > 0 && bools+strs == 0:
		return dataset.DTypeInt64
	case ints+floats+bools+strs == 0:
		return dataset.DTypeString
	}
	return dataset.DTypeObject
}

// listArray infers a rectangular shape from nested lists. Ragged nesting
// yields a one-dimensional array whose elements are the nested lists.
func listArray(list []any) *dataset.Array {
	if shape, data, ok := rectangular(list); ok {
		return &dataset.Array{Shape: shape, Data: data}
	}
	data := make([]any, len(list))
	for i, v := range list {
		data[i] = scalar(v)
	}
	return &dataset.Array{Shape: []int{len(list)}, Data: data}
}

func rectangular(list []any) ([]int, []any, bool) {
	if len(list) == 0 {
		return []int{0}, []any{}, true
	}

	var (
		inner []int
		data  []any
	)
	_, nested := list[0].([]any)
	for i, item := range list {
		sub, isList := item.([]any)
		if isList != nested {
			return nil, nil, false
		}
		if !nested {
			if _, isMap := item.(map[string]any); isMap {
				return nil, nil, false
			}
			data = append(data, scalar(item))
			continue
		}
		shape, subData, ok := rectangular(sub)
		if !ok {
			return nil, nil, false
		}
		if i == 0 {
			inner = shape
		} else if !equalShape(inner, shape) {
			return nil, nil, false
		}
		data = append(data, subData...)
	}

	return append([]int{len(list)}, inner...), data, true
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scalar normalizes decoder specific number types to int64 or float64.
func scalar(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(n), 64); err == nil {
			return f
		}
		return string(n)
	case int:
		return int64(n)
	case uint64:
		return float64(n)
	}
	return v
}
