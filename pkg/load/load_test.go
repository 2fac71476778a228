package load_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jlrickert/datadigest/pkg/dataset"
	"github.com/jlrickert/datadigest/pkg/digest"
	"github.com/jlrickert/datadigest/pkg/load"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func abRows() *dataset.RowTable {
	return &dataset.RowTable{
		Columns: []dataset.Field{
			{Name: "a", DType: dataset.DTypeInt64},
			{Name: "b", DType: dataset.DTypeString},
		},
		Rows: [][]any{
			{int64(1), "x"},
			{int64(2), "y"},
			{int64(3), "z"},
		},
	}
}

func TestFile_SameTableAcrossFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "csv", file: "t.csv", content: "a,b\n1,x\n2,y\n3,z\n"},
		{name: "tsv", file: "t.tsv", content: "a\tb\n1\tx\n2\ty\n3\tz\n"},
		{name: "json", file: "t.json", content: `[{"b":"x","a":1},{"a":2,"b":"y"},{"a":3,"b":"z"}]`},
		{name: "yaml", file: "t.yaml", content: "- {a: 1, b: x}\n- {a: 2, b: y}\n- {a: 3, b: z}\n"},
		{
			name: "markdown",
			file: "t.md",
			content: "# Data\n\n| a | b |\n|---|---|\n| 1 | x |\n| 2 | y |\n| 3 | z |\n",
		},
	}

	want, err := digest.ForRowTable(abRows())
	require.NoError(t, err)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ds, err := load.File(writeFile(t, tc.file, tc.content), load.Options{})
			require.NoError(t, err)
			rt, ok := ds.(*dataset.RowTable)
			require.True(t, ok, "got %T", ds)
			require.Equal(t, abRows(), rt)

			got, err := digest.ForRowTable(rt)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestResolveOptions(t *testing.T) {
	t.Parallel()

	opts, err := load.ResolveOptions("data/t.TSV", load.Options{})
	require.NoError(t, err)
	require.Equal(t, load.FormatCSV, opts.Format)
	require.Equal(t, '\t', opts.Delimiter)

	opts, err = load.ResolveOptions("t.tsv", load.Options{Delimiter: ';'})
	require.NoError(t, err)
	require.Equal(t, ';', opts.Delimiter)

	opts, err = load.ResolveOptions("no-extension", load.Options{Format: load.FormatYAML})
	require.NoError(t, err)
	require.Equal(t, load.FormatYAML, opts.Format)

	_, err = load.ResolveOptions("no-extension", load.Options{})
	require.ErrorIs(t, err, load.ErrParse)
}

func TestCSV_InferenceAndOptions(t *testing.T) {
	t.Parallel()

	raw := "# comment\nn;f;ok;when;s\n1;1.5;true;2024-01-02T03:04:05Z;hi\n;2;FALSE;;\n"
	p := writeFile(t, "x.txt", raw)
	ds, err := load.File(p, load.Options{Format: load.FormatCSV, Delimiter: ';', Comment: '#'})
	require.NoError(t, err)

	rt := ds.(*dataset.RowTable)
	require.Equal(t, []dataset.Field{
		{Name: "n", DType: dataset.DTypeInt64},
		{Name: "f", DType: dataset.DTypeFloat64},
		{Name: "ok", DType: dataset.DTypeBool},
		{Name: "when", DType: dataset.DTypeDatetime},
		{Name: "s", DType: dataset.DTypeString},
	}, rt.Columns)
	require.Equal(t, []any{nil, 2.0, false, nil, nil}, rt.Rows[1])
	require.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), rt.Rows[0][3])
}

func TestCSV_BlankCellsAreNull(t *testing.T) {
	t.Parallel()

	ds, err := load.File(writeFile(t, "x.csv", "n,s\n1,a\n  , \n"), load.Options{})
	require.NoError(t, err)

	rt := ds.(*dataset.RowTable)
	require.Equal(t, dataset.DTypeInt64, rt.Columns[0].DType)
	require.Equal(t, dataset.DTypeString, rt.Columns[1].DType)
	require.Equal(t, []any{nil, nil}, rt.Rows[1])
}

func TestCSV_NoHeader(t *testing.T) {
	t.Parallel()

	ds, err := load.File(writeFile(t, "x.csv", "1,x\n2,y\n"), load.Options{NoHeader: true})
	require.NoError(t, err)
	rt := ds.(*dataset.RowTable)
	require.Equal(t, []string{"col0", "col1"}, rt.Names())
	require.Equal(t, 2, rt.Len())
}

func TestCSV_RaggedIsParseError(t *testing.T) {
	t.Parallel()

	_, err := load.File(writeFile(t, "x.csv", "a,b\n1\n"), load.Options{})
	require.ErrorIs(t, err, load.ErrParse)
}

func TestJSON_Arrays(t *testing.T) {
	t.Parallel()

	ds, err := load.File(writeFile(t, "a.json", `[[1,2,3],[4,5,6]]`), load.Options{})
	require.NoError(t, err)
	a := ds.(*dataset.Array)
	require.Equal(t, []int{2, 3}, a.Shape)
	require.Equal(t, []any{int64(1), int64(2), int64(3), int64(4), int64(5), int64(6)}, a.Data)

	ds, err = load.File(writeFile(t, "r.json", `[[1,2],[3]]`), load.Options{})
	require.NoError(t, err)
	ragged := ds.(*dataset.Array)
	require.Equal(t, []int{2}, ragged.Shape)
	require.False(t, digest.AllHashable(ragged.Data))

	ds, err = load.File(writeFile(t, "m.json", `{"y":[0,1],"x":[[1.5],[2.5]]}`), load.Options{})
	require.NoError(t, err)
	m := ds.(dataset.ArrayMap)
	require.Equal(t, []string{"x", "y"}, m.Keys())
	require.Equal(t, []int{2, 1}, m["x"].Shape)
}

func TestYAML_MixedNumbersWiden(t *testing.T) {
	t.Parallel()

	ds, err := load.File(writeFile(t, "t.yml", "- v: 1\n- v: 2.5\n- v: null\n"), load.Options{})
	require.NoError(t, err)
	rt := ds.(*dataset.RowTable)
	require.Equal(t, dataset.DTypeFloat64, rt.Columns[0].DType)
	require.Equal(t, []any{1.0}, rt.Rows[0])
	require.Equal(t, []any{nil}, rt.Rows[2])
}

func TestConvert(t *testing.T) {
	t.Parallel()

	p := writeFile(t, "t.csv", "a,b\n1,x\n2,y\n3,z\n")

	ds, err := load.File(p, load.Options{Kind: dataset.KindColumnTable})
	require.NoError(t, err)
	ct := ds.(*dataset.ColumnTable)
	require.Equal(t, dataset.TypeInt64, ct.Schema[0].Type)
	require.Equal(t, 3, ct.Len())

	ds, err = load.File(p, load.Options{Kind: dataset.KindBinaryTable})
	require.NoError(t, err)
	require.Equal(t, 3, ds.(*dataset.BinaryTable).NumRows)

	_, err = load.File(p, load.Options{Kind: dataset.KindArray})
	require.ErrorIs(t, err, load.ErrKind)

	arr := writeFile(t, "a.json", `[1,2]`)
	ds, err = load.File(arr, load.Options{Kind: dataset.KindArrayMap})
	require.NoError(t, err)
	require.Contains(t, ds.(dataset.ArrayMap), "features")
}

func TestFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := load.File(writeFile(t, "x.parquet", "PAR1"), load.Options{})
	require.ErrorIs(t, err, load.ErrParse)

	_, err = load.File(writeFile(t, "x.json", `{"a":`), load.Options{})
	require.ErrorIs(t, err, load.ErrParse)

	_, err = load.File(writeFile(t, "x.json", `"scalar"`), load.Options{})
	require.ErrorIs(t, err, load.ErrKind)

	_, err = load.File(writeFile(t, "x.md", "no tables here\n"), load.Options{})
	require.ErrorIs(t, err, load.ErrParse)

	_, err = load.File(filepath.Join(t.TempDir(), "missing.csv"), load.Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
