package dataset

// Field names a row-table column and its element type.
type Field struct {
	Name  string
	DType DType
}

// RowTable is a row-oriented table. Every row holds one value per column, in
// column order. A nil value is a missing cell.
type RowTable struct {
	Columns []Field
	Rows    [][]any
}

func (t *RowTable) Kind() Kind { return KindRowTable }

// Len returns the number of rows.
func (t *RowTable) Len() int { return len(t.Rows) }

// Names returns every column name in column order.
func (t *RowTable) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Head returns a view over the first n rows. Rows are shared with t.
func (t *RowTable) Head(n int) *RowTable {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &RowTable{Columns: t.Columns, Rows: t.Rows[:n]}
}

// Select returns a copy holding only the columns whose type satisfies keep.
// Column order is preserved. t is left untouched.
func (t *RowTable) Select(keep func(DType) bool) *RowTable {
	idx := make([]int, 0, len(t.Columns))
	cols := make([]Field, 0, len(t.Columns))
	for i, c := range t.Columns {
		if keep(c.DType) {
			idx = append(idx, i)
			cols = append(cols, c)
		}
	}

	rows := make([][]any, len(t.Rows))
	for r, row := range t.Rows {
		out := make([]any, len(idx))
		for j, i := range idx {
			out[j] = row[i]
		}
		rows[r] = out
	}
	return &RowTable{Columns: cols, Rows: rows}
}

// Validate checks that every row has one value per column.
func (t *RowTable) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return shapeErrorf("row %d has %d values, want %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}
