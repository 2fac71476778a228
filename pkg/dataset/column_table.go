package dataset

// SchemaField is one column of a column-store schema.
type SchemaField struct {
	Name string
	Type DataType
}

// ColumnTable is a column-store table. Columns[i] holds the values of
// Schema[i]; all columns have the same length.
type ColumnTable struct {
	Schema  []SchemaField
	Columns [][]any
}

func (t *ColumnTable) Kind() Kind { return KindColumnTable }

// Len returns the number of rows.
func (t *ColumnTable) Len() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Row gathers the i-th value of every column into dst and returns it.
// dst is reused when it has enough capacity.
func (t *ColumnTable) Row(i int, dst []any) []any {
	dst = dst[:0]
	for _, col := range t.Columns {
		dst = append(dst, col[i])
	}
	return dst
}

// Validate checks the schema and columns agree.
func (t *ColumnTable) Validate() error {
	if len(t.Columns) != len(t.Schema) {
		return shapeErrorf("%d columns for %d schema fields", len(t.Columns), len(t.Schema))
	}
	n := t.Len()
	for i, col := range t.Columns {
		if len(col) != n {
			return shapeErrorf("column %q has %d values, want %d", t.Schema[i].Name, len(col), n)
		}
	}
	return nil
}

// ColumnTableFromRows converts a row table into column-store layout.
func ColumnTableFromRows(rt *RowTable) *ColumnTable {
	ct := &ColumnTable{
		Schema:  make([]SchemaField, len(rt.Columns)),
		Columns: make([][]any, len(rt.Columns)),
	}
	for i, c := range rt.Columns {
		ct.Schema[i] = SchemaField{Name: c.Name, Type: DataTypeOf(c.DType)}
		col := make([]any, len(rt.Rows))
		for r, row := range rt.Rows {
			col[r] = row[i]
		}
		ct.Columns[i] = col
	}
	return ct
}
