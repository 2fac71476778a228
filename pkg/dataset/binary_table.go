package dataset

// BinaryTable is a columnar binary (record batch) table. Its content is
// opaque; only the schema and record count are carried.
type BinaryTable struct {
	Schema  []SchemaField
	NumRows int
}

func (t *BinaryTable) Kind() Kind { return KindBinaryTable }
