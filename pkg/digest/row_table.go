package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

// ForRowTable digests a row-oriented table.
//
// Only the first MaxRows rows and only text and numeric columns contribute
// row content. The untrimmed row count and every column name, excluded
// columns included, are always hashed.
func (d *Digester) ForRowTable(t *dataset.RowTable) (string, error) {
	if t == nil {
		return "", NewInvalidArgumentError("nil row table")
	}
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("row table digest: %w", err)
	}

	trimmed := t.Head(MaxRows).Select(dataset.TextOrNumeric)

	elements := []Element{
		hashRows(trimmed),
		Int64(t.Len()),
	}
	for _, name := range t.Names() {
		elements = append(elements, Text(name))
	}
	return d.Finish(elements)
}

// ForRowTable digests a row-oriented table with the default Digester.
func ForRowTable(t *dataset.RowTable) (string, error) {
	return Default.ForRowTable(t)
}

// hashRows returns one 64-bit hash per row. Each row hash covers the row
// position and every cell, so identical rows at different positions differ.
func hashRows(t *dataset.RowTable) Uint64s {
	out := make(Uint64s, len(t.Rows))
	h := xxhash.New()
	var buf []byte
	for i, row := range t.Rows {
		buf = binary.LittleEndian.AppendUint64(buf[:0], uint64(i))
		for _, v := range row {
			buf = appendValue(buf, v)
		}
		h.Reset()
		h.Write(buf)
		out[i] = h.Sum64()
	}
	return out
}
