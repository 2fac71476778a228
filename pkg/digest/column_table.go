package digest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

// rowHashWidth is the width each row hash is widened to before it is fed to
// the accumulator.
const rowHashWidth = 64

// ForColumnTable digests a column-store table.
//
// The schema (names, then type strings) and the row hashes of the first
// MaxRows rows feed a single 128-bit accumulator. The full hex value is
// returned; it is never truncated and is longer than other digests.
func ForColumnTable(t *dataset.ColumnTable) (string, error) {
	if t == nil {
		return "", NewInvalidArgumentError("nil column table")
	}
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("column table digest: %w", err)
	}

	acc := xxh3.New()
	for _, f := range t.Schema {
		acc.Write([]byte(f.Name))
		acc.Write([]byte(f.Type.String()))
	}

	n := min(t.Len(), MaxRows)
	var (
		row  []any
		buf  []byte
		wide [rowHashWidth]byte
	)
	for i := range n {
		row = t.Row(i, row)
		buf = buf[:0]
		for _, v := range row {
			buf = appendValue(buf, v)
		}
		binary.BigEndian.PutUint64(wide[rowHashWidth-8:], xxh3.Hash(buf))
		acc.Write(wide[:])
	}

	sum := acc.Sum128().Bytes()
	return hex.EncodeToString(sum[:]), nil
}
