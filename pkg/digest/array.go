package digest

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/jlrickert/datadigest/pkg/dataset"
)

// ForArray digests a features input and an optional targets input. Either
// may be a single array or a mapping of named arrays; mappings are visited in
// ascending key order. A nil input is skipped.
//
// Elements that cannot be content-hashed degrade to hashing the trimmed
// element count. The full shape is hashed in every case.
func (d *Digester) ForArray(features, targets dataset.ArrayInput) (string, error) {
	var elements []Element
	for _, in := range []dataset.ArrayInput{features, targets} {
		for _, a := range dataset.Arrays(in) {
			if err := a.Validate(); err != nil {
				return "", fmt.Errorf("array digest: %w", err)
			}
			elements = appendArray(elements, a)
		}
	}
	return d.Finish(elements)
}

// ForArray digests arrays with the default Digester.
func ForArray(features, targets dataset.ArrayInput) (string, error) {
	return Default.ForArray(features, targets)
}

func appendArray(elements []Element, a *dataset.Array) []Element {
	flat := a.Flatten()
	trimmed := flat[:min(len(flat), MaxRows)]

	if AllHashable(trimmed) {
		elements = append(elements, hashElements(trimmed))
	} else {
		elements = append(elements, Int64(len(trimmed)))
	}

	for _, dim := range a.Shape {
		elements = append(elements, Int64(dim))
	}
	return elements
}

func hashElements(vs []any) Uint64s {
	out := make(Uint64s, len(vs))
	var buf []byte
	for i, v := range vs {
		buf = appendValue(buf[:0], v)
		out[i] = xxhash.Sum64(buf)
	}
	return out
}
