// Package dataset defines the in-memory dataset shapes that can be digested.
//
// Each shape is one variant of the Dataset union. Values are borrowed by the
// digest package for the duration of a single call and are never mutated.
package dataset

import (
	"errors"
	"fmt"
)

// MaxRows bounds how many rows (or flattened elements) contribute content to
// a digest. Full sizes and shapes are still hashed.
const MaxRows = 10000

// Kind identifies a Dataset variant.
type Kind int

const (
	KindRowTable Kind = iota + 1
	KindColumnTable
	KindBinaryTable
	KindArray
	KindArrayMap
)

func (k Kind) String() string {
	switch k {
	case KindRowTable:
		return "row"
	case KindColumnTable:
		return "column"
	case KindBinaryTable:
		return "binary"
	case KindArray:
		return "array"
	case KindArrayMap:
		return "array-map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a name produced by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "row":
		return KindRowTable, nil
	case "column":
		return KindColumnTable, nil
	case "binary":
		return KindBinaryTable, nil
	case "array":
		return KindArray, nil
	case "array-map":
		return KindArrayMap, nil
	}
	return 0, fmt.Errorf("unknown dataset kind %q", s)
}

// Dataset is implemented by every digestible dataset shape.
type Dataset interface {
	Kind() Kind
}

var (
	// ErrShape reports data that does not agree with its declared shape or
	// schema.
	ErrShape = errors.New("dataset shape mismatch")
)

func shapeErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShape, fmt.Sprintf(format, args...))
}

var (
	_ Dataset = (*RowTable)(nil)
	_ Dataset = (*ColumnTable)(nil)
	_ Dataset = (*BinaryTable)(nil)
	_ Dataset = (*Array)(nil)
	_ Dataset = ArrayMap(nil)
)
