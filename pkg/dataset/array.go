package dataset

import (
	"math"
	"slices"
	"sort"
)

// Array is an n-dimensional array stored flat in row-major order.
type Array struct {
	Shape []int
	Data  []any
}

// ArrayMap is a set of named arrays.
type ArrayMap map[string]*Array

// ArrayInput is accepted wherever either a single array or a mapping of named
// arrays may be digested. A nil ArrayInput means the side is absent.
type ArrayInput interface {
	Dataset
	arrays() []*Array
}

// NewArray builds an array and checks that data fills shape exactly.
func NewArray(shape []int, data []any) (*Array, error) {
	a := &Array{Shape: shape, Data: data}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Vector builds a one-dimensional array over data.
func Vector(data ...any) *Array {
	return &Array{Shape: []int{len(data)}, Data: data}
}

func (a *Array) Kind() Kind { return KindArray }

// Size returns the number of elements implied by the shape, or -1 when the
// product of the dimensions does not fit in an int.
func (a *Array) Size() int {
	if slices.Contains(a.Shape, 0) {
		return 0
	}
	n := 1
	for _, d := range a.Shape {
		if d < 0 || n > math.MaxInt/d {
			return -1
		}
		n *= d
	}
	return n
}

// Flatten returns the elements in row-major order. The slice is shared.
func (a *Array) Flatten() []any { return a.Data }

// Validate checks that the shape is non-negative and matches the data.
func (a *Array) Validate() error {
	for i, d := range a.Shape {
		if d < 0 {
			return shapeErrorf("dimension %d is negative (%d)", i, d)
		}
	}
	n := a.Size()
	if n < 0 {
		return shapeErrorf("shape %v overflows the element count", a.Shape)
	}
	if n != len(a.Data) {
		return shapeErrorf("shape %v holds %d elements, data has %d", a.Shape, n, len(a.Data))
	}
	return nil
}

func (a *Array) arrays() []*Array {
	if a == nil {
		return nil
	}
	return []*Array{a}
}

func (m ArrayMap) Kind() Kind { return KindArrayMap }

// Keys returns the array names in ascending order.
func (m ArrayMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m ArrayMap) arrays() []*Array {
	out := make([]*Array, 0, len(m))
	for _, k := range m.Keys() {
		if a := m[k]; a != nil {
			out = append(out, a)
		}
	}
	return out
}

// Arrays expands an input into its arrays in digest order. A nil input
// yields nil.
func Arrays(in ArrayInput) []*Array {
	if in == nil {
		return nil
	}
	return in.arrays()
}
