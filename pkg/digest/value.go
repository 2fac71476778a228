package digest

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"
)

// Cell type tags. Values of the same logical type encode identically no
// matter which Go type carries them (int and int64, float32 and float64).
const (
	tagNull byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagTime
	tagOther
)

var timeType = reflect.TypeOf(time.Time{})

// Hashable reports whether v can be content-hashed element-wise. Scalars
// (nil, booleans, integers, floats, strings, byte slices, time.Time) are
// hashable; slices, maps, structs and other composites are not.
func Hashable(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	case reflect.Slice:
		return rv.Type().Elem().Kind() == reflect.Uint8
	case reflect.Struct:
		return rv.Type() == timeType
	}
	return false
}

// AllHashable reports whether every element of vs is Hashable.
func AllHashable(vs []any) bool {
	for _, v := range vs {
		if !Hashable(v) {
			return false
		}
	}
	return true
}

// appendValue appends the tagged encoding of v to buf.
func appendValue(buf []byte, v any) []byte {
	if v == nil {
		return append(buf, tagNull)
	}
	if t, ok := v.(time.Time); ok {
		buf = append(buf, tagTime)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Unix()))
		return binary.LittleEndian.AppendUint32(buf, uint32(t.Nanosecond()))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return append(buf, tagBool, 1)
		}
		return append(buf, tagBool, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf = append(buf, tagInt)
		return binary.LittleEndian.AppendUint64(buf, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			buf = append(buf, tagInt)
		} else {
			buf = append(buf, tagUint)
		}
		return binary.LittleEndian.AppendUint64(buf, u)
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			f = math.NaN()
		case f == 0:
			f = 0 // fold -0 into +0
		}
		buf = append(buf, tagFloat)
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
	case reflect.String:
		s := rv.String()
		buf = append(buf, tagString)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s)))
		return append(buf, s...)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := rv.Bytes()
			buf = append(buf, tagBytes)
			buf = binary.LittleEndian.AppendUint64(buf, uint64(len(b)))
			return append(buf, b...)
		}
	}

	// Composite cells only reach here from column-store object columns.
	// fmt prints map keys sorted, so the text form is deterministic.
	s := fmt.Sprintf("%v", v)
	buf = append(buf, tagOther)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s)))
	return append(buf, s...)
}
