package dataset

import "fmt"

// DType is the element type of a row-table column or an array.
type DType int

const (
	DTypeObject DType = iota
	DTypeString
	DTypeInt64
	DTypeFloat64
	DTypeBool
	DTypeDatetime
)

func (d DType) String() string {
	switch d {
	case DTypeObject:
		return "object"
	case DTypeString:
		return "string"
	case DTypeInt64:
		return "int64"
	case DTypeFloat64:
		return "float64"
	case DTypeBool:
		return "bool"
	case DTypeDatetime:
		return "datetime"
	default:
		return fmt.Sprintf("dtype(%d)", int(d))
	}
}

// IsText reports whether values of d are strings.
func (d DType) IsText() bool { return d == DTypeString }

// IsNumeric reports whether d is an integer or floating point type. Booleans
// are not numeric.
func (d DType) IsNumeric() bool { return d == DTypeInt64 || d == DTypeFloat64 }

// TextOrNumeric is a column selector keeping text and numeric columns.
func TextOrNumeric(d DType) bool { return d.IsText() || d.IsNumeric() }

// DataType is a column-store column type. Name is its display form, which is
// hashed verbatim, e.g. "Int64" or "Datetime(time_unit='us', time_zone=None)".
type DataType struct {
	Name string
}

func (t DataType) String() string { return t.Name }

// Common column-store types.
var (
	TypeInt64    = DataType{Name: "Int64"}
	TypeFloat64  = DataType{Name: "Float64"}
	TypeString   = DataType{Name: "String"}
	TypeBoolean  = DataType{Name: "Boolean"}
	TypeDatetime = DataType{Name: "Datetime(time_unit='us', time_zone=None)"}
	TypeObject   = DataType{Name: "Object"}
)

// DataTypeOf maps a DType to the matching column-store type.
func DataTypeOf(d DType) DataType {
	switch d {
	case DTypeString:
		return TypeString
	case DTypeInt64:
		return TypeInt64
	case DTypeFloat64:
		return TypeFloat64
	case DTypeBool:
		return TypeBoolean
	case DTypeDatetime:
		return TypeDatetime
	default:
		return TypeObject
	}
}
