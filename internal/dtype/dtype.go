// Package dtype enumerates the element data types supported by ndarray
// buffers, along with their byte widths, single-letter character codes,
// and casting rules.
package dtype

// DataType identifies the numeric encoding and width of a buffer element.
//
// The numeric values are stable across versions and form part of the ABI
// for callers bridging to this library.
type DataType int

// Supported data types, in registry order.
const (
	// Boolean data types:
	Bool DataType = iota

	// Integer data types:
	Int8
	Uint8
	Uint8C
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Int128
	Uint128
	Int256
	Uint256

	// Floating-point data types:
	Float16
	BFloat16
	Float32
	Float64
	Float128

	// Complex floating-point data types:
	Complex64
	Complex128

	// Raw binary data:
	Binary

	// Generic host objects:
	Generic

	// NumDTypes is the number of supported data types.
	NumDTypes

	// None is a signaling value guaranteed not to be a valid data type.
	None

	// UserDefined marks the start of the reserved range for user-defined
	// type numbers.
	UserDefined DataType = 256
)

// Size returns the byte width of a single element.
//
// Variable-width and opaque types (Generic) and unknown tags report 0.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8, Uint8C, Binary:
		return 1
	case Int16, Uint16, Float16, BFloat16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Int128, Uint128, Float128, Complex128:
		return 16
	case Int256, Uint256:
		return 32
	default:
		return 0
	}
}

// Char returns the single-letter character code for a data type.
//
// The letters are part of the external contract. Unknown tags report 0.
func (dt DataType) Char() byte {
	switch dt {
	case Bool:
		return 'x'
	case Int8:
		return 's' // signed byte
	case Uint8:
		return 'b' // byte
	case Uint8C:
		return 'a'
	case Int16:
		return 'k'
	case Uint16:
		return 't'
	case Int32:
		return 'i'
	case Uint32:
		return 'u'
	case Int64:
		return 'l' // long long
	case Uint64:
		return 'v'
	case Int128:
		return 'm'
	case Uint128:
		return 'w'
	case Int256:
		return 'n'
	case Uint256:
		return 'y'
	case Float16:
		return 'h' // half-precision
	case BFloat16:
		return 'e'
	case Float32:
		return 'f'
	case Float64:
		return 'd' // double
	case Float128:
		return 'g'
	case Complex64:
		return 'c' // BLAS convention
	case Complex128:
		return 'z' // BLAS convention
	case Binary:
		return 'r' // raw
	case Generic:
		return 'o'
	default:
		return 0
	}
}

// FromChar resolves a character code to its data type.
// Returns None for unrecognized codes.
func FromChar(c byte) DataType {
	for dt := Bool; dt < NumDTypes; dt++ {
		if dt.Char() == c {
			return dt
		}
	}
	return None
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Uint8C:
		return "uint8c"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Int128:
		return "int128"
	case Uint128:
		return "uint128"
	case Int256:
		return "int256"
	case Uint256:
		return "uint256"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float128:
		return "float128"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	case Binary:
		return "binary"
	case Generic:
		return "generic"
	default:
		return "unknown"
	}
}

// FromString resolves a data type name to its tag.
// Returns None for unrecognized names.
func FromString(s string) DataType {
	for dt := Bool; dt < NumDTypes; dt++ {
		if dt.String() == s {
			return dt
		}
	}
	return None
}

// IsValid reports whether dt is a member of the registry.
func (dt DataType) IsValid() bool {
	return dt >= Bool && dt < NumDTypes
}

// IsBoolean reports whether dt is a boolean type.
func (dt DataType) IsBoolean() bool {
	return dt == Bool
}

// IsSignedInteger reports whether dt is a signed integer type.
func (dt DataType) IsSignedInteger() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Int128, Int256:
		return true
	}
	return false
}

// IsUnsignedInteger reports whether dt is an unsigned integer type.
func (dt DataType) IsUnsignedInteger() bool {
	switch dt {
	case Uint8, Uint8C, Uint16, Uint32, Uint64, Uint128, Uint256:
		return true
	}
	return false
}

// IsInteger reports whether dt is an integer type of either signedness.
func (dt DataType) IsInteger() bool {
	return dt.IsSignedInteger() || dt.IsUnsignedInteger()
}

// IsFloatingPoint reports whether dt is a real floating-point type.
func (dt DataType) IsFloatingPoint() bool {
	switch dt {
	case Float16, BFloat16, Float32, Float64, Float128:
		return true
	}
	return false
}

// IsComplex reports whether dt is a complex floating-point type.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsNumeric reports whether dt is an integer, floating-point, or complex
// type.
func (dt DataType) IsNumeric() bool {
	return dt.IsInteger() || dt.IsFloatingPoint() || dt.IsComplex()
}

// IsBinary reports whether dt is the raw binary type.
func (dt DataType) IsBinary() bool {
	return dt == Binary
}

// IsGeneric reports whether dt is the generic host-object type.
func (dt DataType) IsGeneric() bool {
	return dt == Generic
}

// IntegerRange reports the representable value range for fixed-width
// integer data types up to 64 bits. ok is false for all other types.
func IntegerRange(dt DataType) (min int64, max uint64, ok bool) {
	switch dt {
	case Int8:
		return -128, 127, true
	case Uint8, Uint8C:
		return 0, 255, true
	case Int16:
		return -32768, 32767, true
	case Uint16:
		return 0, 65535, true
	case Int32:
		return -2147483648, 2147483647, true
	case Uint32:
		return 0, 4294967295, true
	case Int64:
		return -9223372036854775808, 9223372036854775807, true
	case Uint64:
		return 0, 18446744073709551615, true
	}
	return 0, 0, false
}
