package dtype

// CastingMode governs which data type conversions an operation accepts.
type CastingMode int8

// Casting modes, from most to least restrictive.
//
// CastEquiv behaves identically to CastNo: element encodings carry no
// byte-order tag, so equivalent-representation casting degenerates to
// identity.
const (
	CastNo CastingMode = iota
	CastEquiv
	CastSafe
	CastSameKind
	CastUnsafe
)

// String returns a human-readable name for the casting mode.
func (m CastingMode) String() string {
	switch m {
	case CastNo:
		return "no"
	case CastEquiv:
		return "equiv"
	case CastSafe:
		return "safe"
	case CastSameKind:
		return "same-kind"
	case CastUnsafe:
		return "unsafe"
	default:
		return "unknown"
	}
}

// SafeCasts is the value-preserving cast matrix: SafeCasts[from][to] is
// true when every value of `from` is exactly representable in `to`.
var SafeCasts [NumDTypes][NumDTypes]bool

// SameKindCasts extends SafeCasts with casts inside a kind: integers to
// integers, floats to floats, complex to complex, boolean to boolean,
// binary to binary, generic to generic.
var SameKindCasts [NumDTypes][NumDTypes]bool

// safeTargets lists, per data type, the distinct types the source casts
// to without losing values. Identity entries are added programmatically.
var safeTargets = map[DataType][]DataType{
	Bool: {
		Int8, Uint8, Uint8C, Int16, Uint16, Int32, Uint32, Int64, Uint64,
		Int128, Uint128, Int256, Uint256,
		Float16, BFloat16, Float32, Float64, Float128,
		Complex64, Complex128,
	},

	// Signed integers widen to wider signed integers and to any
	// floating-point or complex type whose significand holds every value.
	Int8: {
		Int16, Int32, Int64, Int128, Int256,
		Float16, BFloat16, Float32, Float64, Float128,
		Complex64, Complex128,
	},
	Int16: {
		Int32, Int64, Int128, Int256,
		Float32, Float64, Float128,
		Complex64, Complex128,
	},
	Int32: {
		Int64, Int128, Int256,
		Float64, Float128,
		Complex128,
	},
	Int64:  {Int128, Int256, Float128},
	Int128: {Int256},
	Int256: {},

	// Unsigned integers additionally widen to strictly wider signed
	// integers.
	Uint8: {
		Uint8C, Uint16, Uint32, Uint64, Uint128, Uint256,
		Int16, Int32, Int64, Int128, Int256,
		Float16, BFloat16, Float32, Float64, Float128,
		Complex64, Complex128,
	},
	Uint8C: {
		Uint8, Uint16, Uint32, Uint64, Uint128, Uint256,
		Int16, Int32, Int64, Int128, Int256,
		Float16, BFloat16, Float32, Float64, Float128,
		Complex64, Complex128,
	},
	Uint16: {
		Uint32, Uint64, Uint128, Uint256,
		Int32, Int64, Int128, Int256,
		Float32, Float64, Float128,
		Complex64, Complex128,
	},
	Uint32: {
		Uint64, Uint128, Uint256,
		Int64, Int128, Int256,
		Float64, Float128,
		Complex128,
	},
	Uint64:  {Uint128, Uint256, Int128, Int256, Float128},
	Uint128: {Uint256, Int256},
	Uint256: {},

	Float16:  {Float32, Float64, Float128, Complex64, Complex128},
	BFloat16: {Float32, Float64, Float128, Complex64, Complex128},
	Float32:  {Float64, Float128, Complex64, Complex128},
	Float64:  {Float128, Complex128},
	Float128: {},

	Complex64:  {Complex128},
	Complex128: {},

	Binary:  {},
	Generic: {},
}

// sameKind reports whether two data types belong to the same kind.
func sameKind(a, b DataType) bool {
	switch {
	case a.IsInteger():
		return b.IsInteger()
	case a.IsFloatingPoint():
		return b.IsFloatingPoint()
	case a.IsComplex():
		return b.IsComplex()
	case a.IsBoolean():
		return b.IsBoolean()
	case a.IsBinary():
		return b.IsBinary()
	case a.IsGeneric():
		return b.IsGeneric()
	}
	return false
}

func init() {
	for from := Bool; from < NumDTypes; from++ {
		SafeCasts[from][from] = true
		for _, to := range safeTargets[from] {
			SafeCasts[from][to] = true
		}
		for to := Bool; to < NumDTypes; to++ {
			SameKindCasts[from][to] = SafeCasts[from][to] || sameKind(from, to)
		}
	}
}

// IsSafeCast reports whether casting from one data type to another
// preserves values.
func IsSafeCast(from, to DataType) bool {
	if from == to {
		return true
	}
	if from.IsValid() && to.IsValid() {
		return SafeCasts[from][to]
	}
	return false
}

// IsSameKindCast reports whether casting from one data type to another is
// safe or stays within the same kind.
func IsSameKindCast(from, to DataType) bool {
	if from == to {
		return true
	}
	if from.IsValid() && to.IsValid() {
		return SameKindCasts[from][to]
	}
	return false
}

// IsAllowedCast reports whether a cast between two data types is
// permitted under the given casting mode.
func IsAllowedCast(from, to DataType, mode CastingMode) bool {
	// Anything goes for unsafe casting.
	if mode == CastUnsafe {
		return true
	}
	// Casting to the same data type is always allowed.
	if from == to {
		return true
	}
	// No casts between distinct data types in "no" or "equiv" modes.
	if mode == CastNo || mode == CastEquiv {
		return false
	}
	if mode == CastSafe {
		return IsSafeCast(from, to)
	}
	return IsSameKindCast(from, to)
}
