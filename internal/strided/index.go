// Package strided provides the pure shape/stride/order/index-mode algebra
// and the coordinate-mapping kernels underpinning ndarray views.
//
// All strides handled by this package are expressed in bytes unless a
// function documents otherwise. Functions are pure over their input
// slices and do not allocate.
package strided

import "errors"

// Errors reported by this package.
var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrBroadcast   = errors.New("shapes are broadcast-incompatible")
)

// IndexMode specifies how an out-of-range index is handled.
type IndexMode int8

// Supported index modes.
const (
	// IndexError treats an out-of-range index as a failure.
	IndexError IndexMode = 1
	// IndexClamp saturates an out-of-range index to [0, max].
	IndexClamp IndexMode = 2
	// IndexWrap wraps an out-of-range index onto [0, max].
	IndexWrap IndexMode = 3
)

// String returns a human-readable name for the index mode.
func (m IndexMode) String() string {
	switch m {
	case IndexError:
		return "error"
	case IndexClamp:
		return "clamp"
	case IndexWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// FromString resolves an index mode name to its tag.
// Returns 0 for unrecognized names.
func FromString(s string) IndexMode {
	switch s {
	case "error":
		return IndexError
	case "clamp":
		return IndexClamp
	case "wrap":
		return IndexWrap
	default:
		return 0
	}
}

// Order specifies a memory layout convention.
type Order int8

// Supported memory orders.
const (
	// RowMajor is C-style layout: the last axis varies fastest.
	RowMajor Order = 1
	// ColumnMajor is Fortran-style layout: the first axis varies fastest.
	ColumnMajor Order = 2
)

// String returns a human-readable name for the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// ClampIndex saturates idx to the interval [0, max].
// max is assumed non-negative.
func ClampIndex(idx, max int) int {
	if idx < 0 {
		return 0
	}
	if idx > max {
		return max
	}
	return idx
}

// WrapIndex wraps idx onto the interval [0, max].
// max is assumed non-negative.
func WrapIndex(idx, max int) int {
	mp1 := max + 1
	if idx < 0 {
		idx += mp1 // avoids the modulo when |idx| <= max+1
		if idx < 0 {
			idx -= mp1 * (idx / mp1)
			if idx != 0 {
				idx += mp1
			}
		}
	} else if idx > max {
		idx -= mp1 // avoids the modulo when max < idx < 2*(max+1)
		if idx > max {
			idx %= mp1
		}
	}
	return idx
}

// ResolveIndex applies an index mode to idx against the interval
// [0, max]. Under IndexError, an out-of-range idx resolves to -1.
func ResolveIndex(idx, max int, mode IndexMode) int {
	switch mode {
	case IndexClamp:
		return ClampIndex(idx, max)
	case IndexWrap:
		return WrapIndex(idx, max)
	default:
		if idx < 0 || idx > max {
			return -1
		}
		return idx
	}
}
