// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/dtype"
	core "github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/strided"
	"github.com/born-ml/ndarray/internal/unary"
)

// Core types.

// Array is a strided typed view over a caller-owned flat byte buffer.
type Array = core.Array

// Element is the constraint satisfied by Go types that can back a fixed
// width ndarray element.
type Element = core.Element

// DataType identifies the numeric encoding and width of a buffer element.
type DataType = dtype.DataType

// CastingMode governs which data type conversions an operation accepts.
type CastingMode = dtype.CastingMode

// IndexMode specifies how an out-of-range index is handled.
type IndexMode = strided.IndexMode

// Order specifies a memory layout convention.
type Order = strided.Order

// OrderClass classifies a stride array's layout.
type OrderClass = strided.OrderClass

// Data types.
const (
	Bool       DataType = dtype.Bool
	Int8       DataType = dtype.Int8
	Uint8      DataType = dtype.Uint8
	Uint8C     DataType = dtype.Uint8C
	Int16      DataType = dtype.Int16
	Uint16     DataType = dtype.Uint16
	Int32      DataType = dtype.Int32
	Uint32     DataType = dtype.Uint32
	Int64      DataType = dtype.Int64
	Uint64     DataType = dtype.Uint64
	Int128     DataType = dtype.Int128
	Uint128    DataType = dtype.Uint128
	Int256     DataType = dtype.Int256
	Uint256    DataType = dtype.Uint256
	Float16    DataType = dtype.Float16
	BFloat16   DataType = dtype.BFloat16
	Float32    DataType = dtype.Float32
	Float64    DataType = dtype.Float64
	Float128   DataType = dtype.Float128
	Complex64  DataType = dtype.Complex64
	Complex128 DataType = dtype.Complex128
	Binary     DataType = dtype.Binary
	Generic    DataType = dtype.Generic

	NumDTypes DataType = dtype.NumDTypes
	NoneType  DataType = dtype.None

	// UserDefined marks the start of the reserved range for user-defined
	// type numbers.
	UserDefined DataType = dtype.UserDefined
)

// Casting modes.
const (
	CastNo       CastingMode = dtype.CastNo
	CastEquiv    CastingMode = dtype.CastEquiv
	CastSafe     CastingMode = dtype.CastSafe
	CastSameKind CastingMode = dtype.CastSameKind
	CastUnsafe   CastingMode = dtype.CastUnsafe
)

// Index modes.
const (
	IndexError IndexMode = strided.IndexError
	IndexClamp IndexMode = strided.IndexClamp
	IndexWrap  IndexMode = strided.IndexWrap
)

// Memory orders.
const (
	RowMajor    Order = strided.RowMajor
	ColumnMajor Order = strided.ColumnMajor
)

// Stride-array layout classes.
const (
	OrderNone        OrderClass = strided.OrderNone
	OrderRowMajor    OrderClass = strided.OrderRowMajor
	OrderColumnMajor OrderClass = strided.OrderColumnMajor
	OrderBoth        OrderClass = strided.OrderBoth
)

// Descriptor flag bits.
const (
	FlagRowMajorContiguous    = core.FlagRowMajorContiguous
	FlagColumnMajorContiguous = core.FlagColumnMajorContiguous
)

// Errors.
var (
	ErrOutOfBounds   = core.ErrOutOfBounds
	ErrUnknownDType  = core.ErrUnknownDType
	ErrValueType     = core.ErrValueType
	ErrShapeMismatch = unary.ErrShapeMismatch
	ErrBroadcast     = strided.ErrBroadcast
)

// New creates an array descriptor over a caller-owned buffer. shape,
// strides, and submodes are cloned; strides are in bytes. An empty
// submodes defaults subscript resolution to the error mode.
func New(dt DataType, data []byte, shape, strides []int, offset int, order Order, imode IndexMode, submodes []IndexMode) *Array {
	return core.New(dt, data, shape, strides, offset, order, imode, submodes)
}

// DTypeFromChar resolves a single-letter character code to its data type.
func DTypeFromChar(c byte) DataType { return dtype.FromChar(c) }

// DTypeFromString resolves a data type name to its tag.
func DTypeFromString(s string) DataType { return dtype.FromString(s) }

// IndexModeFromString resolves an index mode name to its tag.
func IndexModeFromString(s string) IndexMode { return strided.FromString(s) }

// IsSafeCast reports whether casting between two data types preserves
// values.
func IsSafeCast(from, to DataType) bool { return dtype.IsSafeCast(from, to) }

// IsSameKindCast reports whether casting between two data types is safe
// or stays within the same kind.
func IsSameKindCast(from, to DataType) bool { return dtype.IsSameKindCast(from, to) }

// IsAllowedCast reports whether a cast is permitted under a casting mode.
func IsAllowedCast(from, to DataType, mode CastingMode) bool {
	return dtype.IsAllowedCast(from, to, mode)
}

// Shape/stride algebra.

// Numel returns the number of elements implied by a shape; a rank-0
// shape describes one element.
func Numel(shape []int) int { return strided.Numel(shape) }

// Shape2Strides fills out with the strides, in element units, implied by
// a shape and memory order.
func Shape2Strides(shape []int, order Order, out []int) {
	strided.Shape2Strides(shape, order, out)
}

// Strides2Offset returns the offset at which the all-zero subscript must
// sit so that the lowest reachable element of the view sits at offset 0.
func Strides2Offset(shape, strides []int) int {
	return strided.Strides2Offset(shape, strides)
}

// Strides2Order classifies a stride array's layout.
func Strides2Order(strides []int) OrderClass { return strided.Strides2Order(strides) }

// IterationOrder returns 1 for all non-negative strides, -1 for all
// negative, 0 for mixed signs.
func IterationOrder(strides []int) int { return strided.IterationOrder(strides) }

// MinmaxViewBufferIndex stores in out the smallest and largest byte
// offsets reachable by any legal subscript.
func MinmaxViewBufferIndex(shape, strides []int, offset int, out *[2]int) {
	strided.MinmaxViewBufferIndex(shape, strides, offset, out)
}

// MaxViewBufferIndex returns the largest byte offset reachable by any
// legal subscript.
func MaxViewBufferIndex(shape, strides []int, offset int) int {
	return strided.MaxViewBufferIndex(shape, strides, offset)
}

// SingletonDimensions returns the number of size-1 dimensions.
func SingletonDimensions(shape []int) int { return strided.SingletonDimensions(shape) }

// NonsingletonDimensions returns the number of dimensions of size other
// than 1.
func NonsingletonDimensions(shape []int) int { return strided.NonsingletonDimensions(shape) }

// BroadcastShapes computes the broadcast shape of a set of input shapes
// into out, following right-aligned NumPy rules.
func BroadcastShapes(shapes [][]int, out []int) error {
	return strided.BroadcastShapes(shapes, out)
}

// IsRowMajor reports whether absolute strides are monotonically
// non-increasing.
func IsRowMajor(strides []int) bool { return strided.IsRowMajor(strides) }

// IsColumnMajor reports whether absolute strides are monotonically
// non-decreasing.
func IsColumnMajor(strides []int) bool { return strided.IsColumnMajor(strides) }

// IsSingleSegmentCompatible reports whether a view covers one contiguous
// span of buffer bytes.
func IsSingleSegmentCompatible(dt DataType, shape, strides []int, offset int) bool {
	return strided.IsSingleSegmentCompatible(dt.Size(), shape, strides, offset)
}

// IsContiguous reports whether a view is single-segment compatible with
// uniformly signed strides.
func IsContiguous(dt DataType, shape, strides []int, offset int) bool {
	return strided.IsContiguous(dt.Size(), shape, strides, offset)
}

// IsRowMajorContiguous reports whether a view is contiguous in row-major
// order.
func IsRowMajorContiguous(dt DataType, shape, strides []int, offset int) bool {
	return strided.IsRowMajorContiguous(dt.Size(), shape, strides, offset)
}

// IsColumnMajorContiguous reports whether a view is contiguous in
// column-major order.
func IsColumnMajorContiguous(dt DataType, shape, strides []int, offset int) bool {
	return strided.IsColumnMajorContiguous(dt.Size(), shape, strides, offset)
}

// IsBufferLengthCompatible reports whether a buffer holding buflen
// elements of dt can back the view.
func IsBufferLengthCompatible(dt DataType, buflen int, shape, strides []int, offset int) bool {
	return strided.IsBufferLengthCompatible(dt.Size(), buflen, shape, strides, offset)
}

// Index primitives.

// ClampIndex saturates idx to [0, max].
func ClampIndex(idx, max int) int { return strided.ClampIndex(idx, max) }

// WrapIndex wraps idx onto [0, max].
func WrapIndex(idx, max int) int { return strided.WrapIndex(idx, max) }

// ResolveIndex applies an index mode to idx against [0, max], resolving
// to -1 under IndexError when out of range.
func ResolveIndex(idx, max int, mode IndexMode) int {
	return strided.ResolveIndex(idx, max, mode)
}

// Coordinate mapping.

// Sub2Ind resolves subscripts to a byte offset in the underlying buffer.
func Sub2Ind(shape, strides []int, offset int, sub []int, submodes []IndexMode) (int, error) {
	return strided.Sub2Ind(shape, strides, offset, sub, submodes)
}

// Ind2Sub converts a linear index to subscripts, stored in out.
func Ind2Sub(shape, strides []int, offset int, order Order, idx int, mode IndexMode, out []int) error {
	return strided.Ind2Sub(shape, strides, offset, order, idx, mode, out)
}

// Vind2Bind converts a view-linear index to a buffer byte offset,
// resolving to -1 under IndexError when out of range.
func Vind2Bind(shape, strides []int, offset int, order Order, idx int, mode IndexMode) int {
	return strided.Vind2Bind(shape, strides, offset, order, idx, mode)
}

// Bind2Vind converts a buffer byte offset to a view-linear index,
// resolving to -1 under IndexError when out of range.
func Bind2Vind(shape, strides []int, offset int, order Order, idx int, mode IndexMode) int {
	return strided.Bind2Vind(shape, strides, offset, order, idx, mode)
}

// Typed element access. The caller certifies that T matches the
// descriptor's data type.

// Get returns the element at the given subscripts.
func Get[T Element](a *Array, sub ...int) (T, error) { return core.Get[T](a, sub...) }

// Set writes the element at the given subscripts.
func Set[T Element](a *Array, v T, sub ...int) error { return core.Set(a, v, sub...) }

// IGet returns the element at a view-linear index.
func IGet[T Element](a *Array, idx int) (T, error) { return core.IGet[T](a, idx) }

// ISet writes the element at a view-linear index.
func ISet[T Element](a *Array, idx int, v T) error { return core.ISet(a, idx, v) }

// Load reads the element of type T at a raw byte offset, unchecked.
func Load[T Element](a *Array, off int) T { return core.Load[T](a, off) }

// Store writes the element of type T at a raw byte offset, unchecked.
func Store[T Element](a *Array, off int, v T) { core.Store(a, off, v) }

// Unary apply engine.

// Apply writes y[i] = f(x[i]) for every element of the view.
func Apply[Tin, Tout Element](x, y *Array, f func(Tin) Tout) error {
	return unary.Apply(x, y, f)
}

// ApplyBlocked behaves like Apply with cache-blocked iteration.
func ApplyBlocked[Tin, Tout Element](x, y *Array, f func(Tin) Tout) error {
	return unary.ApplyBlocked(x, y, f)
}

// ApplyConvert writes y[i] = cout(f(cin(x[i]))).
func ApplyConvert[Tin, Fin, Fout, Tout Element](x, y *Array, f func(Fin) Fout, cin func(Tin) Fin, cout func(Fout) Tout) error {
	return unary.ApplyConvert(x, y, f, cin, cout)
}

// Apply2 writes y1[i], y2[i] = f(x[i]) for every element of the view.
func Apply2[Tin, Tout1, Tout2 Element](x, y1, y2 *Array, f func(Tin) (Tout1, Tout2)) error {
	return unary.Apply2(x, y1, y2, f)
}

// Apply2Blocked is the cache-blocked form of Apply2.
func Apply2Blocked[Tin, Tout1, Tout2 Element](x, y1, y2 *Array, f func(Tin) (Tout1, Tout2)) error {
	return unary.Apply2Blocked(x, y1, y2, f)
}
