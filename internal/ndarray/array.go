// Package ndarray implements the strided array descriptor: a typed view
// over a caller-owned flat byte buffer defined by a shape, per-axis byte
// strides, and a byte offset.
package ndarray

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/strided"
)

// Errors reported by descriptor accessors.
var (
	// ErrOutOfBounds is returned when a subscript or linear index falls
	// outside the view under the error index mode.
	ErrOutOfBounds = strided.ErrOutOfBounds

	// ErrUnknownDType is returned when a descriptor's data type is outside
	// the supported read/write set.
	ErrUnknownDType = errors.New("ndarray: unknown data type")

	// ErrValueType is returned when an untyped set receives a value whose
	// Go type does not match the descriptor's data type.
	ErrValueType = errors.New("ndarray: value type does not match data type")
)

// Descriptor flag bits.
const (
	// FlagRowMajorContiguous indicates the view is single-segment
	// compatible with monotonically non-increasing absolute strides.
	FlagRowMajorContiguous uint32 = 1 << iota

	// FlagColumnMajorContiguous indicates the view is single-segment
	// compatible with monotonically non-decreasing absolute strides.
	FlagColumnMajorContiguous
)

// Array is a strided typed view over a flat byte buffer.
//
// The buffer is caller-owned: the descriptor never allocates, copies, or
// frees it. The addressable region must cover every byte offset the view
// can reach (see strided.MinmaxViewBufferIndex).
type Array struct {
	dtype    dtype.DataType
	data     []byte
	shape    []int
	strides  []int // per-axis step in bytes; may be negative or zero
	offset   int   // byte offset of the element at the all-zero subscript
	order    strided.Order
	imode    strided.IndexMode     // default mode for linear access
	submodes []strided.IndexMode   // per-axis subscript modes, recycled by modulo
	length   int                   // cached Numel(shape)
	nbytes   int                   // cached bytes per element
	byteLen  int                   // length * nbytes
	flags    uint32
}

// New creates an array descriptor over a caller-owned buffer.
//
// shape, strides, and submodes are cloned. strides are in bytes. When
// submodes is empty, subscript resolution defaults to the error mode.
// Derived fields (length, byte length, contiguity flags) are computed
// eagerly.
func New(dt dtype.DataType, data []byte, shape, strides []int, offset int, order strided.Order, imode strided.IndexMode, submodes []strided.IndexMode) *Array {
	if len(submodes) == 0 {
		submodes = []strided.IndexMode{strided.IndexError}
	}
	a := &Array{
		dtype:    dt,
		data:     data,
		shape:    slices.Clone(shape),
		strides:  slices.Clone(strides),
		offset:   offset,
		order:    order,
		imode:    imode,
		submodes: slices.Clone(submodes),
	}
	a.length = strided.Numel(a.shape)
	a.nbytes = dt.Size()
	a.byteLen = a.length * a.nbytes
	a.flags = a.computeFlags()
	return a
}

// computeFlags derives the contiguity flag bits from the current shape,
// strides, and offset.
func (a *Array) computeFlags() uint32 {
	// An empty view stores no data, and an unordered view does not keep
	// adjacent elements next to each other.
	contiguous := false
	if a.length > 0 && strided.IterationOrder(a.strides) != 0 {
		var tmp [2]int
		strided.MinmaxViewBufferIndex(a.shape, a.strides, a.offset, &tmp)
		contiguous = a.length*a.nbytes == tmp[1]-tmp[0]+a.nbytes
	}
	var flags uint32
	if contiguous {
		// The stride-inferred order is supplementary to a.order.
		switch strided.Strides2Order(a.strides) {
		case strided.OrderRowMajor:
			flags |= FlagRowMajorContiguous
		case strided.OrderColumnMajor:
			flags |= FlagColumnMajorContiguous
		case strided.OrderBoth:
			flags |= FlagRowMajorContiguous | FlagColumnMajorContiguous
		}
	}
	return flags
}

// DType returns the data type tag.
func (a *Array) DType() dtype.DataType { return a.dtype }

// Data returns the underlying byte buffer.
func (a *Array) Data() []byte { return a.data }

// NDims returns the rank.
func (a *Array) NDims() int { return len(a.shape) }

// Shape returns the per-axis lengths. Callers must not mutate the
// returned slice.
func (a *Array) Shape() []int { return a.shape }

// Dim returns the length of axis i without bounds checking.
func (a *Array) Dim(i int) int { return a.shape[i] }

// Strides returns the per-axis steps in bytes. Callers must not mutate
// the returned slice.
func (a *Array) Strides() []int { return a.strides }

// Stride returns the byte step of axis i without bounds checking.
func (a *Array) Stride(i int) int { return a.strides[i] }

// Offset returns the byte offset of the element at the all-zero
// subscript.
func (a *Array) Offset() int { return a.offset }

// Order returns the declared memory order.
func (a *Array) Order() strided.Order { return a.order }

// IndexMode returns the default index mode for linear access.
func (a *Array) IndexMode() strided.IndexMode { return a.imode }

// Submodes returns the per-axis subscript modes.
func (a *Array) Submodes() []strided.IndexMode { return a.submodes }

// Submode returns the subscript mode for axis i, recycled by modulo.
func (a *Array) Submode(i int) strided.IndexMode {
	return a.submodes[i%len(a.submodes)]
}

// Length returns the number of elements in the view.
func (a *Array) Length() int { return a.length }

// BytesPerElement returns the element width in bytes.
func (a *Array) BytesPerElement() int { return a.nbytes }

// ByteLength returns the view size in bytes.
func (a *Array) ByteLength() int { return a.byteLen }

// Flags returns the descriptor flag bits.
func (a *Array) Flags() uint32 { return a.flags }

// HasFlags reports whether every flag in mask is set.
func (a *Array) HasFlags(mask uint32) bool { return a.flags&mask == mask }

// EnableFlags sets the given flag bits without validation.
func (a *Array) EnableFlags(mask uint32) { a.flags |= mask }

// DisableFlags clears the given flag bits without validation.
func (a *Array) DisableFlags(mask uint32) { a.flags &^= mask }

// String returns a short human-readable description of the descriptor.
func (a *Array) String() string {
	return fmt.Sprintf("ndarray[%s]%v %s", a.dtype, a.shape, a.order)
}
