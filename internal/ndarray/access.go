package ndarray

import (
	"unsafe"

	"github.com/born-ml/ndarray/internal/strided"
)

// Element is the constraint satisfied by Go types that can back a fixed
// width ndarray element. Half-precision values travel as their raw
// 16-bit patterns and therefore satisfy ~uint16.
type Element interface {
	~bool | ~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64 | ~complex64 | ~complex128
}

// Ptr resolves subscripts to a byte offset in the underlying buffer.
//
// Each subscript passes through the per-axis subscript mode before
// contributing its stride. Fails with ErrOutOfBounds when a subscript is
// rejected under the error mode.
func (a *Array) Ptr(sub ...int) (int, error) {
	return strided.Sub2Ind(a.shape, a.strides, a.offset, sub, a.submodes)
}

// IPtr resolves a view-linear index to a byte offset in the underlying
// buffer, honoring the descriptor's index mode.
//
// Zero-dimensional arrays ignore idx and resolve to the single element
// at the descriptor offset.
func (a *Array) IPtr(idx int) (int, error) {
	if len(a.shape) == 0 {
		return a.offset, nil
	}
	j := strided.ResolveIndex(idx, a.length-1, a.imode)
	if j < 0 {
		return 0, ErrOutOfBounds
	}
	io := strided.IterationOrder(a.strides)

	// Trivial cases: for contiguous views with uniformly signed strides
	// the view index maps directly onto the buffer.
	if a.flags&(FlagRowMajorContiguous|FlagColumnMajorContiguous) != 0 {
		if io == 1 {
			return a.offset + j*a.nbytes, nil
		}
		if io == -1 {
			return a.offset - j*a.nbytes, nil
		}
	}
	// Resolve the view index to its subscripts and plug them into the
	// standard strided offset formula.
	ind := a.offset
	if a.order == strided.ColumnMajor {
		for i := 0; i < len(a.shape); i++ {
			s := j % a.shape[i]
			j -= s
			j /= a.shape[i]
			ind += s * a.strides[i]
		}
		return ind, nil
	}
	// Case: row-major
	for i := len(a.shape) - 1; i >= 0; i-- {
		s := j % a.shape[i]
		j -= s
		j /= a.shape[i]
		ind += s * a.strides[i]
	}
	return ind, nil
}

// Load reads the element of type T at byte offset off.
//
// No bounds or data type checking is performed: the caller certifies
// that T matches the descriptor's data type and that off came from a
// resolved subscript or index.
func Load[T Element](a *Array, off int) T {
	//nolint:gosec // raw strided access; alignment guaranteed by the buffer contract
	return *(*T)(unsafe.Pointer(&a.data[off]))
}

// Store writes the element of type T at byte offset off.
//
// No bounds or data type checking is performed.
func Store[T Element](a *Array, off int, v T) {
	//nolint:gosec // raw strided access; alignment guaranteed by the buffer contract
	*(*T)(unsafe.Pointer(&a.data[off])) = v
}

// Get returns the element at the given subscripts.
// The caller certifies that T matches the descriptor's data type.
func Get[T Element](a *Array, sub ...int) (T, error) {
	off, err := a.Ptr(sub...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Load[T](a, off), nil
}

// Set writes the element at the given subscripts.
// The caller certifies that T matches the descriptor's data type.
func Set[T Element](a *Array, v T, sub ...int) error {
	off, err := a.Ptr(sub...)
	if err != nil {
		return err
	}
	Store(a, off, v)
	return nil
}

// IGet returns the element at a view-linear index.
// The caller certifies that T matches the descriptor's data type.
func IGet[T Element](a *Array, idx int) (T, error) {
	off, err := a.IPtr(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return Load[T](a, off), nil
}

// ISet writes the element at a view-linear index.
// The caller certifies that T matches the descriptor's data type.
func ISet[T Element](a *Array, idx int, v T) error {
	off, err := a.IPtr(idx)
	if err != nil {
		return err
	}
	Store(a, off, v)
	return nil
}
