package ndarray

import (
	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/ndarray/internal/dtype"
)

// The untyped accessors support the fixed-width read/write set: Bool,
// the 8- through 64-bit integers, Float16, BFloat16, Float32, Float64,
// Complex64, Complex128, and Binary. Wider integer types, Float128, and
// Generic fail with ErrUnknownDType.
//
// Float16 values are surfaced as float16.Float16 and BFloat16 values as
// bfloat16.BF16; both are raw 16-bit patterns.

// Value returns the element at the given subscripts.
func (a *Array) Value(sub ...int) (any, error) {
	off, err := a.Ptr(sub...)
	if err != nil {
		return nil, err
	}
	return a.ValueAt(off)
}

// SetValue writes the element at the given subscripts. The value's Go
// type must match the descriptor's data type.
func (a *Array) SetValue(v any, sub ...int) error {
	off, err := a.Ptr(sub...)
	if err != nil {
		return err
	}
	return a.SetValueAt(off, v)
}

// IValue returns the element at a view-linear index.
func (a *Array) IValue(idx int) (any, error) {
	off, err := a.IPtr(idx)
	if err != nil {
		return nil, err
	}
	return a.ValueAt(off)
}

// ISetValue writes the element at a view-linear index.
func (a *Array) ISetValue(idx int, v any) error {
	off, err := a.IPtr(idx)
	if err != nil {
		return err
	}
	return a.SetValueAt(off, v)
}

// ValueAt reads the element at a raw byte offset, interpreted per the
// descriptor's data type. No bounds checking is performed.
func (a *Array) ValueAt(off int) (any, error) {
	switch a.dtype {
	case dtype.Float64:
		return Load[float64](a, off), nil
	case dtype.Float32:
		return Load[float32](a, off), nil
	case dtype.Int64:
		return Load[int64](a, off), nil
	case dtype.Uint64:
		return Load[uint64](a, off), nil
	case dtype.Int32:
		return Load[int32](a, off), nil
	case dtype.Uint32:
		return Load[uint32](a, off), nil
	case dtype.Int16:
		return Load[int16](a, off), nil
	case dtype.Uint16:
		return Load[uint16](a, off), nil
	case dtype.Int8:
		return Load[int8](a, off), nil
	case dtype.Uint8, dtype.Uint8C, dtype.Binary:
		return Load[uint8](a, off), nil
	case dtype.Bool:
		return Load[bool](a, off), nil
	case dtype.Float16:
		return float16.Frombits(Load[uint16](a, off)), nil
	case dtype.BFloat16:
		return bfloat16.BF16(Load[uint16](a, off)), nil
	case dtype.Complex64:
		return Load[complex64](a, off), nil
	case dtype.Complex128:
		return Load[complex128](a, off), nil
	default:
		return nil, ErrUnknownDType
	}
}

// SetValueAt writes the element at a raw byte offset, interpreted per
// the descriptor's data type. No bounds checking is performed.
func (a *Array) SetValueAt(off int, v any) error {
	switch a.dtype {
	case dtype.Float64:
		return storeValue[float64](a, off, v)
	case dtype.Float32:
		return storeValue[float32](a, off, v)
	case dtype.Int64:
		return storeValue[int64](a, off, v)
	case dtype.Uint64:
		return storeValue[uint64](a, off, v)
	case dtype.Int32:
		return storeValue[int32](a, off, v)
	case dtype.Uint32:
		return storeValue[uint32](a, off, v)
	case dtype.Int16:
		return storeValue[int16](a, off, v)
	case dtype.Uint16:
		return storeValue[uint16](a, off, v)
	case dtype.Int8:
		return storeValue[int8](a, off, v)
	case dtype.Uint8, dtype.Uint8C, dtype.Binary:
		return storeValue[uint8](a, off, v)
	case dtype.Bool:
		return storeValue[bool](a, off, v)
	case dtype.Float16:
		h, ok := v.(float16.Float16)
		if !ok {
			return ErrValueType
		}
		Store(a, off, h.Bits())
		return nil
	case dtype.BFloat16:
		b, ok := v.(bfloat16.BF16)
		if !ok {
			return ErrValueType
		}
		Store(a, off, uint16(b))
		return nil
	case dtype.Complex64:
		return storeValue[complex64](a, off, v)
	case dtype.Complex128:
		return storeValue[complex128](a, off, v)
	default:
		return ErrUnknownDType
	}
}

func storeValue[T Element](a *Array, off int, v any) error {
	t, ok := v.(T)
	if !ok {
		return ErrValueType
	}
	Store(a, off, t)
	return nil
}
