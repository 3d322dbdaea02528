// Package unary implements the element-wise unary apply engine: given an
// input and an output view sharing a shape, it drives a callback across
// every element, choosing a loop implementation by rank.
//
// The engine validates once before the loop starts and performs no
// allocation or error checking per element. Traversal order is
// deterministic and derived from the input's declared memory order; the
// cache-blocked variants produce bit-identical results.
package unary

import (
	"errors"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// maxRank is the highest rank served by the strided loop implementations;
// higher ranks fall back to per-element view-index resolution.
const maxRank = 10

// Cache blocking parameters. 64 bytes keeps a block inside a cache line
// regardless of cache size; the element count is the fallback for
// zero-width element types.
const (
	blockSizeBytes    = 64
	blockSizeElements = 8
)

// Errors reported before an apply loop begins.
var (
	// ErrShapeMismatch is returned when the input and output views
	// disagree in rank or extent.
	ErrShapeMismatch = errors.New("unary: input and output shapes do not match")

	// ErrUnknownDType is returned when a participating view carries a
	// data type outside the registry.
	ErrUnknownDType = ndarray.ErrUnknownDType
)

// validate checks that every output shares the input's rank and shape
// and that all data types are registry members.
func validate(x *ndarray.Array, outs ...*ndarray.Array) error {
	if !x.DType().IsValid() {
		return ErrUnknownDType
	}
	shape := x.Shape()
	for _, y := range outs {
		if !y.DType().IsValid() {
			return ErrUnknownDType
		}
		if y.NDims() != len(shape) {
			return ErrShapeMismatch
		}
		for i := range shape {
			if y.Dim(i) != shape[i] {
				return ErrShapeMismatch
			}
		}
	}
	return nil
}

// Apply writes y[i] = f(x[i]) for every element of the view.
//
// The caller certifies that Tin and Tout match the data types of x and
// y. The implementation is selected by rank; all selections are
// behaviorally equivalent.
func Apply[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) error {
	if err := validate(x, y); err != nil {
		return err
	}
	switch x.NDims() {
	case 0:
		apply0d(x, y, f)
	case 1:
		apply1d(x, y, f)
	case 2:
		apply2d(x, y, f)
	case 3:
		apply3d(x, y, f)
	default:
		if x.NDims() <= maxRank {
			applyND(x, y, f)
		} else {
			applyFallback(x, y, f)
		}
	}
	return nil
}

// ApplyBlocked behaves exactly like Apply but tiles the iteration space
// so each block's working set fits a fixed byte budget. Ranks below 2
// have nothing to tile and use the plain loops.
func ApplyBlocked[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) error {
	if err := validate(x, y); err != nil {
		return err
	}
	switch {
	case x.NDims() < 2:
		return Apply(x, y, f)
	case x.NDims() <= maxRank:
		applyBlocked(x, y, f)
	default:
		applyFallback(x, y, f)
	}
	return nil
}

// ApplyConvert writes y[i] = cout(f(cin(x[i]))), composing caller
// supplied conversion functions around the callback.
func ApplyConvert[Tin, Fin, Fout, Tout ndarray.Element](x, y *ndarray.Array, f func(Fin) Fout, cin func(Tin) Fin, cout func(Fout) Tout) error {
	return Apply(x, y, func(v Tin) Tout {
		return cout(f(cin(v)))
	})
}

// Apply2 writes y1[i], y2[i] = f(x[i]) for every element of the view.
// Both outputs must share the input's shape; their strides and data
// types are independent.
func Apply2[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) error {
	if err := validate(x, y1, y2); err != nil {
		return err
	}
	switch {
	case x.NDims() == 0:
		apply2out0d(x, y1, y2, f)
	case x.NDims() == 1:
		apply2out1d(x, y1, y2, f)
	case x.NDims() <= maxRank:
		apply2outND(x, y1, y2, f)
	default:
		apply2outFallback(x, y1, y2, f)
	}
	return nil
}

// Apply2Blocked is the cache-blocked form of Apply2.
func Apply2Blocked[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) error {
	if err := validate(x, y1, y2); err != nil {
		return err
	}
	switch {
	case x.NDims() < 2:
		return Apply2(x, y1, y2, f)
	case x.NDims() <= maxRank:
		apply2outBlocked(x, y1, y2, f)
	default:
		apply2outFallback(x, y1, y2, f)
	}
	return nil
}
