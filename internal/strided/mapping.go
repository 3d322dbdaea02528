package strided

// Sub2Ind resolves subscripts to a byte offset in the underlying buffer.
//
// Each subscript is resolved through the per-axis mode submodes[i % M]
// before contributing strides[i]*sub[i]. Under IndexError, an
// out-of-range subscript fails with ErrOutOfBounds.
func Sub2Ind(shape, strides []int, offset int, sub []int, submodes []IndexMode) (int, error) {
	m := len(submodes)
	ind := offset
	for i := range shape {
		j := ResolveIndex(sub[i], shape[i]-1, submodes[i%m])
		if j < 0 {
			return 0, ErrOutOfBounds
		}
		ind += strides[i] * j
	}
	return ind, nil
}

// resolveLinear applies an index mode to a linear index against a view
// holding n elements, returning -1 on failure under IndexError.
func resolveLinear(idx, n int, mode IndexMode) int {
	switch mode {
	case IndexClamp:
		if idx < 0 {
			return 0
		}
		if idx >= n {
			return n - 1
		}
		return idx
	case IndexWrap:
		if idx < 0 {
			idx += n // avoids the modulo when |idx| <= len
			if idx < 0 {
				idx -= n * (idx / n)
				if idx != 0 {
					idx += n
				}
			}
		} else if idx >= n {
			idx -= n // avoids the modulo when len <= idx < 2*len
			if idx >= n {
				idx %= n
			}
		}
		return idx
	default:
		if idx < 0 || idx >= n {
			return -1
		}
		return idx
	}
}

// Ind2Sub converts a linear index to subscripts, stored in out.
//
// When offset is 0, idx is interpreted as an index into the array view
// and decomposed over shape in the traversal order dictated by order:
// from the perspective of a view, view data is always ordered. When
// offset is nonzero, idx is interpreted as an index into the underlying
// buffer and decomposed against the actual strides, with a negative
// stride recovering the subscript shape[i]-1+q.
//
// Under IndexError, an out-of-range idx fails with ErrOutOfBounds.
func Ind2Sub(shape, strides []int, offset int, order Order, idx int, mode IndexMode, out []int) error {
	idx = resolveLinear(idx, Numel(shape), mode)
	if idx < 0 {
		return ErrOutOfBounds
	}
	ndims := len(shape)
	if offset == 0 {
		if order == ColumnMajor {
			for i := 0; i < ndims; i++ {
				s := idx % shape[i]
				idx -= s
				idx /= shape[i]
				out[i] = s
			}
			return nil
		}
		// Case: row-major
		for i := ndims - 1; i >= 0; i-- {
			s := idx % shape[i]
			idx -= s
			idx /= shape[i]
			out[i] = s
		}
		return nil
	}
	if order == ColumnMajor {
		for i := ndims - 1; i >= 0; i-- {
			s := strides[i]
			k := idx / s // truncates
			idx -= k * s
			if s < 0 {
				out[i] = shape[i] - 1 + k
			} else {
				out[i] = k
			}
		}
		return nil
	}
	// Case: row-major
	for i := 0; i < ndims; i++ {
		s := strides[i]
		k := idx / s // truncates
		idx -= k * s
		if s < 0 {
			out[i] = shape[i] - 1 + k
		} else {
			out[i] = k
		}
	}
	return nil
}

// Vind2Bind converts a linear index in an array view to a linear index
// in the underlying buffer, in the units of the strides.
//
// The view index is resolved to its subscripts in the traversal order
// dictated by order and the subscripts plugged into the standard strided
// offset formula. Under IndexError, an out-of-range idx resolves to -1.
func Vind2Bind(shape, strides []int, offset int, order Order, idx int, mode IndexMode) int {
	idx = resolveLinear(idx, Numel(shape), mode)
	if idx < 0 {
		return -1
	}
	ndims := len(shape)
	ind := offset
	if order == ColumnMajor {
		for i := 0; i < ndims; i++ {
			s := idx % shape[i] // assumes a non-negative shape
			idx -= s
			idx /= shape[i]
			ind += s * strides[i]
		}
		return ind
	}
	// Case: row-major
	for i := ndims - 1; i >= 0; i-- {
		s := idx % shape[i] // assumes a non-negative shape
		idx -= s
		idx /= shape[i]
		ind += s * strides[i]
	}
	return ind
}

// Bind2Vind converts a linear index in the underlying buffer to a linear
// index in the array view. The index mode is applied to idx against the
// view length before decomposition.
//
// The buffer index is resolved to its subscripts using the signed
// strides (a negative stride recovers shape[i]-1+q) and the subscripts
// recomposed with the positive-strides view formula. Under IndexError,
// an out-of-range idx resolves to -1.
func Bind2Vind(shape, strides []int, offset int, order Order, idx int, mode IndexMode) int {
	idx = resolveLinear(idx, Numel(shape), mode)
	if idx < 0 {
		return -1
	}
	ndims := len(shape)
	ind := 0
	if order == ColumnMajor {
		for i := ndims - 1; i >= 0; i-- {
			s := strides[i]
			k := idx / s // truncates
			idx -= k * s
			if s < 0 {
				k += shape[i] - 1
			}
			ind += k * abs(s)
		}
		return ind
	}
	// Case: row-major
	for i := 0; i < ndims; i++ {
		s := strides[i]
		k := idx / s // truncates
		idx -= k * s
		if s < 0 {
			k += shape[i] - 1
		}
		ind += k * abs(s)
	}
	return ind
}
