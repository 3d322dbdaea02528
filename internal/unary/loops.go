package unary

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/strided"
)

func apply0d[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	ndarray.Store(y, y.Offset(), f(ndarray.Load[Tin](x, x.Offset())))
}

func apply1d[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	n := x.Dim(0)
	dx := x.Stride(0)
	dy := y.Stride(0)
	ox := x.Offset()
	oy := y.Offset()
	for i := 0; i < n; i++ {
		ndarray.Store(y, oy, f(ndarray.Load[Tin](x, ox)))
		ox += dx
		oy += dy
	}
}

func apply2d[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	shape := x.Shape()
	sx := x.Strides()
	sy := y.Strides()
	var s0, s1, d0x, d1x, d0y, d1y int
	if x.Order() == strided.RowMajor {
		// For row-major views the last dimension has the fastest
		// changing index.
		s0 = shape[1]
		s1 = shape[0]
		d0x = sx[1]
		d1x = sx[0] - s0*sx[1]
		d0y = sy[1]
		d1y = sy[0] - s0*sy[1]
	} else {
		s0 = shape[0]
		s1 = shape[1]
		d0x = sx[0]
		d1x = sx[1] - s0*sx[0]
		d0y = sy[0]
		d1y = sy[1] - s0*sy[0]
	}
	ox := x.Offset()
	oy := y.Offset()
	for i1 := 0; i1 < s1; i1++ {
		for i0 := 0; i0 < s0; i0++ {
			ndarray.Store(y, oy, f(ndarray.Load[Tin](x, ox)))
			ox += d0x
			oy += d0y
		}
		ox += d1x
		oy += d1y
	}
}

func apply3d[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	shape := x.Shape()
	sx := x.Strides()
	sy := y.Strides()
	var s0, s1, s2, d0x, d1x, d2x, d0y, d1y, d2y int
	if x.Order() == strided.RowMajor {
		s0 = shape[2]
		s1 = shape[1]
		s2 = shape[0]
		d0x = sx[2]
		d1x = sx[1] - s0*sx[2]
		d2x = sx[0] - s1*sx[1]
		d0y = sy[2]
		d1y = sy[1] - s0*sy[2]
		d2y = sy[0] - s1*sy[1]
	} else {
		s0 = shape[0]
		s1 = shape[1]
		s2 = shape[2]
		d0x = sx[0]
		d1x = sx[1] - s0*sx[0]
		d2x = sx[2] - s1*sx[1]
		d0y = sy[0]
		d1y = sy[1] - s0*sy[0]
		d2y = sy[2] - s1*sy[1]
	}
	ox := x.Offset()
	oy := y.Offset()
	for i2 := 0; i2 < s2; i2++ {
		for i1 := 0; i1 < s1; i1++ {
			for i0 := 0; i0 < s0; i0++ {
				ndarray.Store(y, oy, f(ndarray.Load[Tin](x, ox)))
				ox += d0x
				oy += d0y
			}
			ox += d1x
			oy += d1y
		}
		ox += d2x
		oy += d2y
	}
}

// loopDims extracts iteration extents and per-axis pointer increments
// for a rank-parametric strided nest, ordering axes so index 0 is the
// fastest changing axis of the declared order. The increment for a
// non-innermost axis subtracts the distance traversed by the axes below
// it.
func loopDims(order strided.Order, shape, sx, sy []int, s, dx, dy *[maxRank]int) {
	ndims := len(shape)
	if order == strided.RowMajor {
		for k := 0; k < ndims; k++ {
			j := ndims - 1 - k
			s[k] = shape[j]
			dx[k] = sx[j]
			dy[k] = sy[j]
			if k > 0 {
				dx[k] -= s[k-1] * sx[j+1]
				dy[k] -= s[k-1] * sy[j+1]
			}
		}
		return
	}
	for k := 0; k < ndims; k++ {
		s[k] = shape[k]
		dx[k] = sx[k]
		dy[k] = sy[k]
		if k > 0 {
			dx[k] -= s[k-1] * sx[k-1]
			dy[k] -= s[k-1] * sy[k-1]
		}
	}
}

// applyND is the rank-parametric strided nest for ranks up to maxRank.
// It walks an odometer over the reordered extents, carrying pointer
// increments so each element is touched exactly once.
func applyND[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	ndims := x.NDims()
	var s, dx, dy, idx [maxRank]int
	loopDims(x.Order(), x.Shape(), x.Strides(), y.Strides(), &s, &dx, &dy)

	ox := x.Offset()
	oy := y.Offset()
	total := x.Length()
	for n := 0; n < total; n++ {
		ndarray.Store(y, oy, f(ndarray.Load[Tin](x, ox)))
		for k := 0; k < ndims; k++ {
			ox += dx[k]
			oy += dy[k]
			idx[k]++
			if idx[k] < s[k] {
				break
			}
			idx[k] = 0
		}
	}
}

// applyFallback resolves every participant's byte offset per element via
// view-index decomposition, honoring each participant's own order and
// index mode. Canonical but slow; serves ranks above maxRank.
func applyFallback[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	shape := x.Shape()
	sx := x.Strides()
	sy := y.Strides()
	ox := x.Offset()
	oy := y.Offset()
	total := x.Length()
	for i := 0; i < total; i++ {
		px := strided.Vind2Bind(shape, sx, ox, x.Order(), i, x.IndexMode())
		py := strided.Vind2Bind(shape, sy, oy, y.Order(), i, y.IndexMode())
		ndarray.Store(y, py, f(ndarray.Load[Tin](x, px)))
	}
}

func apply2out0d[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) {
	v1, v2 := f(ndarray.Load[Tin](x, x.Offset()))
	ndarray.Store(y1, y1.Offset(), v1)
	ndarray.Store(y2, y2.Offset(), v2)
}

func apply2out1d[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) {
	n := x.Dim(0)
	dx := x.Stride(0)
	dy1 := y1.Stride(0)
	dy2 := y2.Stride(0)
	ox := x.Offset()
	oy1 := y1.Offset()
	oy2 := y2.Offset()
	for i := 0; i < n; i++ {
		v1, v2 := f(ndarray.Load[Tin](x, ox))
		ndarray.Store(y1, oy1, v1)
		ndarray.Store(y2, oy2, v2)
		ox += dx
		oy1 += dy1
		oy2 += dy2
	}
}

func apply2outND[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) {
	ndims := x.NDims()
	var s, dx, dy1, dy2, idx [maxRank]int
	loopDims(x.Order(), x.Shape(), x.Strides(), y1.Strides(), &s, &dx, &dy1)
	loopDims(x.Order(), x.Shape(), x.Strides(), y2.Strides(), &s, &dx, &dy2)

	ox := x.Offset()
	oy1 := y1.Offset()
	oy2 := y2.Offset()
	total := x.Length()
	for n := 0; n < total; n++ {
		v1, v2 := f(ndarray.Load[Tin](x, ox))
		ndarray.Store(y1, oy1, v1)
		ndarray.Store(y2, oy2, v2)
		for k := 0; k < ndims; k++ {
			ox += dx[k]
			oy1 += dy1[k]
			oy2 += dy2[k]
			idx[k]++
			if idx[k] < s[k] {
				break
			}
			idx[k] = 0
		}
	}
}

func apply2outFallback[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) {
	shape := x.Shape()
	total := x.Length()
	for i := 0; i < total; i++ {
		px := strided.Vind2Bind(shape, x.Strides(), x.Offset(), x.Order(), i, x.IndexMode())
		py1 := strided.Vind2Bind(shape, y1.Strides(), y1.Offset(), y1.Order(), i, y1.IndexMode())
		py2 := strided.Vind2Bind(shape, y2.Strides(), y2.Offset(), y2.Order(), i, y2.IndexMode())
		v1, v2 := f(ndarray.Load[Tin](x, px))
		ndarray.Store(y1, py1, v1)
		ndarray.Store(y2, py2, v2)
	}
}
