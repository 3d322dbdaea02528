package unary

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// rangeIdx fills out[:n] with 0..n-1, the identity loop order.
func rangeIdx(n int, out *[maxRank]int) {
	for i := 0; i < n; i++ {
		out[i] = i
	}
}

// sort2ins insertion-sorts x[:n] by ascending absolute value, applying
// the same exchanges to idx so idx records the loop interchange
// permutation.
func sort2ins(n int, x, idx *[maxRank]int) {
	for i := 1; i < n; i++ {
		vx := x[i]
		vi := idx[i]
		j := i - 1
		for j >= 0 && absInt(x[j]) > absInt(vx) {
			x[j+1] = x[j]
			idx[j+1] = idx[j]
			j--
		}
		x[j+1] = vx
		idx[j+1] = vi
	}
}

// permute stores arr permuted by idx into out, leaving arr untouched.
func permute(n int, arr []int, idx, out *[maxRank]int) {
	for i := 0; i < n; i++ {
		out[i] = arr[idx[i]]
	}
}

// blockSize selects a tile extent so a block's working set fits the byte
// budget for the widest participating element type.
func blockSize(widths ...int) int {
	max := 0
	for _, w := range widths {
		if w > max {
			max = w
		}
	}
	if max == 0 {
		return blockSizeElements
	}
	return blockSizeBytes / max
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// blockLoop tiles a strided loop nest after interchanging axes by
// ascending absolute input stride. Tiles along each axis are visited
// from the end of the axis backwards; elements inside a tile are visited
// with axis 0 (smallest input stride) fastest.
type blockLoop[Tin, Tout ndarray.Element] struct {
	x, y  *ndarray.Array
	f     func(Tin) Tout
	ndims int
	bsize int
	shape [maxRank]int
	sx    [maxRank]int
	sy    [maxRank]int
	ext   [maxRank]int // extents of the tile being visited
}

func applyBlocked[Tin, Tout ndarray.Element](x, y *ndarray.Array, f func(Tin) Tout) {
	b := blockLoop[Tin, Tout]{x: x, y: y, f: f, ndims: x.NDims()}

	// Copy the input strides to avoid mutating the descriptor, sort them
	// into increasing magnitude, and permute the shape and the output
	// strides through the same permutation.
	var idx [maxRank]int
	copy(b.sx[:b.ndims], x.Strides())
	rangeIdx(b.ndims, &idx)
	sort2ins(b.ndims, &b.sx, &idx)
	permute(b.ndims, x.Shape(), &idx, &b.shape)
	permute(b.ndims, y.Strides(), &idx, &b.sy)

	b.bsize = blockSize(x.BytesPerElement(), y.BytesPerElement())
	b.tile(b.ndims-1, x.Offset(), y.Offset())
}

// tile recurses over axes, splitting axis k into blocks and recomputing
// the per-tile start offsets from the permuted strides.
func (b *blockLoop[Tin, Tout]) tile(k, ox, oy int) {
	if k < 0 {
		b.run(ox, oy)
		return
	}
	for j := b.shape[k]; j > 0; {
		var s int
		if j < b.bsize {
			s = j
			j = 0
		} else {
			s = b.bsize
			j -= b.bsize
		}
		b.ext[k] = s
		b.tile(k-1, ox+j*b.sx[k], oy+j*b.sy[k])
	}
}

// run walks one tile with precomputed pointer increments.
func (b *blockLoop[Tin, Tout]) run(ox, oy int) {
	var dx, dy, idx [maxRank]int
	total := 1
	for k := 0; k < b.ndims; k++ {
		total *= b.ext[k]
		dx[k] = b.sx[k]
		dy[k] = b.sy[k]
		if k > 0 {
			dx[k] -= b.ext[k-1] * b.sx[k-1]
			dy[k] -= b.ext[k-1] * b.sy[k-1]
		}
	}
	for n := 0; n < total; n++ {
		ndarray.Store(b.y, oy, b.f(ndarray.Load[Tin](b.x, ox)))
		for k := 0; k < b.ndims; k++ {
			ox += dx[k]
			oy += dy[k]
			idx[k]++
			if idx[k] < b.ext[k] {
				break
			}
			idx[k] = 0
		}
	}
}

// blockLoop2 is the two-output form of blockLoop.
type blockLoop2[Tin, Tout1, Tout2 ndarray.Element] struct {
	x, y1, y2 *ndarray.Array
	f         func(Tin) (Tout1, Tout2)
	ndims     int
	bsize     int
	shape     [maxRank]int
	sx        [maxRank]int
	sy1       [maxRank]int
	sy2       [maxRank]int
	ext       [maxRank]int
}

func apply2outBlocked[Tin, Tout1, Tout2 ndarray.Element](x, y1, y2 *ndarray.Array, f func(Tin) (Tout1, Tout2)) {
	b := blockLoop2[Tin, Tout1, Tout2]{x: x, y1: y1, y2: y2, f: f, ndims: x.NDims()}

	var idx [maxRank]int
	copy(b.sx[:b.ndims], x.Strides())
	rangeIdx(b.ndims, &idx)
	sort2ins(b.ndims, &b.sx, &idx)
	permute(b.ndims, x.Shape(), &idx, &b.shape)
	permute(b.ndims, y1.Strides(), &idx, &b.sy1)
	permute(b.ndims, y2.Strides(), &idx, &b.sy2)

	b.bsize = blockSize(x.BytesPerElement(), y1.BytesPerElement(), y2.BytesPerElement())
	b.tile(b.ndims-1, x.Offset(), y1.Offset(), y2.Offset())
}

func (b *blockLoop2[Tin, Tout1, Tout2]) tile(k, ox, oy1, oy2 int) {
	if k < 0 {
		b.run(ox, oy1, oy2)
		return
	}
	for j := b.shape[k]; j > 0; {
		var s int
		if j < b.bsize {
			s = j
			j = 0
		} else {
			s = b.bsize
			j -= b.bsize
		}
		b.ext[k] = s
		b.tile(k-1, ox+j*b.sx[k], oy1+j*b.sy1[k], oy2+j*b.sy2[k])
	}
}

func (b *blockLoop2[Tin, Tout1, Tout2]) run(ox, oy1, oy2 int) {
	var dx, dy1, dy2, idx [maxRank]int
	total := 1
	for k := 0; k < b.ndims; k++ {
		total *= b.ext[k]
		dx[k] = b.sx[k]
		dy1[k] = b.sy1[k]
		dy2[k] = b.sy2[k]
		if k > 0 {
			dx[k] -= b.ext[k-1] * b.sx[k-1]
			dy1[k] -= b.ext[k-1] * b.sy1[k-1]
			dy2[k] -= b.ext[k-1] * b.sy2[k-1]
		}
	}
	for n := 0; n < total; n++ {
		v1, v2 := b.f(ndarray.Load[Tin](b.x, ox))
		ndarray.Store(b.y1, oy1, v1)
		ndarray.Store(b.y2, oy2, v2)
		for k := 0; k < b.ndims; k++ {
			ox += dx[k]
			oy1 += dy1[k]
			oy2 += dy2[k]
			idx[k]++
			if idx[k] < b.ext[k] {
				break
			}
			idx[k] = 0
		}
	}
}
