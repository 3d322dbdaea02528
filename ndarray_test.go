// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray"
)

func float64Buffer(vals ...float64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.NativeEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func TestEndToEndView(t *testing.T) {
	buf := float64Buffer(1, 2, 3, 4, 5, 6)
	x := ndarray.New(ndarray.Float64, buf, []int{2, 3}, []int{24, 8}, 0,
		ndarray.RowMajor, ndarray.IndexError, nil)

	require.True(t, x.HasFlags(ndarray.FlagRowMajorContiguous))

	v, err := ndarray.IGet[float64](x, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = ndarray.Get[float64](x, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEndToEndApply(t *testing.T) {
	buf := float64Buffer(1, 2, 3, 4)
	x := ndarray.New(ndarray.Float64, buf, []int{2, 2}, []int{16, 8}, 0,
		ndarray.RowMajor, ndarray.IndexError, nil)
	y := ndarray.New(ndarray.Float64, make([]byte, 4*8), []int{2, 2}, []int{16, 8}, 0,
		ndarray.RowMajor, ndarray.IndexError, nil)

	require.NoError(t, ndarray.Apply(x, y, func(v float64) float64 { return v * v }))

	for i, want := range []float64{1, 4, 9, 16} {
		v, err := ndarray.IGet[float64](y, i)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestEndToEndBroadcast(t *testing.T) {
	out := make([]int, 4)
	require.NoError(t, ndarray.BroadcastShapes([][]int{{8, 1, 6, 1}, {7, 1, 5}}, out))
	assert.Equal(t, []int{8, 7, 6, 5}, out)

	err := ndarray.BroadcastShapes([][]int{{3}, {4}}, make([]int, 1))
	assert.ErrorIs(t, err, ndarray.ErrBroadcast)
}

func TestEndToEndCasting(t *testing.T) {
	assert.True(t, ndarray.IsAllowedCast(ndarray.Float32, ndarray.Float64, ndarray.CastSafe))
	assert.False(t, ndarray.IsAllowedCast(ndarray.Float64, ndarray.Float32, ndarray.CastSafe))
	assert.True(t, ndarray.IsAllowedCast(ndarray.Float64, ndarray.Float32, ndarray.CastSameKind))
	assert.True(t, ndarray.IsAllowedCast(ndarray.Float64, ndarray.Int8, ndarray.CastUnsafe))
	assert.Equal(t, ndarray.Float64, ndarray.DTypeFromChar('d'))
	assert.Equal(t, ndarray.Complex128, ndarray.DTypeFromString("complex128"))
	assert.Equal(t, ndarray.IndexWrap, ndarray.IndexModeFromString("wrap"))
}
