// Copyright 2026 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided, typed N-dimensional array views over
// caller-owned flat byte buffers.
//
// # Overview
//
// An ndarray is a descriptor: a data type, a shape, per-axis strides in
// bytes, and a byte offset, mapping logical multi-dimensional coordinates
// onto a flat buffer. This package provides:
//   - The Array descriptor with contiguity flags and typed element access
//   - The shape/stride/order/index-mode algebra (Numel, Shape2Strides,
//     Strides2Order, BroadcastShapes, ...)
//   - Coordinate mapping between subscripts, view-linear indices, and
//     buffer byte offsets (Sub2Ind, Ind2Sub, Vind2Bind, Bind2Vind)
//   - A data type registry with safe and same-kind casting tables
//   - An element-wise unary apply engine with rank-specialized loops and
//     cache-aware blocking
//
// # Basic Usage
//
//	buf := make([]byte, 6*8)
//	x := ndarray.New(ndarray.Float64, buf, []int{2, 3}, []int{24, 8}, 0,
//	    ndarray.RowMajor, ndarray.IndexError, nil)
//
//	ndarray.Set(x, 5.0, 1, 1)
//	v, _ := ndarray.IGet[float64](x, 4) // 5.0
//
// # Views
//
// Strides may be negative or zero, so a descriptor can express reversed,
// broadcast, and permuted views of the same buffer without copying. The
// descriptor never owns the buffer; callers keep it alive and enforce
// disjoint writes.
//
// # Element-wise Apply
//
//	y := ndarray.New(ndarray.Float64, make([]byte, 6*8), []int{2, 3},
//	    []int{24, 8}, 0, ndarray.RowMajor, ndarray.IndexError, nil)
//	_ = ndarray.Apply(x, y, func(v float64) float64 { return v * v })
//
// The apply engine selects a loop implementation by rank, interchanges
// loops to follow the smallest input strides, and can tile iteration so
// each block fits a fixed cache budget. All implementations produce
// bit-identical results.
//
// # Concurrency
//
// The core holds no mutable global state. Concurrent reads of a
// descriptor are safe; concurrent writes to overlapping buffer regions
// are undefined.
package ndarray
