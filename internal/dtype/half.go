package dtype

import (
	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"
)

// Scalar conversion helpers for the two half-precision encodings. Both
// types travel through buffers as raw 16-bit patterns.

// Float16FromFloat32 rounds a float32 to the nearest IEEE 754 half bit
// pattern.
func Float16FromFloat32(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}

// Float16ToFloat32 expands an IEEE 754 half bit pattern to float32.
func Float16ToFloat32(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}

// BFloat16FromFloat32 truncates a float32 to a bfloat16 bit pattern.
func BFloat16FromFloat32(f float32) uint16 {
	return uint16(bfloat16.FromFloat32(f))
}

// BFloat16ToFloat32 expands a bfloat16 bit pattern to float32.
func BFloat16ToFloat32(bits uint16) float32 {
	return bfloat16.ToFloat32(bfloat16.BF16(bits))
}
