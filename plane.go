package blockdct

import "github.com/deepteams/blockdct/internal/dsp"

// LevelShift is the offset conventionally subtracted from 8-bit samples
// before the forward transform and added back after the inverse, centering
// pixel values around zero.
const LevelShift = 128

// PlaneLen returns the minimum plane length for a stride and region,
// (roi.Height-1)*stride + roi.Width. Every operation in this package
// requires its planes to be at least this long.
func PlaneLen(stride int, roi ROI) int {
	return (roi.Height-1)*stride + roi.Width
}

// FloatFromBytes copies the region from a byte plane into a float32 plane,
// adding offset to every sample. Pass -LevelShift to center 8-bit pixels for
// the forward transform. The planes may use different strides; each must
// satisfy the usual size contract for its stride.
func FloatFromBytes(dst []float32, src []byte, dstStride, srcStride int, roi ROI, offset float32) {
	dsp.FloatFromBytes(dst, src, dstStride, srcStride, roi.Width, roi.Height, offset)
}

// BytesFromFloat copies the region from a float32 plane into a byte plane,
// adding offset to every sample, rounding to nearest and clamping to
// [0, 255]. Pass LevelShift to undo the forward shift.
func BytesFromFloat(dst []byte, src []float32, dstStride, srcStride int, roi ROI, offset float32) {
	dsp.BytesFromFloat(dst, src, dstStride, srcStride, roi.Width, roi.Height, offset)
}

// Int16FromFloat copies the region from a float32 plane into an int16 plane,
// rounding to the nearest integer with ties away from zero. Values outside
// the int16 range are a contract violation and convert to an
// implementation-dependent result; transform coefficients of level-shifted
// 8-bit input stay well inside the range.
func Int16FromFloat(dst []int16, src []float32, dstStride, srcStride int, roi ROI) {
	dsp.Int16FromFloat(dst, src, dstStride, srcStride, roi.Width, roi.Height)
}

// FloatFromInt16 copies the region from an int16 plane into a float32 plane.
// The conversion is exact.
func FloatFromInt16(dst []float32, src []int16, dstStride, srcStride int, roi ROI) {
	dsp.FloatFromInt16(dst, src, dstStride, srcStride, roi.Width, roi.Height)
}

// AddScalar adds offset to every sample of the region, in place.
func AddScalar(srcDst []float32, stride int, roi ROI, offset float32) {
	dsp.AddScalar(srcDst, stride, roi.Width, roi.Height, offset)
}
