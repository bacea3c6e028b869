package dsp

// Plane conversion kernels. Planes are row-major with independent strides;
// width and height are in samples and apply to both sides.

// Clip8 clips v to the range [0, 255].
// Uses unsigned comparison for single-branch hot path when v is in [0, 255].
func Clip8(v int32) uint8 {
	if uint32(v) <= 255 {
		return uint8(v)
	}
	// Out of range: clamp to 0 or 255.
	// Arithmetic right shift: v>>31 is 0 for positive, -1 for negative.
	return uint8(^(v >> 31) & 255)
}

// FloatFromBytes converts a byte plane to float32, adding offset to every
// sample. A caller passing a negative offset gets the usual level shift that
// centres 8-bit samples around zero.
func FloatFromBytes(dst []float32, src []byte, dstStride, srcStride, width, height int, offset float32) {
	for y := 0; y < height; y++ {
		d := dst[y*dstStride:]
		s := src[y*srcStride:]
		_ = d[width-1]
		_ = s[width-1]
		for x := 0; x < width; x++ {
			d[x] = float32(s[x]) + offset
		}
	}
}

// BytesFromFloat converts a float32 plane to bytes, adding offset, rounding
// to nearest and clamping to [0, 255].
func BytesFromFloat(dst []byte, src []float32, dstStride, srcStride, width, height int, offset float32) {
	for y := 0; y < height; y++ {
		d := dst[y*dstStride:]
		s := src[y*srcStride:]
		_ = d[width-1]
		_ = s[width-1]
		for x := 0; x < width; x++ {
			// Truncation after +0.5 only misrounds below zero, where the
			// clamp lands on 0 either way.
			d[x] = Clip8(int32(s[x] + offset + 0.5))
		}
	}
}

// Int16FromFloat converts a float32 plane to int16, rounding to nearest with
// ties away from zero. Values are assumed to fit int16.
func Int16FromFloat(dst []int16, src []float32, dstStride, srcStride, width, height int) {
	for y := 0; y < height; y++ {
		d := dst[y*dstStride:]
		s := src[y*srcStride:]
		_ = d[width-1]
		_ = s[width-1]
		for x := 0; x < width; x++ {
			v := s[x]
			if v >= 0 {
				d[x] = int16(v + 0.5)
			} else {
				d[x] = int16(v - 0.5)
			}
		}
	}
}

// FloatFromInt16 widens an int16 plane to float32.
func FloatFromInt16(dst []float32, src []int16, dstStride, srcStride, width, height int) {
	for y := 0; y < height; y++ {
		d := dst[y*dstStride:]
		s := src[y*srcStride:]
		_ = d[width-1]
		_ = s[width-1]
		for x := 0; x < width; x++ {
			d[x] = float32(s[x])
		}
	}
}

// AddScalar adds offset to every sample of a float32 plane in place.
func AddScalar(p []float32, stride, width, height int, offset float32) {
	for y := 0; y < height; y++ {
		row := p[y*stride:]
		_ = row[width-1]
		for x := 0; x < width; x++ {
			row[x] += offset
		}
	}
}
