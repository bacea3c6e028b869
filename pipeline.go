package blockdct

import "github.com/deepteams/blockdct/internal/pool"

// Reconstruct runs the float pipeline over the region: forward transform,
// quantization against t, dequantization, inverse transform. src holds
// level-shifted samples and dst receives their reconstruction; the two may
// be the same slice. Coefficients live in a pooled scratch plane.
func Reconstruct(src, dst []float32, stride int, roi ROI, t *Table) {
	coeffs := pool.GetFloat32(PlaneLen(stride, roi))
	defer pool.PutFloat32(coeffs)

	ForwardDCT(src, coeffs, stride, roi)
	t.Quantize(coeffs, stride, roi)
	t.Dequantize(coeffs, stride, roi)
	InverseDCT(coeffs, dst, stride, roi)
}

// ReconstructInt16 runs the int16 pipeline over the region: forward
// transform, coefficients rounded to int16, integer quantization against t,
// integer dequantization, widening back to float32, inverse transform. The
// plane contract matches Reconstruct.
func ReconstructInt16(src, dst []float32, stride int, roi ROI, t *Table) {
	n := PlaneLen(stride, roi)
	coeffs := pool.GetFloat32(n)
	defer pool.PutFloat32(coeffs)
	shorts := pool.GetInt16(n)
	defer pool.PutInt16(shorts)

	ForwardDCT(src, coeffs, stride, roi)
	Int16FromFloat(shorts, coeffs, stride, stride, roi)
	t.QuantizeInt16(shorts, stride, roi)
	t.DequantizeInt16(shorts, stride, roi)
	FloatFromInt16(coeffs, shorts, stride, stride, roi)
	InverseDCT(coeffs, dst, stride, roi)
}
