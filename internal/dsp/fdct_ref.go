package dsp

import "math"

// dctBasis holds the orthonormal 8-point DCT-II basis in row-major order:
// dctBasis[u*8+x] = c(u) * cos((2x+1)*u*pi/16) with c(0) = sqrt(1/8) and
// c(u) = sqrt(2/8) otherwise. The same table drives the forward transform
// and, through transposed indexing, the inverse.
var dctBasis [64]float64

func initDCTBasis() {
	for u := 0; u < 8; u++ {
		c := math.Sqrt(2.0 / 8.0)
		if u == 0 {
			c = math.Sqrt(1.0 / 8.0)
		}
		for x := 0; x < 8; x++ {
			dctBasis[u*8+x] = c * math.Cos(float64((2*x+1)*u)*math.Pi/16)
		}
	}
}

// fdctRef computes the 2D DCT-II of an 8x8 tile by direct basis-matrix
// evaluation, rows then columns, accumulating in float64.
func fdctRef(src, dst []float32, stride int) {
	_ = src[7*stride+7]
	_ = dst[7*stride+7]

	var tmp [64]float64

	// Row pass: tmp[y][u] = sum_x src[y][x] * basis[u][x].
	for y := 0; y < 8; y++ {
		o := y * stride
		for u := 0; u < 8; u++ {
			var s float64
			for x := 0; x < 8; x++ {
				s += dctBasis[u*8+x] * float64(src[o+x])
			}
			tmp[y*8+u] = s
		}
	}

	// Column pass: dst[v][u] = sum_y basis[v][y] * tmp[y][u].
	for v := 0; v < 8; v++ {
		o := v * stride
		for u := 0; u < 8; u++ {
			var s float64
			for y := 0; y < 8; y++ {
				s += dctBasis[v*8+y] * tmp[y*8+u]
			}
			dst[o+u] = float32(s)
		}
	}
}
