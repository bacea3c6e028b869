package dsp

// idctRef computes the 2D DCT-III of an 8x8 coefficient tile by direct
// basis-matrix evaluation with transposed indexing, the exact inverse of
// fdctRef. Accumulates in float64.
func idctRef(src, dst []float32, stride int) {
	_ = src[7*stride+7]
	_ = dst[7*stride+7]

	var tmp [64]float64

	// Row pass: tmp[v][x] = sum_u src[v][u] * basis[u][x].
	for v := 0; v < 8; v++ {
		o := v * stride
		for x := 0; x < 8; x++ {
			var s float64
			for u := 0; u < 8; u++ {
				s += dctBasis[u*8+x] * float64(src[o+u])
			}
			tmp[v*8+x] = s
		}
	}

	// Column pass: dst[y][x] = sum_v basis[v][y] * tmp[v][x].
	for y := 0; y < 8; y++ {
		o := y * stride
		for x := 0; x < 8; x++ {
			var s float64
			for v := 0; v < 8; v++ {
				s += dctBasis[v*8+y] * tmp[v*8+x]
			}
			dst[o+x] = float32(s)
		}
	}
}
