package dsp

import "math"

// Rotator constants for the factored forward butterfly network,
// ck = cos(k*pi/16).
const (
	fc4   = 0.707106781 // c4
	fc6   = 0.382683433 // c6
	fc2m6 = 0.541196100 // c2 - c6
	fc2p6 = 1.306562965 // c2 + c6
)

// The butterfly network computes a uniformly scaled DCT: output u of a 1D
// pass carries a gain of g(u) over the orthonormal coefficient, with
// g(0) = 2*sqrt(2) and g(u) = 4*cos(u*pi/16) otherwise. aanPostScale folds
// the two per-axis gains into one multiply per coefficient on the final
// write; aanPreScale is its reciprocal counterpart applied by the inverse
// kernel on load.
var (
	aanPostScale [64]float32
	aanPreScale  [64]float32
)

func initAANScale() {
	var g [8]float64
	g[0] = 2 * math.Sqrt2
	for u := 1; u < 8; u++ {
		g[u] = 4 * math.Cos(float64(u)*math.Pi/16)
	}
	for v := 0; v < 8; v++ {
		for u := 0; u < 8; u++ {
			aanPostScale[v*8+u] = float32(1 / (g[v] * g[u]))
			aanPreScale[v*8+u] = float32(g[v] * g[u] / 64)
		}
	}
}

// fdctAAN computes the 2D DCT-II of an 8x8 tile with the factored butterfly
// network: 5 multiplies and 29 adds per 1D pass, plus one scale multiply per
// coefficient folded into the column-pass writes.
func fdctAAN(src, dst []float32, stride int) {
	_ = src[7*stride+7]
	_ = dst[7*stride+7]

	var tmp [64]float32

	// Row pass.
	for y := 0; y < 8; y++ {
		o := y * stride

		tmp0 := src[o+0] + src[o+7]
		tmp7 := src[o+0] - src[o+7]
		tmp1 := src[o+1] + src[o+6]
		tmp6 := src[o+1] - src[o+6]
		tmp2 := src[o+2] + src[o+5]
		tmp5 := src[o+2] - src[o+5]
		tmp3 := src[o+3] + src[o+4]
		tmp4 := src[o+3] - src[o+4]

		// Even part.
		tmp10 := tmp0 + tmp3
		tmp13 := tmp0 - tmp3
		tmp11 := tmp1 + tmp2
		tmp12 := tmp1 - tmp2

		t := y * 8
		tmp[t+0] = tmp10 + tmp11
		tmp[t+4] = tmp10 - tmp11

		z1 := (tmp12 + tmp13) * fc4
		tmp[t+2] = tmp13 + z1
		tmp[t+6] = tmp13 - z1

		// Odd part.
		tmp10 = tmp4 + tmp5
		tmp11 = tmp5 + tmp6
		tmp12 = tmp6 + tmp7

		z5 := (tmp10 - tmp12) * fc6
		z2 := fc2m6*tmp10 + z5
		z4 := fc2p6*tmp12 + z5
		z3 := tmp11 * fc4

		z11 := tmp7 + z3
		z13 := tmp7 - z3

		tmp[t+5] = z13 + z2
		tmp[t+3] = z13 - z2
		tmp[t+1] = z11 + z4
		tmp[t+7] = z11 - z4
	}

	// Column pass, scale folded into the writes.
	for u := 0; u < 8; u++ {
		tmp0 := tmp[u+0*8] + tmp[u+7*8]
		tmp7 := tmp[u+0*8] - tmp[u+7*8]
		tmp1 := tmp[u+1*8] + tmp[u+6*8]
		tmp6 := tmp[u+1*8] - tmp[u+6*8]
		tmp2 := tmp[u+2*8] + tmp[u+5*8]
		tmp5 := tmp[u+2*8] - tmp[u+5*8]
		tmp3 := tmp[u+3*8] + tmp[u+4*8]
		tmp4 := tmp[u+3*8] - tmp[u+4*8]

		// Even part.
		tmp10 := tmp0 + tmp3
		tmp13 := tmp0 - tmp3
		tmp11 := tmp1 + tmp2
		tmp12 := tmp1 - tmp2

		dst[0*stride+u] = (tmp10 + tmp11) * aanPostScale[0*8+u]
		dst[4*stride+u] = (tmp10 - tmp11) * aanPostScale[4*8+u]

		z1 := (tmp12 + tmp13) * fc4
		dst[2*stride+u] = (tmp13 + z1) * aanPostScale[2*8+u]
		dst[6*stride+u] = (tmp13 - z1) * aanPostScale[6*8+u]

		// Odd part.
		tmp10 = tmp4 + tmp5
		tmp11 = tmp5 + tmp6
		tmp12 = tmp6 + tmp7

		z5 := (tmp10 - tmp12) * fc6
		z2 := fc2m6*tmp10 + z5
		z4 := fc2p6*tmp12 + z5
		z3 := tmp11 * fc4

		z11 := tmp7 + z3
		z13 := tmp7 - z3

		dst[5*stride+u] = (z13 + z2) * aanPostScale[5*8+u]
		dst[3*stride+u] = (z13 - z2) * aanPostScale[3*8+u]
		dst[1*stride+u] = (z11 + z4) * aanPostScale[1*8+u]
		dst[7*stride+u] = (z11 - z4) * aanPostScale[7*8+u]
	}
}
