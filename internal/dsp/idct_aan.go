package dsp

// Rotator constants for the inverse butterfly network, ck = cos(k*pi/16).
const (
	ic4   = 1.414213562  // 2*c4
	ic2   = 1.847759065  // 2*c2
	ic2m6 = 1.082392200  // 2*(c2 - c6)
	ic2p6 = -2.613125930 // -2*(c2 + c6)
)

// idctAAN computes the 2D DCT-III of an 8x8 coefficient tile, the inverse of
// fdctAAN. The per-coefficient scale is folded into the column-pass loads.
func idctAAN(src, dst []float32, stride int) {
	_ = src[7*stride+7]
	_ = dst[7*stride+7]

	var tmp [64]float32

	// Column pass, scale folded into the loads.
	for u := 0; u < 8; u++ {
		// Even part.
		t0 := src[0*stride+u] * aanPreScale[0*8+u]
		t1 := src[2*stride+u] * aanPreScale[2*8+u]
		t2 := src[4*stride+u] * aanPreScale[4*8+u]
		t3 := src[6*stride+u] * aanPreScale[6*8+u]

		tmp10 := t0 + t2
		tmp11 := t0 - t2
		tmp13 := t1 + t3
		tmp12 := (t1-t3)*ic4 - tmp13

		t0 = tmp10 + tmp13
		t3 = tmp10 - tmp13
		t1 = tmp11 + tmp12
		t2 = tmp11 - tmp12

		// Odd part.
		t4 := src[1*stride+u] * aanPreScale[1*8+u]
		t5 := src[3*stride+u] * aanPreScale[3*8+u]
		t6 := src[5*stride+u] * aanPreScale[5*8+u]
		t7 := src[7*stride+u] * aanPreScale[7*8+u]

		z13 := t6 + t5
		z10 := t6 - t5
		z11 := t4 + t7
		z12 := t4 - t7

		t7 = z11 + z13
		tmp11 = (z11 - z13) * ic4

		z5 := (z10 + z12) * ic2
		tmp10 = ic2m6*z12 - z5
		tmp12 = ic2p6*z10 + z5

		t6 = tmp12 - t7
		t5 = tmp11 - t6
		t4 = tmp10 + t5

		tmp[0*8+u] = t0 + t7
		tmp[7*8+u] = t0 - t7
		tmp[1*8+u] = t1 + t6
		tmp[6*8+u] = t1 - t6
		tmp[2*8+u] = t2 + t5
		tmp[5*8+u] = t2 - t5
		tmp[4*8+u] = t3 + t4
		tmp[3*8+u] = t3 - t4
	}

	// Row pass.
	for y := 0; y < 8; y++ {
		t := y * 8
		o := y * stride

		// Even part.
		t0 := tmp[t+0]
		t1 := tmp[t+2]
		t2 := tmp[t+4]
		t3 := tmp[t+6]

		tmp10 := t0 + t2
		tmp11 := t0 - t2
		tmp13 := t1 + t3
		tmp12 := (t1-t3)*ic4 - tmp13

		t0 = tmp10 + tmp13
		t3 = tmp10 - tmp13
		t1 = tmp11 + tmp12
		t2 = tmp11 - tmp12

		// Odd part.
		t4 := tmp[t+1]
		t5 := tmp[t+3]
		t6 := tmp[t+5]
		t7 := tmp[t+7]

		z13 := t6 + t5
		z10 := t6 - t5
		z11 := t4 + t7
		z12 := t4 - t7

		t7 = z11 + z13
		tmp11 = (z11 - z13) * ic4

		z5 := (z10 + z12) * ic2
		tmp10 = ic2m6*z12 - z5
		tmp12 = ic2p6*z10 + z5

		t6 = tmp12 - t7
		t5 = tmp11 - t6
		t4 = tmp10 + t5

		dst[o+0] = t0 + t7
		dst[o+7] = t0 - t7
		dst[o+1] = t1 + t6
		dst[o+6] = t1 - t6
		dst[o+2] = t2 + t5
		dst[o+5] = t2 - t5
		dst[o+4] = t3 + t4
		dst[o+3] = t3 - t4
	}
}
