package dsp

// quantizeBlock divides each coefficient of an 8x8 tile by the table entry
// for its in-block position.
func quantizeBlock(b []float32, stride int, q *[64]float32) {
	_ = b[7*stride+7]
	for y := 0; y < 8; y++ {
		o := y * stride
		t := y * 8
		b[o+0] /= q[t+0]
		b[o+1] /= q[t+1]
		b[o+2] /= q[t+2]
		b[o+3] /= q[t+3]
		b[o+4] /= q[t+4]
		b[o+5] /= q[t+5]
		b[o+6] /= q[t+6]
		b[o+7] /= q[t+7]
	}
}

// dequantizeBlock multiplies each coefficient of an 8x8 tile by the table
// entry for its in-block position.
func dequantizeBlock(b []float32, stride int, q *[64]float32) {
	_ = b[7*stride+7]
	for y := 0; y < 8; y++ {
		o := y * stride
		t := y * 8
		b[o+0] *= q[t+0]
		b[o+1] *= q[t+1]
		b[o+2] *= q[t+2]
		b[o+3] *= q[t+3]
		b[o+4] *= q[t+4]
		b[o+5] *= q[t+5]
		b[o+6] *= q[t+6]
		b[o+7] *= q[t+7]
	}
}

// quantizeBlockInt16 divides each coefficient of an 8x8 int16 tile by the
// table entry for its in-block position, rounding to nearest with ties away
// from zero.
func quantizeBlockInt16(b []int16, stride int, q *[64]int32) {
	_ = b[7*stride+7]
	for y := 0; y < 8; y++ {
		o := y * stride
		t := y * 8
		for x := 0; x < 8; x++ {
			v := int32(b[o+x])
			quant := q[t+x]
			sign := int32(1)
			if v < 0 {
				sign = -1
				v = -v
			}
			b[o+x] = int16(sign * ((v + quant/2) / quant))
		}
	}
}

// dequantizeBlockInt16 multiplies each coefficient of an 8x8 int16 tile by
// the table entry for its in-block position.
func dequantizeBlockInt16(b []int16, stride int, q *[64]int32) {
	_ = b[7*stride+7]
	for y := 0; y < 8; y++ {
		o := y * stride
		t := y * 8
		for x := 0; x < 8; x++ {
			b[o+x] = int16(int32(b[o+x]) * q[t+x])
		}
	}
}
