package dsp

import "math"

// SSE computes the sum of squared differences between two float32 planes.
func SSE(a, b []float32, aStride, bStride, width, height int) float64 {
	var sse float64
	for y := 0; y < height; y++ {
		pa := a[y*aStride:]
		pb := b[y*bStride:]
		_ = pa[width-1]
		_ = pb[width-1]
		for x := 0; x < width; x++ {
			d := float64(pa[x]) - float64(pb[x])
			sse += d * d
		}
	}
	return sse
}

// PSNRFromSSE computes the PSNR from the sum of squared errors over count
// samples, with the 8-bit peak of 255.
func PSNRFromSSE(sse float64, count int) float64 {
	if sse == 0 || count == 0 {
		return 99.0 // identical
	}
	mse := sse / float64(count)
	return 10.0 * math.Log10(255.0*255.0/mse)
}
