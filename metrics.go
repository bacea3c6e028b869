package blockdct

import "github.com/deepteams/blockdct/internal/dsp"

// SSE returns the sum of squared differences between the regions of two
// float32 planes. The planes may use different strides.
func SSE(a, b []float32, aStride, bStride int, roi ROI) float64 {
	return dsp.SSE(a, b, aStride, bStride, roi.Width, roi.Height)
}

// MSE returns the mean squared error between the regions of two planes.
func MSE(a, b []float32, aStride, bStride int, roi ROI) float64 {
	n := roi.Width * roi.Height
	if n == 0 {
		return 0
	}
	return SSE(a, b, aStride, bStride, roi) / float64(n)
}

// PSNR returns the peak signal-to-noise ratio between the regions of two
// planes, in decibels against a 255 peak. Identical regions report 99 dB.
func PSNR(a, b []float32, aStride, bStride int, roi ROI) float64 {
	return dsp.PSNRFromSSE(SSE(a, b, aStride, bStride, roi), roi.Width*roi.Height)
}
