// Package blockdct implements the 8x8 block transform core of block-based
// image and video compression: the forward DCT (DCT-II), its inverse
// (DCT-III), and coefficient quantization, all over caller-owned plane
// buffers.
//
// Planes are row-major slices with an explicit stride that may exceed the
// logical width. Operations cover a rectangular region of interest whose
// dimensions are multiples of 8; every 8x8 block is processed independently,
// so callers are free to tile, reorder, or parallelize block work.
//
// The package supports:
//   - Forward and inverse transforms over whole planes or single blocks
//   - Two conforming kernel implementations selectable at runtime
//     (a float64 reference and a fast factored float32 variant)
//   - Float and int16 quantization against immutable divisor tables,
//     including the standard perceptual tables and quality scaling
//   - Level-shifted conversions between byte, float32 and int16 planes
//   - A parallel block driver and a pooled reconstruction pipeline
//   - PSNR/MSE reconstruction metrics
//
// Basic usage for a forward transform:
//
//	roi := blockdct.ROI{Width: w, Height: h}
//	blockdct.FloatFromBytes(plane, pixels, stride, stride, roi, -128)
//	blockdct.ForwardDCT(plane, coeffs, stride, roi)
//
// Quantization against the standard luminance table:
//
//	t := blockdct.TableForQuality(blockdct.StandardLumaTable(), 75)
//	t.Quantize(coeffs, stride, roi)
package blockdct
