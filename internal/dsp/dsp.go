package dsp

// Transform function variables for dispatch.
// These are set to the fast pure-Go implementations by Init() and can be
// repointed at the reference implementations (or future platform-specific
// ones) at runtime.
//
// Both transforms share the same shape: src and dst address the top-left
// sample of an 8x8 tile, stride is the row pitch in elements, and only the
// 64 tile positions are read or written. src and dst may address the same
// tile but must not partially overlap; each kernel drains src into a scratch
// block before writing dst.
var (
	// FDCT8x8 computes the two-dimensional orthonormal DCT-II of one tile.
	FDCT8x8 func(src, dst []float32, stride int)

	// IDCT8x8 computes the two-dimensional DCT-III of one tile, the exact
	// inverse of FDCT8x8.
	IDCT8x8 func(src, dst []float32, stride int)
)

// Quantizer function variables, dispatched the same way. Each works in place
// on the 8x8 tile at b[0] against a row-major divisor table. Init wires the
// portable implementations; UseReference and UseFast switch the transform
// pair only.
var (
	// QuantizeBlock divides each coefficient by the table entry for its
	// in-block position. The result stays float32; rounding to integer codes
	// is the int16 variant's job.
	QuantizeBlock func(b []float32, stride int, q *[64]float32)

	// DequantizeBlock multiplies each coefficient by the table entry for its
	// in-block position, the inverse of QuantizeBlock.
	DequantizeBlock func(b []float32, stride int, q *[64]float32)

	// QuantizeBlockInt16 divides each int16 coefficient by the table entry
	// for its in-block position, rounding to nearest with ties away from
	// zero. All table entries must be positive.
	QuantizeBlockInt16 func(b []int16, stride int, q *[64]int32)

	// DequantizeBlockInt16 multiplies each int16 coefficient by the table
	// entry for its in-block position, the inverse of QuantizeBlockInt16.
	DequantizeBlockInt16 func(b []int16, stride int, q *[64]int32)
)

// Init initialises the coefficient tables and points the function variables
// at the default implementations. It is called from an init function and
// again by tests that need to restore the default dispatch state.
func Init() {
	// Basis and scale tables.
	initDCTBasis()
	initAANScale()

	// Quantizers.
	QuantizeBlock = quantizeBlock
	DequantizeBlock = dequantizeBlock
	QuantizeBlockInt16 = quantizeBlockInt16
	DequantizeBlockInt16 = dequantizeBlockInt16

	// Transforms.
	UseFast()
}

// UseReference selects the direct basis-matrix kernels. They accumulate in
// float64 and serve as the conformance baseline for everything else.
func UseReference() {
	FDCT8x8 = fdctRef
	IDCT8x8 = idctRef
}

// UseFast selects the factored butterfly kernels.
func UseFast() {
	FDCT8x8 = fdctAAN
	IDCT8x8 = idctAAN
}

func init() {
	Init()
}
