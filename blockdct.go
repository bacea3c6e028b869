package blockdct

import "github.com/deepteams/blockdct/internal/dsp"

// Impl selects which transform kernels back ForwardDCT and InverseDCT.
type Impl int

const (
	// ImplAuto picks the fastest conforming implementation.
	ImplAuto Impl = iota
	// ImplReference selects the separable float64 kernels. They follow the
	// DCT definition directly and serve as the conformance baseline.
	ImplReference
	// ImplFast selects the factored float32 kernels with scaling folded
	// into the column passes.
	ImplFast
)

func (i Impl) String() string {
	switch i {
	case ImplAuto:
		return "auto"
	case ImplReference:
		return "reference"
	case ImplFast:
		return "fast"
	}
	return "unknown"
}

var activeImpl = ImplAuto

// SetImpl switches the transform kernels at runtime. Unknown values fall
// back to ImplAuto. The switch mutates package-level dispatch state and must
// not race with in-flight transforms.
func SetImpl(impl Impl) {
	switch impl {
	case ImplReference:
		dsp.UseReference()
	case ImplFast:
		dsp.UseFast()
	default:
		impl = ImplAuto
		dsp.UseFast()
	}
	activeImpl = impl
}

// ActiveImpl returns the implementation selected by the last SetImpl call,
// ImplAuto if none was made.
func ActiveImpl() Impl { return activeImpl }

// ForwardDCT applies the 8x8 forward DCT-II to every block of the region,
// reading from src and writing the coefficients to dst. The planes share
// stride and must each hold at least (roi.Height-1)*stride + roi.Width
// samples; src and dst may alias only if they are the same slice with the
// same offset. Samples outside the region are not touched.
//
// The region must satisfy roi.Aligned() and the planes must be large enough;
// neither is checked here, and out-of-contract calls corrupt results or
// panic on slice bounds.
func ForwardDCT(src, dst []float32, stride int, roi ROI) {
	for b := range roi.Blocks() {
		o := b.Offset(stride)
		dsp.FDCT8x8(src[o:], dst[o:], stride)
	}
}

// InverseDCT applies the 8x8 inverse DCT-III to every block of the region,
// reading coefficients from src and writing samples to dst. The contract
// matches ForwardDCT.
func InverseDCT(src, dst []float32, stride int, roi ROI) {
	for b := range roi.Blocks() {
		o := b.Offset(stride)
		dsp.IDCT8x8(src[o:], dst[o:], stride)
	}
}

// ForwardDCTBlock transforms the single 8x8 block whose top-left sample is
// at src[0], writing coefficients to dst with the same layout.
func ForwardDCTBlock(src, dst []float32, stride int) {
	dsp.FDCT8x8(src, dst, stride)
}

// InverseDCTBlock inverts the single 8x8 coefficient block at src[0],
// writing samples to dst with the same layout.
func InverseDCTBlock(src, dst []float32, stride int) {
	dsp.IDCT8x8(src, dst, stride)
}
