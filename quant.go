package blockdct

import (
	"errors"

	"github.com/deepteams/blockdct/internal/dsp"
)

// ErrInvalidTable is returned by NewTable when a divisor is not positive.
var ErrInvalidTable = errors.New("blockdct: table divisor out of range")

// Table is an immutable set of 64 quantization divisors in row-major natural
// order. It carries both float32 and int32 forms so the float and int16
// quantizers share one value. Construct tables with NewTable,
// StandardLumaTable, StandardChromaTable or TableForQuality.
type Table struct {
	f32 [64]float32
	i32 [64]int32
}

// NewTable builds a Table from row-major divisors. Every divisor must be
// positive; otherwise NewTable returns ErrInvalidTable.
func NewTable(divisors *[64]int32) (*Table, error) {
	for _, d := range divisors {
		if d <= 0 {
			return nil, ErrInvalidTable
		}
	}
	return newTableUnchecked(divisors), nil
}

func newTableUnchecked(divisors *[64]int32) *Table {
	t := &Table{i32: *divisors}
	for i, d := range divisors {
		t.f32[i] = float32(d)
	}
	return t
}

// At returns the divisor for coefficient row y, column x.
func (t *Table) At(y, x int) int32 { return t.i32[y*BlockSize+x] }

// Standard base matrices from JPEG Annex K, row-major.
var (
	stdLumaDivisors = [64]int32{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	}
	stdChromaDivisors = [64]int32{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	}
)

// StandardLumaTable returns the standard luminance quantization matrix. The
// divisors grow toward high frequencies, matching perceptual sensitivity.
func StandardLumaTable() *Table { return newTableUnchecked(&stdLumaDivisors) }

// StandardChromaTable returns the standard chrominance quantization matrix.
func StandardChromaTable() *Table { return newTableUnchecked(&stdChromaDivisors) }

// TableForQuality derives a new table from base using the common libjpeg
// quality mapping. quality is clamped to [1, 100]; 50 reproduces the base
// divisors, higher values quantize less, lower values more. Derived divisors
// are clamped to [1, 255].
func TableForQuality(base *Table, quality int) *Table {
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	scale := int64(200 - 2*quality)
	if quality < 50 {
		scale = int64(5000 / quality)
	}
	var d [64]int32
	for i, b := range base.i32 {
		// 64-bit product: large custom divisors times the q=1 scale of 5000
		// overflow int32.
		v := (int64(b)*scale + 50) / 100
		if v < 1 {
			v = 1
		} else if v > 255 {
			v = 255
		}
		d[i] = int32(v)
	}
	return newTableUnchecked(&d)
}

// Quantize divides every coefficient of the region by its table divisor,
// in place. The plane contract matches ForwardDCT.
func (t *Table) Quantize(srcDst []float32, stride int, roi ROI) {
	for b := range roi.Blocks() {
		dsp.QuantizeBlock(srcDst[b.Offset(stride):], stride, &t.f32)
	}
}

// Dequantize multiplies every coefficient of the region by its table
// divisor, in place. It inverts Quantize up to float rounding.
func (t *Table) Dequantize(srcDst []float32, stride int, roi ROI) {
	for b := range roi.Blocks() {
		dsp.DequantizeBlock(srcDst[b.Offset(stride):], stride, &t.f32)
	}
}

// QuantizeInt16 divides every coefficient of the region by its table
// divisor, in place, rounding to the nearest integer with ties away from
// zero.
func (t *Table) QuantizeInt16(srcDst []int16, stride int, roi ROI) {
	for b := range roi.Blocks() {
		dsp.QuantizeBlockInt16(srcDst[b.Offset(stride):], stride, &t.i32)
	}
}

// DequantizeInt16 multiplies every coefficient of the region by its table
// divisor, in place. It inverts QuantizeInt16 up to the rounding loss.
func (t *Table) DequantizeInt16(srcDst []int16, stride int, roi ROI) {
	for b := range roi.Blocks() {
		dsp.DequantizeBlockInt16(srcDst[b.Offset(stride):], stride, &t.i32)
	}
}
