package blockdct

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableDivisors(t *Table) [64]int32 {
	var d [64]int32
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			d[y*BlockSize+x] = t.At(y, x)
		}
	}
	return d
}

func uniformTable(t *testing.T, d int32) *Table {
	t.Helper()
	var divisors [64]int32
	for i := range divisors {
		divisors[i] = d
	}
	table, err := NewTable(&divisors)
	require.NoError(t, err)
	return table
}

func TestStandardTables(t *testing.T) {
	luma := StandardLumaTable()
	assert.Equal(t, int32(16), luma.At(0, 0))
	assert.Equal(t, int32(11), luma.At(0, 1))
	assert.Equal(t, int32(12), luma.At(1, 0))
	assert.Equal(t, int32(109), luma.At(4, 5))
	assert.Equal(t, int32(99), luma.At(7, 7))

	chroma := StandardChromaTable()
	assert.Equal(t, int32(17), chroma.At(0, 0))
	assert.Equal(t, int32(56), chroma.At(2, 2))
	assert.Equal(t, int32(66), chroma.At(1, 3))
	assert.Equal(t, int32(99), chroma.At(7, 7))
}

func TestNewTableRejectsNonpositive(t *testing.T) {
	var d [64]int32
	for i := range d {
		d[i] = 10
	}
	d[37] = 0
	table, err := NewTable(&d)
	require.ErrorIs(t, err, ErrInvalidTable)
	require.Nil(t, table)

	d[37] = -3
	_, err = NewTable(&d)
	require.ErrorIs(t, err, ErrInvalidTable)

	d[37] = 1
	table, err = NewTable(&d)
	require.NoError(t, err)
	assert.Equal(t, int32(1), table.At(4, 5))
}

func TestNewTableCopiesDivisors(t *testing.T) {
	var d [64]int32
	for i := range d {
		d[i] = int32(i + 1)
	}
	table, err := NewTable(&d)
	require.NoError(t, err)

	d[0] = 999
	assert.Equal(t, int32(1), table.At(0, 0), "table must not alias caller divisors")
}

func TestTableForQualityFifty(t *testing.T) {
	base := StandardLumaTable()
	derived := TableForQuality(base, 50)
	if diff := cmp.Diff(tableDivisors(base), tableDivisors(derived)); diff != "" {
		t.Errorf("quality 50 differs from base (-base +derived):\n%s", diff)
	}
}

func TestTableForQualityHundred(t *testing.T) {
	derived := TableForQuality(StandardLumaTable(), 100)
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			assert.Equal(t, int32(1), derived.At(y, x), "At(%d, %d)", y, x)
		}
	}
}

func TestTableForQualityClamps(t *testing.T) {
	base := StandardLumaTable()
	if diff := cmp.Diff(tableDivisors(TableForQuality(base, 1)), tableDivisors(TableForQuality(base, -20))); diff != "" {
		t.Errorf("quality below range not clamped to 1:\n%s", diff)
	}
	if diff := cmp.Diff(tableDivisors(TableForQuality(base, 100)), tableDivisors(TableForQuality(base, 400))); diff != "" {
		t.Errorf("quality above range not clamped to 100:\n%s", diff)
	}
}

func TestTableForQualityOrdering(t *testing.T) {
	base := StandardLumaTable()
	low := TableForQuality(base, 25)
	mid := TableForQuality(base, 50)
	high := TableForQuality(base, 75)
	for y := 0; y < BlockSize; y++ {
		for x := 0; x < BlockSize; x++ {
			if low.At(y, x) < mid.At(y, x) || mid.At(y, x) < high.At(y, x) {
				t.Errorf("divisors not monotonic at (%d, %d): q25=%d q50=%d q75=%d",
					y, x, low.At(y, x), mid.At(y, x), high.At(y, x))
			}
			if high.At(y, x) < 1 {
				t.Errorf("divisor below 1 at (%d, %d): %d", y, x, high.At(y, x))
			}
		}
	}
}

func TestTableForQualityLargeDivisors(t *testing.T) {
	// The scaled product of a large custom divisor wraps int32 at low
	// quality; the derived divisor must clamp to 255, not fall to 1.
	var d [64]int32
	for i := range d {
		d[i] = 500000
	}
	d[0] = 5
	base, err := NewTable(&d)
	require.NoError(t, err)

	derived := TableForQuality(base, 1)
	assert.Equal(t, int32(250), derived.At(0, 0))
	assert.Equal(t, int32(255), derived.At(0, 1))
	assert.Equal(t, int32(255), derived.At(7, 7))
}

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	roi := ROI{Width: 16, Height: 16}
	stride := 20
	table := StandardLumaTable()

	plane := make([]float32, PlaneLen(stride, roi))
	orig := make([]float32, len(plane))
	for y := 0; y < roi.Height; y++ {
		for x := 0; x < roi.Width; x++ {
			plane[y*stride+x] = rng.Float32()*2048 - 1024
		}
	}
	copy(orig, plane)

	table.Quantize(plane, stride, roi)
	table.Dequantize(plane, stride, roi)

	for y := 0; y < roi.Height; y++ {
		for x := 0; x < roi.Width; x++ {
			got, want := plane[y*stride+x], orig[y*stride+x]
			if math.Abs(float64(got-want)) > 1e-3 {
				t.Fatalf("(%d, %d): got %v, want %v", y, x, got, want)
			}
		}
	}
}

func TestQuantizeInt16Rounding(t *testing.T) {
	table := uniformTable(t, 16)
	roi := ROI{Width: 8, Height: 8}
	plane := make([]int16, 64)
	in := []int16{8, 7, -8, 24, 40, -24, -40, 16}
	want := []int16{1, 0, -1, 2, 3, -2, -3, 1}
	copy(plane, in)

	table.QuantizeInt16(plane, 8, roi)
	for i := range in {
		if plane[i] != want[i] {
			t.Errorf("quantize 16 of %d = %d, want %d", in[i], plane[i], want[i])
		}
	}

	table.DequantizeInt16(plane, 8, roi)
	wantDeq := []int16{16, 0, -16, 32, 48, -32, -48, 16}
	for i := range wantDeq {
		if plane[i] != wantDeq[i] {
			t.Errorf("dequantize of slot %d = %d, want %d", i, plane[i], wantDeq[i])
		}
	}
}

func TestQuantizeLeavesPaddingAlone(t *testing.T) {
	roi := ROI{Width: 16, Height: 8}
	stride := 24
	table := StandardLumaTable()

	plane := make([]float32, PlaneLen(stride, roi))
	for i := range plane {
		plane[i] = 512
	}
	for y := 0; y < roi.Height; y++ {
		for x := roi.Width; x < stride && y*stride+x < len(plane); x++ {
			plane[y*stride+x] = -7777
		}
	}

	table.Quantize(plane, stride, roi)
	for y := 0; y < roi.Height; y++ {
		for x := roi.Width; x < stride && y*stride+x < len(plane); x++ {
			if plane[y*stride+x] != -7777 {
				t.Fatalf("padding touched at (%d, %d): %v", y, x, plane[y*stride+x])
			}
		}
	}
}
