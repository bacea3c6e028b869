package blockdct

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/deepteams/blockdct/internal/dsp"
)

// blockRowClaim hands out block rows to workers. The pad keeps the shared
// counter on its own cache line.
type blockRowClaim struct {
	next atomic.Int32
	_    cpu.CacheLinePad
}

// ForEachBlockParallel invokes fn for every 8x8 block of the region, with
// block rows claimed dynamically by workers goroutines. fn must be safe to
// call concurrently for distinct blocks; the transform and quantization
// operations process blocks independently, so wrapping their per-block forms
// qualifies. workers <= 0 selects runtime.GOMAXPROCS(0), and the count is
// capped at the number of block rows. With one worker the calling goroutine
// runs all blocks in raster order.
func ForEachBlockParallel(roi ROI, workers int, fn func(Block)) {
	rows := roi.BlocksHigh()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		for b := range roi.Blocks() {
			fn(b)
		}
		return
	}

	var claim blockRowClaim
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				row := int(claim.next.Add(1)) - 1
				if row >= rows {
					return
				}
				y := row * BlockSize
				for x := 0; x < roi.Width; x += BlockSize {
					fn(Block{X: x, Y: y})
				}
			}
		}()
	}
	wg.Wait()
}

// ForwardDCTParallel is ForwardDCT with block rows spread across workers.
// The result is identical to the serial form.
func ForwardDCTParallel(src, dst []float32, stride int, roi ROI, workers int) {
	ForEachBlockParallel(roi, workers, func(b Block) {
		o := b.Offset(stride)
		dsp.FDCT8x8(src[o:], dst[o:], stride)
	})
}

// InverseDCTParallel is InverseDCT with block rows spread across workers.
func InverseDCTParallel(src, dst []float32, stride int, roi ROI, workers int) {
	ForEachBlockParallel(roi, workers, func(b Block) {
		o := b.Offset(stride)
		dsp.IDCT8x8(src[o:], dst[o:], stride)
	})
}
