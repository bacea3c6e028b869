package blockdct

import "iter"

// BlockSize is the transform tile width and height in samples.
const BlockSize = 8

// ROI is a rectangular region of interest within a plane, anchored at the
// plane origin. Both dimensions must be positive multiples of BlockSize for
// the transform and quantization entry points.
type ROI struct {
	Width  int
	Height int
}

// Aligned reports whether both dimensions are positive multiples of
// BlockSize.
func (r ROI) Aligned() bool {
	return r.Width > 0 && r.Height > 0 &&
		r.Width%BlockSize == 0 && r.Height%BlockSize == 0
}

// BlocksWide returns the number of 8x8 block columns covering the region.
func (r ROI) BlocksWide() int { return r.Width / BlockSize }

// BlocksHigh returns the number of 8x8 block rows covering the region.
func (r ROI) BlocksHigh() int { return r.Height / BlockSize }

// NumBlocks returns the total block count of the region.
func (r ROI) NumBlocks() int { return r.BlocksWide() * r.BlocksHigh() }

// Block addresses one 8x8 tile by the plane coordinates of its top-left
// sample. Coordinates are always multiples of BlockSize.
type Block struct {
	X int
	Y int
}

// Offset returns the index of the block's top-left sample within a plane of
// the given stride.
func (b Block) Offset(stride int) int { return b.Y*stride + b.X }

// Blocks returns an iterator over the region's 8x8 tiles in raster order,
// left to right then top to bottom. The sequence is finite and can be ranged
// over any number of times; breaking out of the loop stops the iteration
// with no further bookkeeping.
func (r ROI) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for y := 0; y < r.Height; y += BlockSize {
			for x := 0; x < r.Width; x += BlockSize {
				if !yield(Block{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
