// Package pool provides bucketed sync.Pool instances for the scratch planes
// the transform pipelines run through. Buffers are organized by size class to
// minimize waste; sizes are in elements, not bytes.
package pool

import "sync"

// Size classes for bucketed pools.
const (
	Size256  = 256
	Size1K   = 1024
	Size4K   = 4096
	Size16K  = 16384
	Size64K  = 65536
	Size256K = 262144
	Size1M   = 1048576
)

// bucketIndex returns the pool index for a given size.
func bucketIndex(size int) int {
	switch {
	case size <= Size256:
		return 0
	case size <= Size1K:
		return 1
	case size <= Size4K:
		return 2
	case size <= Size16K:
		return 3
	case size <= Size64K:
		return 4
	case size <= Size256K:
		return 5
	default:
		return 6
	}
}

var sizes = [7]int{Size256, Size1K, Size4K, Size16K, Size64K, Size256K, Size1M}

var (
	f32Pools [7]sync.Pool
	i16Pools [7]sync.Pool
)

func init() {
	for i := range f32Pools {
		sz := sizes[i]
		f32Pools[i] = sync.Pool{
			New: func() any {
				b := make([]float32, sz)
				return &b
			},
		}
		i16Pools[i] = sync.Pool{
			New: func() any {
				b := make([]int16, sz)
				return &b
			},
		}
	}
}

// GetFloat32 returns a float32 slice of at least the requested size from the
// pool. The returned slice has length == size, a possibly larger capacity,
// and arbitrary contents. The caller must call PutFloat32 when done.
func GetFloat32(size int) []float32 {
	idx := bucketIndex(size)
	bp := f32Pools[idx].Get().(*[]float32)
	b := *bp
	if cap(b) < size {
		b = make([]float32, size)
		*bp = b
		return b
	}
	return b[:size]
}

// PutFloat32 returns a float32 slice to the pool. The slice must have been
// obtained from GetFloat32. Slices smaller than Size256 are not pooled.
func PutFloat32(b []float32) {
	c := cap(b)
	if c < Size256 {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	f32Pools[idx].Put(&b)
}

// GetInt16 returns an int16 slice of at least the requested size from the
// pool, with the same contract as GetFloat32.
func GetInt16(size int) []int16 {
	idx := bucketIndex(size)
	bp := i16Pools[idx].Get().(*[]int16)
	b := *bp
	if cap(b) < size {
		b = make([]int16, size)
		*bp = b
		return b
	}
	return b[:size]
}

// PutInt16 returns an int16 slice to the pool. The slice must have been
// obtained from GetInt16. Slices smaller than Size256 are not pooled.
func PutInt16(b []int16) {
	c := cap(b)
	if c < Size256 {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	i16Pools[idx].Put(&b)
}
