package core

import "iter"

// DefaultChunkSize is the maximum number of job records per output file.
const DefaultChunkSize = 100

// Chunk is a contiguous window of a list with its 1-based inclusive range.
type Chunk[T any] struct {
	Items []T
	Start int
	End   int
}

// Chunks splits items into windows of at most size elements. The sequence is
// empty when items is empty and can be ranged over any number of times. A size
// below 1 uses DefaultChunkSize.
func Chunks[T any](items []T, size int) iter.Seq[Chunk[T]] {
	if size < 1 {
		size = DefaultChunkSize
	}

	return func(yield func(Chunk[T]) bool) {
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))

			c := Chunk[T]{
				Items: items[start:end:end],
				Start: start + 1,
				End:   end,
			}
			if !yield(c) {
				return
			}
		}
	}
}

// ChunkCount returns how many chunks Chunks yields for n items.
func ChunkCount(n, size int) int {
	if size < 1 {
		size = DefaultChunkSize
	}

	return (n + size - 1) / size
}
