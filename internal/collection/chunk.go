package collection

import "errors"

// ErrInvalidChunkSize is returned by [Chunk] when the requested chunk size
// is less than one.
var ErrInvalidChunkSize = errors.New("collection: chunk size must be a positive integer")

// Chunk splits a slice into consecutive sub-slices of the specified size.
// The last chunk may have a smaller length than the specified size; every
// other chunk has exactly size elements. The input is never mutated, and
// chunks alias the input rather than copying it. An empty input yields
// zero chunks. A size less than one yields [ErrInvalidChunkSize] before
// any output is produced.
//
// Example:
//
//	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
//	chunks, _ := Chunk(items, 3)
//	// chunks: [[1 2 3] [4 5 6] [7 8 9] [10]]
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, ErrInvalidChunkSize
	}
	var chunks [][]T
	for i := 0; i < len(s); i += size {
		end := i + size
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[i:end])
	}
	return chunks, nil
}
