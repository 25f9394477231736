package layout

import "fmt"

// Paginate splits items into consecutive chunks of at most pageSize.
// Order and total count are preserved; only the last chunk may be short.
func Paginate[T any](items []T, pageSize int) ([][]T, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}
	chunks := make([][]T, 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks, nil
}
