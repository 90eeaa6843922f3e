// Package pagination slices fully materialized result sets into pages. List
// queries materialize the whole filtered set server-side first; there is no
// streaming cursor.
package pagination

const (
	// DefaultSize is the page size used when the caller supplies none.
	DefaultSize = 50
	// MaxSize caps the page size a caller may request.
	MaxSize = 100
)

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// Paginate slices items into the requested page. Page numbers start at 1;
// out-of-range values are clamped to the defaults, and a page beyond the end
// yields an empty item list with the total still set.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	total := len(items)
	pages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items: items[start:end],
		Total: int64(total),
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}
