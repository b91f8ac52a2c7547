package domain

const (
	DefaultPageSize int64 = 10
	MinPageSize     int64 = 1
	MaxPageSize     int64 = 50
)

// Page is the uniform envelope for every paginated list the layer returns.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
}

// NewPage wraps items fetched for the given page with the derived page count.
func NewPage[T any](items []T, total, page, size int64) Page[T] {
	pages := int64(0)
	if size > 0 {
		pages = (total + size - 1) / size
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Pages: pages,
	}
}

// MapPage converts a page of T into a page of U, keeping the envelope.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i := range p.Items {
		items[i] = fn(p.Items[i])
	}
	return Page[U]{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Pages: p.Pages,
	}
}

// VerifyPage clamps page and size into their allowed ranges.
func VerifyPage(page, size *int64) {
	if *page < 1 {
		*page = 1
	}
	if *size < MinPageSize || *size > MaxPageSize {
		*size = DefaultPageSize
	}
}

// PageOffset is the row offset of the given 1-based page.
func PageOffset(page, size int64) int {
	return int((page - 1) * size)
}
