package response

// DateTimeFormat is the timestamp layout used in every API response.
const DateTimeFormat = "2006-01-02 15:04:05"

// Page is the uniform paginated envelope.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Pages int64 `json:"pages"`
}
