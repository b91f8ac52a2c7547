package request

type Comment struct {
	Content string `json:"content" binding:"required,max=2000"`
}
