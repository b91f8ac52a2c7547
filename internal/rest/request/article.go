package request

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Article struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=500"`
	Content     string `json:"content" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
}

// ToDomain: Request -> Domain
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Thumbnail:   r.Thumbnail,
	}
}
