package response

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Article struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Content      string `json:"content,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	AuthorID     int64  `json:"author_id"`
	AuthorName   string `json:"author_name"`
	LikesCount   int64  `json:"likes_count"`
	CommentCount int64  `json:"comment_count"`
	Views        int64  `json:"views"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Content:      a.Content,
		Thumbnail:    a.Thumbnail,
		AuthorID:     a.Author.ID,
		AuthorName:   a.Author.Name,
		LikesCount:   a.LikesCount,
		CommentCount: a.CommentCount,
		Views:        a.Views,
		CreatedAt:    a.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:    a.UpdatedAt.Format(DateTimeFormat),
	}
}

// NewArticleListFromDomain maps a list view, dropping the body to keep
// pages light.
func NewArticleListFromDomain(a *domain.Article) Article {
	res := NewArticleFromDomain(a)
	res.Content = ""
	return res
}
