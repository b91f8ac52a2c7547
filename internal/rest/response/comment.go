package response

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Comment struct {
	ID         int64  `json:"id"`
	ArticleID  int64  `json:"article_id"`
	Content    string `json:"content"`
	ParentID   int64  `json:"parent_id"`
	Depth      int64  `json:"depth"`
	LikesCount int64  `json:"likes_count"`
	ReplyCount int64  `json:"reply_count"`
	CreatedAt  string `json:"created_at"`

	Owner User `json:"owner"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		Content:    c.Content,
		ParentID:   c.ParentID,
		Depth:      c.Depth,
		LikesCount: c.LikesCount,
		ReplyCount: c.ReplyCount,
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
		Owner:      NewUserFromDomain(&c.Owner),
	}
}
