package request

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Post struct {
	Content string `json:"content" binding:"required,max=280"`
	Media   string `json:"media"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain(ownerID int64) domain.Post {
	return domain.Post{
		Content: r.Content,
		Media:   r.Media,
		Owner:   domain.User{ID: ownerID},
	}
}
