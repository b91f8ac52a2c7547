package response

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Post struct {
	ID        int64    `json:"id"`
	Content   string   `json:"content"`
	Media     string   `json:"media,omitempty"`
	Hashtags  []string `json:"hashtags"`
	Owner     User     `json:"owner"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:        p.ID,
		Content:   p.Content,
		Media:     p.Media,
		Hashtags:  p.Hashtags,
		Owner:     NewUserFromDomain(&p.Owner),
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
	}
}
