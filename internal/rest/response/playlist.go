package response

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Playlist struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	OwnerID     int64  `json:"owner_id"`
	CreatedAt   string `json:"created_at"`

	Articles []Article `json:"articles,omitempty"`
}

// NewPlaylistFromDomain: Domain -> Response
func NewPlaylistFromDomain(p *domain.Playlist) Playlist {
	res := Playlist{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt.Format(DateTimeFormat),
	}
	if len(p.Articles) > 0 {
		res.Articles = make([]Article, len(p.Articles))
		for i := range p.Articles {
			res.Articles[i] = NewArticleListFromDomain(&p.Articles[i])
		}
	}
	return res
}
