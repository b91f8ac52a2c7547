package request

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Playlist struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// ToDomain: Request -> Domain
func (r *Playlist) ToDomain(ownerID int64) domain.Playlist {
	return domain.Playlist{
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     ownerID,
	}
}
