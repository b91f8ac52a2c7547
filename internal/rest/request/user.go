package request

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type Register struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type Login struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfile struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Bio      string `json:"bio" binding:"max=500"`
	AvatarID string `json:"avatar_id"`
	CoverID  string `json:"cover_id"`
}

// ToDomain: Request -> Domain
func (r *UpdateProfile) ToDomain(userID int64) domain.User {
	return domain.User{
		ID:       userID,
		Name:     r.Name,
		Email:    r.Email,
		Bio:      r.Bio,
		AvatarID: r.AvatarID,
		CoverID:  r.CoverID,
	}
}

type EditPassword struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
