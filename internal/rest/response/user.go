package response

import "github.com/vishnukothappllii/Blogging-Platform/domain"

type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	Bio            string `json:"bio,omitempty"`
	AvatarID       string `json:"avatar_id,omitempty"`
	CoverID        string `json:"cover_id,omitempty"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	CreatedAt      string `json:"created_at"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Bio:            u.Bio,
		AvatarID:       u.AvatarID,
		CoverID:        u.CoverID,
		FollowersCount: u.FollowersCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt.Format(DateTimeFormat),
	}
}
