package web

import "github.com/manabiya/manabiya/internal/user/internal/domain"

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type Profile struct {
	Id       int64  `json:"id,omitempty"`
	Email    string `json:"email,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		Email:    u.Email,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Role:     u.Role,
	}
}
