package dto

import "github.com/1nFrastr/miao-bbq-app/internal/model"

// LoginRequest openid 与 code 至少提供一个；资料字段仅在首次创建用户时生效。
type LoginRequest struct {
	OpenID    string  `json:"openid" binding:"omitempty,max=128"`
	Code      string  `json:"code" binding:"omitempty,max=128"`
	UnionID   *string `json:"unionid" binding:"omitempty,max=128"`
	Nickname  string  `json:"nickname" binding:"omitempty,max=100"`
	AvatarURL string  `json:"avatar_url" binding:"omitempty,max=500"`
	Gender    int     `json:"gender" binding:"omitempty,oneof=0 1 2"`
	City      string  `json:"city" binding:"omitempty,max=50"`
	Province  string  `json:"province" binding:"omitempty,max=50"`
	Country   string  `json:"country" binding:"omitempty,max=50"`
}

type LoginResponse struct {
	User      *model.User `json:"user"`
	IsNewUser bool        `json:"is_new_user"`
}

type CreateUserRequest struct {
	OpenID    string  `json:"openid" binding:"required,max=128"`
	UnionID   *string `json:"unionid" binding:"omitempty,max=128"`
	Nickname  string  `json:"nickname" binding:"omitempty,max=100"`
	AvatarURL string  `json:"avatar_url" binding:"omitempty,max=500"`
	Gender    int     `json:"gender" binding:"omitempty,oneof=0 1 2"`
	City      string  `json:"city" binding:"omitempty,max=50"`
	Province  string  `json:"province" binding:"omitempty,max=50"`
	Country   string  `json:"country" binding:"omitempty,max=50"`
}

// UpdateProfileRequest 只更新请求中出现的字段。
type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname" binding:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
	Gender    *int    `json:"gender" binding:"omitempty,oneof=0 1 2"`
	City      *string `json:"city" binding:"omitempty,max=50"`
	Province  *string `json:"province" binding:"omitempty,max=50"`
	Country   *string `json:"country" binding:"omitempty,max=50"`
}

// Updates 转换为 gorm 列更新映射。
func (r UpdateProfileRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.Nickname != nil {
		updates["nickname"] = *r.Nickname
	}
	if r.AvatarURL != nil {
		updates["avatar_url"] = *r.AvatarURL
	}
	if r.Gender != nil {
		updates["gender"] = *r.Gender
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.Province != nil {
		updates["province"] = *r.Province
	}
	if r.Country != nil {
		updates["country"] = *r.Country
	}
	return updates
}

type UserListRequest struct {
	Offset int
	Limit  int
	Search string
}
