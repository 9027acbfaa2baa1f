package model

import "time"

const (
	GenderUnknown = 0
	GenderMale    = 1
	GenderFemale  = 2
)

type User struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	OpenID      string     `json:"openid" gorm:"column:openid;size:128;uniqueIndex;not null"`
	UnionID     *string    `json:"unionid" gorm:"column:unionid;size:128;index"`
	Nickname    string     `json:"nickname" gorm:"size:100"`
	AvatarURL   string     `json:"avatar_url" gorm:"size:500"`
	Gender      int        `json:"gender" gorm:"not null;default:0"`
	City        string     `json:"city" gorm:"size:50"`
	Province    string     `json:"province" gorm:"size:50"`
	Country     string     `json:"country" gorm:"size:50"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`
	LastLoginAt *time.Time `json:"last_login_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
