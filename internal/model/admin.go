package model

import "time"

const (
	AdminActionApprove = "approve"
	AdminActionReject  = "reject"
	AdminActionDelete  = "delete"
	AdminActionLogin   = "login"
	AdminActionLogout  = "logout"
	AdminActionCreate  = "create"
	AdminActionUpdate  = "update"
)

const (
	AdminTargetPost  = "post"
	AdminTargetUser  = "user"
	AdminTargetAdmin = "admin"
)

type AdminUser struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Username    string     `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Password    string     `json:"-" gorm:"size:128;not null"`
	Email       string     `json:"email" gorm:"size:100;index"`
	RealName    string     `json:"real_name" gorm:"size:50"`
	IsActive    bool       `json:"is_active" gorm:"not null;default:true"`
	IsSuperuser bool       `json:"is_superuser" gorm:"not null;default:false"`
	LastLoginAt *time.Time `json:"last_login_at" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AdminLog 只追加，不提供修改和删除。
type AdminLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AdminID     uint      `json:"admin_id" gorm:"not null;index"`
	Admin       AdminUser `json:"admin" gorm:"foreignKey:AdminID;references:ID;constraint:OnDelete:CASCADE;"`
	Action      string    `json:"action" gorm:"size:50;not null;index"`
	TargetType  string    `json:"target_type" gorm:"size:20;not null;index:idx_admin_logs_target"`
	TargetID    uint      `json:"target_id" gorm:"not null;index:idx_admin_logs_target"`
	Description string    `json:"description" gorm:"size:500"`
	IPAddress   string    `json:"ip_address" gorm:"size:64"`
	UserAgent   string    `json:"user_agent" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
