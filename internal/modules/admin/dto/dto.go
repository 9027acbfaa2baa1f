package dto

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	communitydto "github.com/1nFrastr/miao-bbq-app/internal/modules/community/dto"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Admin     *model.AdminUser `json:"admin"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Success   bool             `json:"success"`
}

type CreateAdminRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	RealName    string `json:"real_name" binding:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UpdateAdminRequest 只更新请求中出现的字段，密码为空时不修改。
type UpdateAdminRequest struct {
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	RealName    *string `json:"real_name" binding:"omitempty,max=50"`
	Password    *string `json:"password" binding:"omitempty,min=6"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

// RequestMeta 写入操作日志的请求来源信息。
type RequestMeta struct {
	IP        string
	UserAgent string
}

type ModerationListRequest struct {
	Status   string
	Search   string
	Ordering string
	Offset   int
	Limit    int
}

type ModerationActionRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=200"`
}

type AdminLogListRequest struct {
	Action     string
	TargetType string
	Offset     int
	Limit      int
}

type AdminLogResponse struct {
	ID            uint      `json:"id"`
	AdminID       uint      `json:"admin_id"`
	AdminUsername string    `json:"admin_username"`
	Action        string    `json:"action"`
	TargetType    string    `json:"target_type"`
	TargetID      uint      `json:"target_id"`
	Description   string    `json:"description"`
	IPAddress     string    `json:"ip_address"`
	UserAgent     string    `json:"user_agent"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewAdminLogResponse(log *model.AdminLog) AdminLogResponse {
	return AdminLogResponse{
		ID:            log.ID,
		AdminID:       log.AdminID,
		AdminUsername: log.Admin.Username,
		Action:        log.Action,
		TargetType:    log.TargetType,
		TargetID:      log.TargetID,
		Description:   log.Description,
		IPAddress:     log.IPAddress,
		UserAgent:     log.UserAgent,
		CreatedAt:     log.CreatedAt,
	}
}

func NewAdminLogResponses(logs []model.AdminLog) []AdminLogResponse {
	out := make([]AdminLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, NewAdminLogResponse(&logs[i]))
	}
	return out
}

// NewModerationPostResponses 审核列表复用社区分享的输出结构。
func NewModerationPostResponses(posts []model.Post) []communitydto.PostResponse {
	out := make([]communitydto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, communitydto.NewPostResponse(&posts[i]))
	}
	return out
}

type DashboardSummary struct {
	TotalUsers       int64 `json:"total_users"`
	TotalPosts       int64 `json:"total_posts"`
	PendingPosts     int64 `json:"pending_posts"`
	TodayActiveUsers int64 `json:"today_active_users"`
}

type DailyActivity struct {
	Date        string `json:"date"`
	ActiveUsers int64  `json:"active_users"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type DashboardResponse struct {
	Summary       DashboardSummary            `json:"summary"`
	ActivityTrend []DailyActivity             `json:"activity_trend"`
	ContentStats  []StatusCount               `json:"content_stats"`
	RecentPending []communitydto.PostResponse `json:"recent_pending"`
	SystemInfo    SystemInfoResponse          `json:"system_info"`
}
