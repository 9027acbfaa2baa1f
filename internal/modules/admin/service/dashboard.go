package service

import (
	"runtime"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
)

const (
	trendDays         = 7
	recentPendingSize = 5
)

// Dashboard 获取后台仪表盘统计数据。
func (s *Service) Dashboard() (*moduledto.DashboardResponse, error) {
	totalUsers, err := s.dashboardStore.CountUsers()
	if err != nil {
		return nil, s.mapStoreError(err, "统计用户数据失败", "")
	}
	totalPosts, err := s.dashboardStore.CountPosts("")
	if err != nil {
		return nil, s.mapStoreError(err, "统计分享数据失败", "")
	}
	pendingPosts, err := s.dashboardStore.CountPosts(model.PostStatusPending)
	if err != nil {
		return nil, s.mapStoreError(err, "统计分享数据失败", "")
	}

	today := startOfDay(s.now())
	trend := make([]moduledto.DailyActivity, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count, err := s.dashboardStore.CountActiveUsers(day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, s.mapStoreError(err, "统计活跃用户失败", "")
		}
		trend = append(trend, moduledto.DailyActivity{
			Date:        day.Format("2006-01-02"),
			ActiveUsers: count,
		})
	}

	histogram, err := s.dashboardStore.StatusHistogram()
	if err != nil {
		return nil, s.mapStoreError(err, "统计分享状态失败", "")
	}
	stats := make([]moduledto.StatusCount, 0, len(histogram))
	for _, row := range histogram {
		stats = append(stats, moduledto.StatusCount{Status: row.Status, Count: row.Count})
	}

	recent, err := s.dashboardStore.RecentPosts(model.PostStatusPending, recentPendingSize)
	if err != nil {
		return nil, s.mapStoreError(err, "获取待审核内容失败", "")
	}

	return &moduledto.DashboardResponse{
		Summary: moduledto.DashboardSummary{
			TotalUsers:       totalUsers,
			TotalPosts:       totalPosts,
			PendingPosts:     pendingPosts,
			TodayActiveUsers: trend[len(trend)-1].ActiveUsers,
		},
		ActivityTrend: trend,
		ContentStats:  stats,
		RecentPending: moduledto.NewModerationPostResponses(recent),
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
