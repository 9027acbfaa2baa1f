package service

import (
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
)

// ListLogs 操作日志，最新在前。
func (s *Service) ListLogs(req moduledto.AdminLogListRequest) ([]model.AdminLog, int64, error) {
	logs, total, err := s.logStore.List(repo.AdminLogFilter{
		Action:     req.Action,
		TargetType: req.TargetType,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		return nil, 0, s.mapStoreError(err, "获取操作日志失败", "日志不存在")
	}
	return logs, total, nil
}

func (s *Service) GetLog(id uint) (*model.AdminLog, error) {
	log, err := s.logStore.FindByID(id)
	if err != nil {
		return nil, s.mapStoreError(err, "获取操作日志失败", "日志不存在")
	}
	return log, nil
}
