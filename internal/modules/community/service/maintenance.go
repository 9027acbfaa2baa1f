package service

import (
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"

	"go.uber.org/zap"
)

// PruneResult 清理无位置分享的结果。
type PruneResult struct {
	Matched []model.Post
	Deleted int64
}

// PruneUnlocated 删除缺少经纬度的分享，dryRun 时只返回匹配结果。
func (s *Service) PruneUnlocated(status string, dryRun bool) (*PruneResult, error) {
	posts, err := s.postStore.FindUnlocated(status)
	if err != nil {
		return nil, s.mapStoreError(err, "查询无位置分享失败")
	}
	result := &PruneResult{Matched: posts}
	if dryRun || len(posts) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	deleted, err := s.postStore.DeleteByIDs(ids)
	if err != nil {
		return nil, s.mapStoreError(err, "删除无位置分享失败")
	}
	result.Deleted = deleted
	logger.L().Info("已清理无位置分享", zap.Int64("deleted", deleted), zap.String("status", status))
	return result, nil
}
