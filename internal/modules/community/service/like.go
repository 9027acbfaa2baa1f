package service

import (
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/community/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/metrics"
)

// ToggleLike 切换当前用户对分享的点赞状态。
func (s *Service) ToggleLike(postID, userID uint) (*moduledto.LikeToggleResponse, error) {
	post, err := s.findApproved(postID)
	if err != nil {
		return nil, err
	}
	liked, count, err := s.postStore.ToggleLike(post.ID, userID)
	if err != nil {
		return nil, s.mapStoreError(err, "点赞操作失败")
	}
	metrics.ObserveLikeToggle(liked)
	return &moduledto.LikeToggleResponse{IsLiked: liked, LikesCount: count}, nil
}

// ListLikes 分享的点赞用户，最新在前。
func (s *Service) ListLikes(postID uint, offset, limit int) ([]moduledto.PostLikeResponse, int64, error) {
	post, err := s.findApproved(postID)
	if err != nil {
		return nil, 0, err
	}
	likes, total, err := s.postStore.ListLikes(post.ID, offset, limit)
	if err != nil {
		return nil, 0, s.mapStoreError(err, "获取点赞列表失败")
	}
	return moduledto.NewPostLikeResponses(likes), total, nil
}
