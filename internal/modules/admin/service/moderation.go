package service

import (
	"fmt"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/admin/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/admin/repo"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/metrics"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

const (
	defaultRejectReason = "不符合社区规范"
	defaultDeleteReason = "违规内容"
	postNotFoundMessage = "内容不存在"
)

var moderationOrdering = map[string]string{
	"created_at":   "posts.created_at ASC",
	"-created_at":  "posts.created_at DESC",
	"likes_count":  "posts.likes_count ASC",
	"-likes_count": "posts.likes_count DESC",
}

var moderationStatuses = map[string]bool{
	model.PostStatusPending:  true,
	model.PostStatusApproved: true,
	model.PostStatusRejected: true,
}

// ListModeration 审核列表，status 缺省为 pending。
func (s *Service) ListModeration(req moduledto.ModerationListRequest) ([]model.Post, int64, error) {
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = model.PostStatusPending
	}
	if !moderationStatuses[status] {
		return nil, 0, platformservice.NewValidationError("status 参数错误")
	}
	orderBy, ok := moderationOrdering[req.Ordering]
	if !ok {
		orderBy = moderationOrdering["-created_at"]
	}

	posts, total, err := s.moderationStore.ListPosts(repo.ModerationFilter{
		Status:  status,
		Search:  req.Search,
		OrderBy: orderBy,
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, 0, s.mapStoreError(err, "获取审核列表失败", postNotFoundMessage)
	}
	return posts, total, nil
}

func (s *Service) ApprovePost(adminID, postID uint, meta moduledto.RequestMeta) error {
	post, err := s.findPost(postID)
	if err != nil {
		return err
	}
	log := newLog(adminID, model.AdminActionApprove, model.AdminTargetPost, post.ID,
		fmt.Sprintf("审核通过分享：%s", post.ShopName), meta)
	if err := s.moderationStore.SetStatus(post.ID, model.PostStatusApproved, log); err != nil {
		return s.mapStoreError(err, "审核操作失败", postNotFoundMessage)
	}
	metrics.ObserveModeration(model.AdminActionApprove)
	return nil
}

func (s *Service) RejectPost(adminID, postID uint, reason string, meta moduledto.RequestMeta) error {
	post, err := s.findPost(postID)
	if err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultRejectReason
	}
	log := newLog(adminID, model.AdminActionReject, model.AdminTargetPost, post.ID,
		fmt.Sprintf("审核拒绝分享：%s，原因：%s", post.ShopName, reason), meta)
	if err := s.moderationStore.SetStatus(post.ID, model.PostStatusRejected, log); err != nil {
		return s.mapStoreError(err, "审核操作失败", postNotFoundMessage)
	}
	metrics.ObserveModeration(model.AdminActionReject)
	return nil
}

// DeletePost 删除分享，日志中保留删除前的店铺名。
func (s *Service) DeletePost(adminID, postID uint, reason string, meta moduledto.RequestMeta) error {
	post, err := s.findPost(postID)
	if err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultDeleteReason
	}
	log := newLog(adminID, model.AdminActionDelete, model.AdminTargetPost, post.ID,
		fmt.Sprintf("删除分享：%s，原因：%s", post.ShopName, reason), meta)
	if err := s.moderationStore.DeletePost(post.ID, log); err != nil {
		return s.mapStoreError(err, "删除分享失败", postNotFoundMessage)
	}
	metrics.ObserveModeration(model.AdminActionDelete)
	return nil
}

func (s *Service) findPost(id uint) (*model.Post, error) {
	post, err := s.moderationStore.FindPost(id)
	if err != nil {
		return nil, s.mapStoreError(err, "获取分享失败", postNotFoundMessage)
	}
	return post, nil
}
