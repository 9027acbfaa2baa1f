package service

import (
	"errors"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/community/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetPost 获取分享详情并累加浏览数；未审核的分享仅作者可见。
func (s *Service) GetPost(id, viewerID uint, origin *moduledto.Location) (*moduledto.PostResponse, error) {
	post, err := s.findVisible(id, viewerID)
	if err != nil {
		return nil, err
	}
	if err := s.postStore.IncrementViewCount(post.ID); err != nil {
		return nil, s.mapStoreError(err, "更新浏览数失败")
	}
	post, err = s.postStore.FindByID(post.ID)
	if err != nil {
		return nil, s.mapStoreError(err, "获取分享失败")
	}

	liked, err := s.postStore.LikedPostIDs(viewerID, []uint{post.ID})
	if err != nil {
		return nil, s.mapStoreError(err, "获取点赞状态失败")
	}
	resp := buildResponse(post, liked[post.ID], origin)
	return &resp, nil
}

// CreatePost 发布分享，最多保留前三张图片，发布即审核通过。
func (s *Service) CreatePost(userID uint, req moduledto.CreatePostRequest) (*moduledto.PostResponse, error) {
	shopName := strings.TrimSpace(req.ShopName)
	comment := strings.TrimSpace(req.Comment)
	if shopName == "" {
		return nil, platformservice.NewValidationError("店铺名称不能为空")
	}
	if comment == "" {
		return nil, platformservice.NewValidationError("评价内容不能为空")
	}
	if req.ShopPrice == nil || *req.ShopPrice < 0 {
		return nil, platformservice.NewValidationError("人均价格不能为负数")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, platformservice.NewValidationError("经纬度必须同时提供")
	}

	post := &model.Post{
		UserID:          userID,
		ShopName:        shopName,
		ShopPrice:       *req.ShopPrice,
		Comment:         comment,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		LocationAddress: strings.TrimSpace(req.LocationAddress),
		Status:          model.PostStatusApproved,
	}
	for i, img := range req.Images {
		if i >= model.MaxPostImages {
			break
		}
		url := strings.TrimSpace(img.ImageURL)
		if url == "" {
			return nil, platformservice.NewValidationError("图片地址不能为空")
		}
		post.Images = append(post.Images, model.PostImage{ImageURL: url, SortOrder: i})
	}

	if err := s.postStore.Create(post); err != nil {
		return nil, s.mapStoreError(err, "发布分享失败")
	}
	created, err := s.postStore.FindByID(post.ID)
	if err != nil {
		return nil, s.mapStoreError(err, "获取分享失败")
	}
	resp := buildResponse(created, false, nil)
	return &resp, nil
}

// UpdatePost 作者修改分享内容。
func (s *Service) UpdatePost(id, userID uint, req moduledto.UpdatePostRequest) (*moduledto.PostResponse, error) {
	post, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	updates := req.Updates()
	if v, ok := updates["shop_name"].(string); ok {
		if v = strings.TrimSpace(v); v == "" {
			return nil, platformservice.NewValidationError("店铺名称不能为空")
		}
		updates["shop_name"] = strings.TrimSpace(v)
	}
	if v, ok := updates["comment"].(string); ok {
		if v = strings.TrimSpace(v); v == "" {
			return nil, platformservice.NewValidationError("评价内容不能为空")
		}
		updates["comment"] = strings.TrimSpace(v)
	}
	lat, lng := post.Latitude, post.Longitude
	if req.Latitude != nil {
		lat = req.Latitude
	}
	if req.Longitude != nil {
		lng = req.Longitude
	}
	if (lat == nil) != (lng == nil) {
		return nil, platformservice.NewValidationError("经纬度必须同时提供")
	}

	if len(updates) > 0 {
		if err := s.postStore.UpdateByID(post.ID, updates); err != nil {
			return nil, s.mapStoreError(err, "更新分享失败")
		}
	}
	return s.reload(post.ID, userID)
}

// DeletePost 作者删除分享。
func (s *Service) DeletePost(id, userID uint) error {
	post, err := s.findOwned(id, userID)
	if err != nil {
		return err
	}
	if err := s.postStore.Delete(post.ID); err != nil {
		return s.mapStoreError(err, "删除分享失败")
	}
	return nil
}

func (s *Service) reload(id, viewerID uint) (*moduledto.PostResponse, error) {
	post, err := s.postStore.FindByID(id)
	if err != nil {
		return nil, s.mapStoreError(err, "获取分享失败")
	}
	liked, err := s.postStore.LikedPostIDs(viewerID, []uint{id})
	if err != nil {
		return nil, s.mapStoreError(err, "获取点赞状态失败")
	}
	resp := buildResponse(post, liked[id], nil)
	return &resp, nil
}

// findVisible 已审核分享对所有人可见，其余状态仅作者可见。
func (s *Service) findVisible(id, viewerID uint) (*model.Post, error) {
	post, err := s.postStore.FindByID(id)
	if err != nil {
		return nil, s.mapStoreError(err, "获取分享失败")
	}
	if post.Status != model.PostStatusApproved && (viewerID == 0 || post.UserID != viewerID) {
		return nil, platformservice.NewNotFoundError("分享不存在")
	}
	return post, nil
}

func (s *Service) findApproved(id uint) (*model.Post, error) {
	post, err := s.postStore.FindByID(id)
	if err != nil {
		return nil, s.mapStoreError(err, "获取分享失败")
	}
	if post.Status != model.PostStatusApproved {
		return nil, platformservice.NewNotFoundError("分享不存在")
	}
	return post, nil
}

// findOwned 非作者访问已审核分享返回 403，其余情况不暴露存在性。
func (s *Service) findOwned(id, userID uint) (*model.Post, error) {
	post, err := s.findVisible(id, userID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, platformservice.NewForbiddenError("只能操作自己的分享")
	}
	return post, nil
}

func (s *Service) mapStoreError(err error, fallback string) error {
	if _, ok := platformservice.AsServiceError(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError("分享不存在")
	}
	logger.L().Error(fallback, zap.Error(err))
	return platformservice.NewInternalError(fallback)
}
