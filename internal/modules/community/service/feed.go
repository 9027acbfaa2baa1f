package service

import (
	"sort"
	"strings"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/geo"
	"github.com/1nFrastr/miao-bbq-app/internal/model"
	moduledto "github.com/1nFrastr/miao-bbq-app/internal/modules/community/dto"
	"github.com/1nFrastr/miao-bbq-app/internal/modules/community/repo"
	platformservice "github.com/1nFrastr/miao-bbq-app/internal/platform/service"
)

const orderingDistance = "distance"

var feedOrdering = map[string]string{
	"created_at":   "created_at ASC",
	"-created_at":  "created_at DESC",
	"likes_count":  "likes_count ASC",
	"-likes_count": "likes_count DESC",
	"view_count":   "view_count ASC",
	"-view_count":  "view_count DESC",
}

// ListFeed 已审核分享列表，支持关键字、包围盒筛选与多种排序。
func (s *Service) ListFeed(q moduledto.FeedQuery) ([]moduledto.PostResponse, int64, error) {
	filter := repo.PostFilter{
		Status: model.PostStatusApproved,
		Search: q.Search,
	}
	if q.Origin != nil && q.RadiusKm > 0 {
		box := geo.BoundingBox(q.Origin.Lat, q.Origin.Lng, q.RadiusKm)
		filter.Box = &box
	}
	return s.queryFeed(filter, q)
}

// Nearby 附近分享：必须提供位置，半径缺省时使用配置值。
func (s *Service) Nearby(q moduledto.FeedQuery) ([]moduledto.PostResponse, int64, error) {
	if q.Origin == nil {
		return nil, 0, platformservice.NewValidationError("缺少位置参数")
	}
	if q.RadiusKm <= 0 {
		q.RadiusKm = s.DefaultRadiusKm()
	}
	box := geo.BoundingBox(q.Origin.Lat, q.Origin.Lng, q.RadiusKm)
	if q.Ordering != orderingDistance {
		q.Ordering = "-created_at"
	}
	return s.queryFeed(repo.PostFilter{
		Status: model.PostStatusApproved,
		Box:    &box,
	}, q)
}

// MyPosts 当前用户的全部分享，不区分审核状态。
func (s *Service) MyPosts(q moduledto.FeedQuery) ([]moduledto.PostResponse, int64, error) {
	q.Ordering = "-created_at"
	return s.queryFeed(repo.PostFilter{UserID: q.ViewerID}, q)
}

// DefaultRadiusKm 读取附近搜索默认半径。
func (s *Service) DefaultRadiusKm() float64 {
	if r := s.GetFloat64(consts.ConfigNearbyDefaultRadius); r > 0 {
		return r
	}
	return 10
}

func (s *Service) queryFeed(filter repo.PostFilter, q moduledto.FeedQuery) ([]moduledto.PostResponse, int64, error) {
	ordering := strings.TrimSpace(q.Ordering)

	if ordering == orderingDistance && q.Origin != nil {
		// 精确距离排序需要先取出全部候选，再在内存中分页
		filter.OrderBy = feedOrdering["-created_at"]
		posts, _, err := s.postStore.List(filter)
		if err != nil {
			return nil, 0, s.mapStoreError(err, "获取分享列表失败")
		}
		posts = sortByDistance(posts, *q.Origin)
		total := int64(len(posts))
		posts = pageSlice(posts, q.Offset, q.Limit)
		items, err := s.serialize(posts, q.ViewerID, q.Origin)
		return items, total, err
	}

	orderBy, ok := feedOrdering[ordering]
	if !ok {
		orderBy = feedOrdering["-created_at"]
	}
	filter.OrderBy = orderBy
	filter.Offset = q.Offset
	filter.Limit = q.Limit
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	posts, total, err := s.postStore.List(filter)
	if err != nil {
		return nil, 0, s.mapStoreError(err, "获取分享列表失败")
	}
	items, err := s.serialize(posts, q.ViewerID, q.Origin)
	return items, total, err
}

// sortByDistance 按与 origin 的大圆距离升序，无坐标的排在最后。
func sortByDistance(posts []model.Post, origin moduledto.Location) []model.Post {
	distances := make(map[uint]float64, len(posts))
	for _, p := range posts {
		if p.HasLocation() {
			distances[p.ID] = geo.Haversine(origin.Lat, origin.Lng, *p.Latitude, *p.Longitude)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		di, iok := distances[posts[i].ID]
		dj, jok := distances[posts[j].ID]
		if iok != jok {
			return iok
		}
		return di < dj
	})
	return posts
}

func pageSlice(posts []model.Post, offset, limit int) []model.Post {
	if offset < 0 || offset >= len(posts) {
		return []model.Post{}
	}
	end := len(posts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return posts[offset:end]
}

// serialize 补充 is_liked 与 distance 字段。
func (s *Service) serialize(posts []model.Post, viewerID uint, origin *moduledto.Location) ([]moduledto.PostResponse, error) {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	liked, err := s.postStore.LikedPostIDs(viewerID, ids)
	if err != nil {
		return nil, s.mapStoreError(err, "获取点赞状态失败")
	}

	out := make([]moduledto.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, buildResponse(&posts[i], liked[posts[i].ID], origin))
	}
	return out, nil
}

func buildResponse(post *model.Post, liked bool, origin *moduledto.Location) moduledto.PostResponse {
	resp := moduledto.NewPostResponse(post)
	resp.IsLiked = liked
	if origin != nil && post.HasLocation() {
		d := geo.Round2(geo.Haversine(origin.Lat, origin.Lng, *post.Latitude, *post.Longitude))
		resp.Distance = &d
	}
	return resp
}
