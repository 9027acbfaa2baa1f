package dto

import (
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
)

type PostImageRequest struct {
	ImageURL string `json:"image_url" binding:"required,max=500"`
}

type CreatePostRequest struct {
	ShopName        string             `json:"shop_name" binding:"required,max=100"`
	ShopPrice       *int               `json:"shop_price" binding:"required,min=0"`
	Comment         string             `json:"comment" binding:"required"`
	Latitude        *float64           `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64           `json:"longitude" binding:"omitempty,min=-180,max=180"`
	LocationAddress string             `json:"location_address" binding:"omitempty,max=300"`
	Images          []PostImageRequest `json:"images" binding:"omitempty,dive"`
}

// UpdatePostRequest 只更新请求中出现的字段，图片不可修改。
type UpdatePostRequest struct {
	ShopName        *string  `json:"shop_name" binding:"omitempty,min=1,max=100"`
	ShopPrice       *int     `json:"shop_price" binding:"omitempty,min=0"`
	Comment         *string  `json:"comment" binding:"omitempty,min=1"`
	Latitude        *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	LocationAddress *string  `json:"location_address" binding:"omitempty,max=300"`
}

func (r UpdatePostRequest) Updates() map[string]any {
	updates := map[string]any{}
	if r.ShopName != nil {
		updates["shop_name"] = *r.ShopName
	}
	if r.ShopPrice != nil {
		updates["shop_price"] = *r.ShopPrice
	}
	if r.Comment != nil {
		updates["comment"] = *r.Comment
	}
	if r.Latitude != nil {
		updates["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		updates["longitude"] = *r.Longitude
	}
	if r.LocationAddress != nil {
		updates["location_address"] = *r.LocationAddress
	}
	return updates
}

// Location 为调用方提供的当前位置。
type Location struct {
	Lat float64
	Lng float64
}

// FeedQuery 信息流查询参数；Origin 非空时输出距离，RadiusKm > 0 时按包围盒筛选。
type FeedQuery struct {
	ViewerID uint
	Search   string
	Ordering string
	Origin   *Location
	RadiusKm float64
	Offset   int
	Limit    int
}

type PostImageResponse struct {
	ID        uint      `json:"id"`
	ImageURL  string    `json:"image_url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type PostResponse struct {
	ID              uint                `json:"id"`
	User            *model.User         `json:"user"`
	ShopName        string              `json:"shop_name"`
	ShopPrice       int                 `json:"shop_price"`
	Comment         string              `json:"comment"`
	Latitude        *float64            `json:"latitude"`
	Longitude       *float64            `json:"longitude"`
	LocationAddress string              `json:"location_address"`
	Status          string              `json:"status"`
	LikesCount      int                 `json:"likes_count"`
	ViewCount       int                 `json:"view_count"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Images          []PostImageResponse `json:"images"`
	IsLiked         bool                `json:"is_liked"`
	Distance        *float64            `json:"distance"`
}

type LikeToggleResponse struct {
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
}

type PostLikeResponse struct {
	ID        uint        `json:"id"`
	User      *model.User `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewPostResponse(post *model.Post) PostResponse {
	resp := PostResponse{
		ID:              post.ID,
		ShopName:        post.ShopName,
		ShopPrice:       post.ShopPrice,
		Comment:         post.Comment,
		Latitude:        post.Latitude,
		Longitude:       post.Longitude,
		LocationAddress: post.LocationAddress,
		Status:          post.Status,
		LikesCount:      post.LikesCount,
		ViewCount:       post.ViewCount,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
		Images:          make([]PostImageResponse, 0, len(post.Images)),
	}
	if post.User.ID != 0 {
		user := post.User
		resp.User = &user
	}
	for _, img := range post.Images {
		resp.Images = append(resp.Images, PostImageResponse{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			SortOrder: img.SortOrder,
			CreatedAt: img.CreatedAt,
		})
	}
	return resp
}

func NewPostLikeResponses(likes []model.PostLike) []PostLikeResponse {
	out := make([]PostLikeResponse, 0, len(likes))
	for _, like := range likes {
		item := PostLikeResponse{ID: like.ID, CreatedAt: like.CreatedAt}
		if like.User.ID != 0 {
			user := like.User
			item.User = &user
		}
		out = append(out, item)
	}
	return out
}
