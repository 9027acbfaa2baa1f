package model

import "time"

const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)

// MaxPostImages 单条分享最多保存的图片数。
const MaxPostImages = 3

type Post struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	UserID          uint        `json:"user_id" gorm:"not null;index"`
	User            User        `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	ShopName        string      `json:"shop_name" gorm:"size:100;not null"`
	ShopPrice       int         `json:"shop_price" gorm:"not null"`
	Comment         string      `json:"comment" gorm:"type:text;not null"`
	Latitude        *float64    `json:"latitude" gorm:"type:decimal(10,8);index:idx_posts_lat_lng"`
	Longitude       *float64    `json:"longitude" gorm:"type:decimal(11,8);index:idx_posts_lat_lng"`
	LocationAddress string      `json:"location_address" gorm:"size:300"`
	Status          string      `json:"status" gorm:"size:20;not null;default:pending;index"`
	LikesCount      int         `json:"likes_count" gorm:"not null;default:0;index"`
	ViewCount       int         `json:"view_count" gorm:"not null;default:0"`
	CreatedAt       time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Images          []PostImage `json:"images" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
}

// HasLocation 经纬度都存在时才参与附近搜索。
func (p *Post) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

type PostImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	ImageURL  string    `json:"image_url" gorm:"size:500;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0;index"`
	CreatedAt time.Time `json:"created_at"`
}

type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:uk_post_likes_post_user"`
	Post      *Post     `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE;"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uk_post_likes_post_user;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
