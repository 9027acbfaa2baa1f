// Package seed 写入联调用的演示数据：用户、超级管理员、订单与社区分享。
package seed

import (
	"fmt"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/model"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Result 汇总本次新写入的记录数，已存在的用户与管理员不计入。
type Result struct {
	Users  int
	Admins int
	Orders int
	Posts  int
}

type demoItem struct {
	name     string
	price    string
	quantity int
}

type demoPost struct {
	shopName string
	address  string
	price    int
	comment  string
	lat      float64
	lng      float64
	status   string
}

var demoUsers = []model.User{
	{OpenID: "test_openid_001", Nickname: "张三", Gender: model.GenderMale, City: "北京", Province: "北京", Country: "中国", IsActive: true},
	{OpenID: "test_openid_002", Nickname: "李四", Gender: model.GenderFemale, City: "上海", Province: "上海", Country: "中国", IsActive: true},
	{OpenID: "test_openid_003", Nickname: "王五", Gender: model.GenderMale, City: "广州", Province: "广东", Country: "中国", IsActive: true},
}

var demoPosts = []demoPost{
	{"老北京烧烤", "北京市朝阳区三里屯", 80, "这家烧烤店的羊肉串特别香，老板人也很好，强烈推荐！", 39.9042, 116.4074, model.PostStatusApproved},
	{"新疆风味烧烤", "上海市徐汇区", 120, "正宗的新疆烧烤，羊肉很新鲜，配菜也很棒", 31.2304, 121.4737, model.PostStatusPending},
	{"深夜烧烤档", "广州市天河区", 60, "宵夜首选，价格实惠，味道不错，就是环境一般", 23.1291, 113.2644, model.PostStatusApproved},
}

// Run 在一个事务内写入演示数据。用户与管理员按唯一键去重，订单与分享每次追加。
func Run(gdb *gorm.DB, now time.Time) (*Result, error) {
	result := &Result{}
	err := gdb.Transaction(func(tx *gorm.DB) error {
		users, err := seedUsers(tx, result)
		if err != nil {
			return err
		}
		if err := seedAdmin(tx, result); err != nil {
			return err
		}
		if err := seedOrders(tx, users[0], now, result); err != nil {
			return err
		}
		return seedPosts(tx, users, result)
	})
	if err != nil {
		return nil, err
	}

	logger.L().Info("✅ 演示数据写入完成",
		zap.Int("users", result.Users),
		zap.Int("admins", result.Admins),
		zap.Int("orders", result.Orders),
		zap.Int("posts", result.Posts),
	)
	return result, nil
}

func seedUsers(tx *gorm.DB, result *Result) ([]model.User, error) {
	users := make([]model.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		user := u
		res := tx.Where("openid = ?", user.OpenID).FirstOrCreate(&user)
		if res.Error != nil {
			return nil, fmt.Errorf("创建用户 %s 失败: %w", u.OpenID, res.Error)
		}
		if res.RowsAffected > 0 {
			result.Users++
		}
		users = append(users, user)
	}
	return users, nil
}

func seedAdmin(tx *gorm.DB, result *Result) error {
	var count int64
	if err := tx.Model(&model.AdminUser{}).Where("username = ?", DefaultAdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("查询管理员失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}
	admin := &model.AdminUser{
		Username:    DefaultAdminUsername,
		Password:    string(hashed),
		Email:       "admin@example.com",
		RealName:    "系统管理员",
		IsActive:    true,
		IsSuperuser: true,
	}
	if err := tx.Create(admin).Error; err != nil {
		return fmt.Errorf("创建管理员失败: %w", err)
	}
	result.Admins++
	return nil
}

func seedOrders(tx *gorm.DB, owner model.User, now time.Time, result *Result) error {
	started := now.Add(-2 * time.Hour)
	completed := now.Add(-1 * time.Hour)

	orders := []struct {
		order model.Order
		items []demoItem
	}{
		{
			order: model.Order{UserID: owner.ID, Status: model.OrderStatusPending},
			items: []demoItem{{"烤羊肉串", "3.00", 10}, {"烤鸡翅", "8.00", 5}},
		},
		{
			order: model.Order{
				UserID:         owner.ID,
				Status:         model.OrderStatusCompleted,
				StartTime:      &started,
				CompleteTime:   &completed,
				WaitingSeconds: int64(completed.Sub(started).Seconds()),
			},
			items: []demoItem{{"烤牛肉", "12.00", 3}},
		},
	}

	for _, o := range orders {
		order := o.order
		total := decimal.Zero
		for _, it := range o.items {
			price := decimal.RequireFromString(it.price)
			subtotal := price.Mul(decimal.NewFromInt(int64(it.quantity))).Round(2)
			order.Items = append(order.Items, model.OrderItem{
				DishName:  it.name,
				UnitPrice: price,
				Quantity:  it.quantity,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}
		order.TotalAmount = total
		order.ItemCount = len(order.Items)
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("创建订单失败: %w", err)
		}
		result.Orders++
	}
	return nil
}

func seedPosts(tx *gorm.DB, users []model.User, result *Result) error {
	for i, p := range demoPosts {
		lat, lng := p.lat, p.lng
		post := &model.Post{
			UserID:          users[i%len(users)].ID,
			ShopName:        p.shopName,
			ShopPrice:       p.price,
			Comment:         p.comment,
			Latitude:        &lat,
			Longitude:       &lng,
			LocationAddress: p.address,
			Status:          p.status,
		}
		if err := tx.Create(post).Error; err != nil {
			return fmt.Errorf("创建分享 %s 失败: %w", p.shopName, err)
		}
		result.Posts++
	}
	return nil
}
