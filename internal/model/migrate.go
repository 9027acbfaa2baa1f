package model

// Tables 返回需要自动迁移的全部表，顺序保证外键依赖先于引用方创建。
func Tables() []any {
	return []any{
		&Setting{},
		&User{},
		&Order{},
		&OrderItem{},
		&Post{},
		&PostImage{},
		&PostLike{},
		&AdminUser{},
		&AdminLog{},
	}
}
