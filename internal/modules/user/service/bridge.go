package service

import "github.com/1nFrastr/miao-bbq-app/internal/model"

// FindByOpenID 供身份中间件按 openid 解析用户。
func (s *Service) FindByOpenID(openid string) (*model.User, error) {
	return s.userStore.FindByOpenID(openid)
}

// FindDefaultUser 返回最早创建的用户。
func (s *Service) FindDefaultUser() (*model.User, error) {
	return s.userStore.FindFirst()
}

// FindByID 提供跨模块用户查询能力。
func (s *Service) FindByID(id uint) (*model.User, error) {
	return s.userStore.FindByID(id)
}
