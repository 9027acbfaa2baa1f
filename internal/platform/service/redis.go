package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/config"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	redisMu     sync.Mutex
	redisInited bool
	redisClient *redis.Client
)

// GetRedisClient 获取 Redis 客户端；当未启用或不可用时返回 nil。
func GetRedisClient() *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()
	if !redisInited {
		redisClient = initRedisClient()
		redisInited = true
	}
	return redisClient
}

// SetRedisClient 直接注入客户端，传 nil 表示强制使用内存模式。
func SetRedisClient(client *redis.Client) {
	redisMu.Lock()
	defer redisMu.Unlock()
	redisClient = client
	redisInited = true
}

// ResetRedisClient 丢弃当前客户端，下次调用 GetRedisClient 时按配置重新连接。
func ResetRedisClient() {
	redisMu.Lock()
	defer redisMu.Unlock()
	redisClient = nil
	redisInited = false
}

// RedisKey 基于配置前缀拼接 Redis 键名。
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "miao_bbq"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func initRedisClient() *redis.Client {
	cfg := config.Get()
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.L().Warn("⚠️ Redis 不可用，降级为内存模式", zap.Error(err))
		return nil
	}

	logger.L().Info("✅ Redis 已连接", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
	return client
}

// CloseRedisClient 关闭 Redis 客户端连接。
func CloseRedisClient() error {
	redisMu.Lock()
	defer redisMu.Unlock()
	if redisClient == nil {
		return nil
	}
	if err := redisClient.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	redisClient = nil
	return nil
}
