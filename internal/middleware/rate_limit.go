package middleware

import (
	"context"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/logger"
	"github.com/1nFrastr/miao-bbq-app/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = time.Minute
	limiterIdleTTL         = 3 * time.Minute
)

type IPRateLimiter struct {
	ips      sync.Map
	mu       sync.Mutex
	r        rate.Limit
	b        int
	done     chan struct{}
	stopOnce sync.Once
}

type client struct {
	limiter *rate.Limiter
	// lastSeen 为 UnixNano，请求协程与清理协程并发读写
	lastSeen atomic.Int64
}

func newClient(limiter *rate.Limiter, now time.Time) *client {
	c := &client{limiter: limiter}
	c.lastSeen.Store(now.UnixNano())
	return c
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r:    r,
		b:    b,
		done: make(chan struct{}),
	}

	go i.cleanupLoop()

	return i
}

// Stop 结束后台清理协程，可重复调用。
func (i *IPRateLimiter) Stop() {
	i.stopOnce.Do(func() { close(i.done) })
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(time.Now().UnixNano())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(time.Now().UnixNano())
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, newClient(limiter, time.Now()))

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-i.done:
			return
		case now := <-ticker.C:
			i.cleanup(now)
		}
	}
}

// cleanup 删除超过 limiterIdleTTL 未访问的 IP。
func (i *IPRateLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	i.ips.Range(func(key, value interface{}) bool {
		if value.(*client).lastSeen.Load() < cutoff {
			i.ips.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware 创建一个按配置动态调整的 IP 限流中间件。
// Redis 可用时多实例共享计数，Redis 出错时回退到进程内令牌桶。
func RateLimitMiddleware(appService *service.AppService, rpsKey string, burstKey string) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !appService.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := appService.GetFloat64(rpsKey)
		currentBurst := appService.GetInt(burstKey)
		ip := c.ClientIP()

		if redisClient := service.GetRedisClient(); redisClient != nil {
			allowed, err := allowByRedisRateLimit(redisClient, "rate", rpsKey, burstKey, ip, currentRPS, currentBurst)
			if err == nil {
				if !allowed {
					abortTooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			logger.L().Warn("Redis 限流失败，回退内存限流", zap.Error(err))
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(ip)
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			abortTooManyRequests(c)
			return
		}
		c.Next()
	}
}

func abortTooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
	c.Abort()
}

// allowByRedisRateLimit 固定窗口计数：窗口长度为 burst/rps 秒，窗口内最多 burst 次。
// rps 为 0 时不补充，窗口按一小时计算。burst 不大于 0 时视为关闭。
func allowByRedisRateLimit(client *redis.Client, scope, rpsKey, burstKey, ip string, rps float64, burst int) (bool, error) {
	if burst <= 0 || rps < 0 {
		return true, nil
	}

	window := time.Hour
	if rps > 0 {
		window = time.Duration(math.Ceil(float64(burst)/rps)) * time.Second
		if window < time.Second {
			window = time.Second
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	key := service.RedisKey(scope, rpsKey, burstKey, ip)
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(burst), nil
}
