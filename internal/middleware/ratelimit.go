package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxTrackedKeys 限制跟踪的限速键数量，防止轮换来源 IP 撑爆内存
const maxTrackedKeys = 4096

// keyedLimiter 按键限速器集合
type keyedLimiter struct {
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	mu       sync.Mutex
}

// allow 判断键是否放行，满了先整体硬淘汰
func (k *keyedLimiter) allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, ok := k.limiters[key]
	if !ok {
		if len(k.limiters) >= maxTrackedKeys {
			k.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(k.limit, k.burst)
		k.limiters[key] = limiter
	}
	return limiter.Allow()
}

// RateLimit 入站限速中间件，按客户端 IP 限制请求速率
func RateLimit(perSecond float64, burst int) gin.HandlerFunc {
	kl := &keyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !kl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(429, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
