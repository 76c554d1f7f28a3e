package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Forfeit-15/INF2003/internal/apperr"
	"github.com/Forfeit-15/INF2003/internal/utils"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitClientTTL       = 3 * time.Minute
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter 按客户端 IP 的令牌桶限流
type IPRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     rate.Limit
	burst   int
}

// NewIPRateLimiter 创建限流器，ctx 结束时停止后台清理
func NewIPRateLimiter(ctx context.Context, rps float64, burst int) *IPRateLimiter {
	l := &IPRateLimiter{
		clients: make(map[string]*rateLimitClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}

	go func() {
		ticker := time.NewTicker(rateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.evict(time.Now())
			case <-ctx.Done():
				return
			}
		}
	}()

	return l
}

// Allow 判断该 IP 是否还有令牌
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	client, ok := l.clients[ip]
	if !ok {
		client = &rateLimitClient{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter.Allow()
}

func (l *IPRateLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, client := range l.clients {
		if now.Sub(client.lastSeen) > rateLimitClientTTL {
			delete(l.clients, ip)
		}
	}
}

// RateLimit 超出速率时返回 429
func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			utils.Fail(c, apperr.TooManyRequests("too many requests, please slow down"))
			return
		}
		c.Next()
	}
}
