package middleware

import (
	"Wildsalt/internal/api/config"
	"Wildsalt/internal/pkg/consts"
	"Wildsalt/internal/pkg/redis"
	"Wildsalt/internal/pkg/response"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CommentRateLimit 基于 Redis 的单 IP 评论限流。
// 同一 IP 在间隔窗口内再次提交会被拒绝，并提示剩余等待秒数。
func CommentRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		interval := time.Duration(config.Cfg.Comment.IntervalSeconds) * time.Second
		if interval <= 0 {
			c.Next()
			return
		}

		key := consts.CommentRateKey + c.ClientIP()
		ok, err := redis.SetNX(c.Request.Context(), key, "1", interval)
		if err != nil {
			// Redis 故障放行，不让限流挡住正常评论
			c.Next()
			return
		}
		if !ok {
			wait := interval
			if ttl, err := redis.TTL(c.Request.Context(), key); err == nil && ttl > 0 {
				wait = ttl
			}
			seconds := int(wait.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			response.Fail(c, http.StatusTooManyRequests, fmt.Sprintf("评论太频繁，请等待%d秒后再试", seconds))
			c.Abort()
			return
		}

		c.Next()
	}
}
