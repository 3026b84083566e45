/*
 * @Date: 2025-06-20 05:12:00
 * @Description: 调用量统计中间件
 */
package middleware

import (
	"context"
	"time"

	"domainlens/services"

	"github.com/gin-gonic/gin"
)

// UsageTracking 请求结束后异步记录调用明细
// 调用方标识优先取认证层写入的callerID，匿名请求退化为客户端IP
func UsageTracking(recorder *services.UsageRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		callerID := c.GetString("callerID")
		if callerID == "" {
			callerID = c.ClientIP()
		}

		event := services.UsageEvent{
			CallerID:   callerID,
			Endpoint:   c.FullPath(),
			Domain:     c.GetString("domain"),
			StatusCode: c.Writer.Status(),
			LatencyMs:  time.Since(start).Milliseconds(),
			UserAgent:  c.Request.UserAgent(),
		}

		// 统计写入不占用请求耗时；请求context在响应后即取消，需脱离它
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			recorder.Record(ctx, event)
		}()
	}
}
