/*
 * @Date: 2025-06-20 04:22:00
 * @Description: 访问日志中间件
 */
package middleware

import (
	"time"

	"domainlens/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog 结构化访问日志
// 慢请求和错误请求升级为Warn级别
func AccessLog() gin.HandlerFunc {
	lg := logger.Module("API")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []interface{}{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", raw),
			zap.String("clientIP", c.ClientIP()),
			zap.Duration("latency", latency),
			zap.Int("responseSize", c.Writer.Size()),
			zap.String("requestID", c.GetString("requestID")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if status >= 400 || latency > 500*time.Millisecond {
			lg.Warnw("请求完成", fields...)
		} else {
			lg.Infow("请求完成", fields...)
		}
	}
}
