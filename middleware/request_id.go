/*
 * @Date: 2025-06-20 04:02:00
 * @Description: Request ID中间件 - 用于请求追踪
 */

package middleware

import (
	"context"

	"domainlens/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 生成或传播请求ID，用于分布式追踪
// 优先使用客户端提供的X-Request-ID头，否则生成新UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// 存储到gin context（用于中间件和handler）
		c.Set("requestID", requestID)

		// 存储到标准context（用于service层）
		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		// 在响应头中返回request ID，方便客户端追踪
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}
