/*
 * @Date: 2025-06-20 04:15:00
 * @Description: 错误处理中间件
 */
package middleware

import (
	"domainlens/pkg/logger"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler 兜底错误处理
// handler内的panic由gin.Recovery捕获，这里处理c.Error上报的错误
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last()
			logger.WithRequest(c, "HTTP").Errorf("请求处理错误: path=%s err=%v", c.Request.URL.Path, err)
			utils.ErrorResponse(c, 500, "INTERNAL_SERVER_ERROR", "服务器内部错误")
		}
	}
}
