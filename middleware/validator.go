/*
 * @Date: 2025-06-20 05:03:00
 * @Description: 域名参数验证器
 */
package middleware

import (
	"domainlens/pkg/logger"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// DomainValidator 验证并规范化路径中的:domain参数
// 通过后将规范化结果写入上下文，handler直接取用
func DomainValidator() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("domain")
		normalized, err := utils.NormalizeDomain(raw)
		if err != nil {
			logger.WithRequest(c, "VALIDATOR").Debugf("域名验证失败: input=%q err=%v", raw, err)
			utils.ErrorResponse(c, 400, "INVALID_DOMAIN", "无效的域名格式: "+raw)
			c.Abort()
			return
		}

		c.Set("domain", normalized)
		c.Next()
	}
}
