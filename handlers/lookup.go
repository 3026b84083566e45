/*
 * @Date: 2025-06-20 10:35:00
 * @Description: 聚合查询处理器
 */
package handlers

import (
	"time"

	"domainlens/pkg/logger"
	"domainlens/services"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// Lookup 处理WHOIS+DNS聚合查询请求
// WHOIS失败不使请求失败，错误以负载形式返回；DNS失败则整体失败
func Lookup(svc *services.LookupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		domain := c.GetString("domain")

		result, err := svc.Lookup(c.Request.Context(), domain)
		if err != nil {
			logger.WithRequest(c, "LOOKUP").Warnf("聚合查询失败: domain=%s err=%v", domain, err)
			respondServiceError(c, err)
			return
		}

		utils.SuccessResponse(c, result, &utils.MetaInfo{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Processing: time.Since(start).Milliseconds(),
		})
	}
}
