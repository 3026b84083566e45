/*
 * @Date: 2025-06-20 10:20:00
 * @Description: WHOIS查询处理器
 */
package handlers

import (
	"time"

	"domainlens/pkg/logger"
	"domainlens/services"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// WhoisQuery 处理WHOIS查询请求
// 域名已由DomainValidator规范化并写入上下文
func WhoisQuery(svc *services.WhoisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		domain := c.GetString("domain")
		lg := logger.WithRequest(c, "WHOIS")

		record, err := svc.Resolve(c.Request.Context(), domain)
		if err != nil {
			lg.Warnf("WHOIS查询失败: domain=%s err=%v", domain, err)
			respondServiceError(c, err)
			return
		}

		utils.SuccessResponse(c, record, &utils.MetaInfo{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Processing: time.Since(start).Milliseconds(),
		})
	}
}
