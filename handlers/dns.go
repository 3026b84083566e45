/*
 * @Date: 2025-06-20 10:28:00
 * @Description: DNS查询处理器
 */
package handlers

import (
	"strings"
	"time"

	"domainlens/pkg/logger"
	"domainlens/services"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// DNSQuery 处理批量DNS查询请求
// ?types=A,MX 限定记录类型，缺省查询全部支持的类型
func DNSQuery(svc *services.DNSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		domain := c.GetString("domain")

		var recordTypes []string
		if raw := c.Query("types"); raw != "" {
			recordTypes = strings.Split(raw, ",")
		}

		result, err := svc.Resolve(c.Request.Context(), domain, recordTypes)
		if err != nil {
			logger.WithRequest(c, "DNS").Warnf("DNS查询失败: domain=%s types=%v err=%v", domain, recordTypes, err)
			respondServiceError(c, err)
			return
		}

		utils.SuccessResponse(c, result, &utils.MetaInfo{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Processing: time.Since(start).Milliseconds(),
		})
	}
}

// DNSQueryByType 处理单一记录类型的DNS查询请求
func DNSQueryByType(svc *services.DNSService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		domain := c.GetString("domain")
		recordType := c.Param("type")

		result, err := svc.Resolve(c.Request.Context(), domain, []string{recordType})
		if err != nil {
			logger.WithRequest(c, "DNS").Warnf("DNS查询失败: domain=%s type=%s err=%v", domain, recordType, err)
			respondServiceError(c, err)
			return
		}

		utils.SuccessResponse(c, result, &utils.MetaInfo{
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Processing: time.Since(start).Milliseconds(),
		})
	}
}
