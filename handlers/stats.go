/*
 * @Date: 2025-06-21 09:40:00
 * @Description: 调用量统计查询处理器
 */
package handlers

import (
	"time"

	"domainlens/pkg/logger"
	"domainlens/services"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// UsageSummary 调用方的用量概览
type UsageSummary struct {
	CallerID    string `json:"callerId"`
	Endpoint    string `json:"endpoint"`
	Date        string `json:"date"`
	DailyCount  int64  `json:"dailyCount"`
	WindowCount int64  `json:"windowCount"`
}

// UsageStats 查询当前调用方的用量概览
// 返回当天按接口维度的调用次数和限流窗口内的请求数
// 调用方标识与UsageTracking一致：优先认证层写入的callerID，匿名退化为客户端IP
func UsageStats(recorder *services.UsageRecorder, limiter *services.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetString("callerID")
		if callerID == "" {
			callerID = c.ClientIP()
		}
		endpoint := c.DefaultQuery("endpoint", "whois")
		lg := logger.WithRequest(c, "STATS")

		ctx := c.Request.Context()

		dailyCount, err := recorder.DailyCount(ctx, callerID, endpoint)
		if err != nil {
			lg.Warnf("用量读取失败: caller=%s endpoint=%s err=%v", callerID, endpoint, err)
			utils.ErrorResponse(c, 503, "STATS_UNAVAILABLE", "统计数据暂不可用，请稍后重试")
			return
		}

		// 限流窗口按客户端IP计数，与rateLimitMiddleware的key一致
		windowCount, err := limiter.GetCurrentCount(ctx, c.ClientIP())
		if err != nil {
			lg.Warnf("限流窗口读取失败: ip=%s err=%v", c.ClientIP(), err)
			utils.ErrorResponse(c, 503, "STATS_UNAVAILABLE", "统计数据暂不可用，请稍后重试")
			return
		}

		utils.SuccessResponse(c, UsageSummary{
			CallerID:    callerID,
			Endpoint:    endpoint,
			Date:        time.Now().UTC().Format("20060102"),
			DailyCount:  dailyCount,
			WindowCount: windowCount,
		}, nil)
	}
}
