/*
 * @Date: 2025-06-20 11:30:00
 * @Description: API路由注册
 */
package routes

import (
	"os"
	"time"

	"domainlens/handlers"
	"domainlens/middleware"
	"domainlens/pkg/logger"
	"domainlens/services"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// rateLimitMiddleware Redis滑动窗口限流
// 限流器自身故障时放行，不影响服务可用性
func rateLimitMiddleware(limiter *services.RateLimiter) gin.HandlerFunc {
	lg := logger.Module("RATELIMIT")
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			lg.Warnf("限流检查失败: ip=%s err=%v", c.ClientIP(), err)
		} else if !allowed {
			lg.Infof("请求被限流: ip=%s path=%s", c.ClientIP(), c.Request.URL.Path)
			utils.ErrorResponse(c, 429, "RATE_LIMITED", "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RegisterAPIRoutes 注册所有API路由
func RegisterAPIRoutes(r *gin.Engine, container *services.ServiceContainer) {
	if container.Limiter == nil {
		container.InitializeLimiter("limit:api", 60, time.Minute)
	}
	apiLimiter := container.Limiter

	// 健康检查，不走认证和业务限流
	r.GET("/api/health", middleware.HealthCheckRateLimit(), handlers.Health(container))

	// 认证令牌签发，客户端先取令牌再调用业务接口
	r.POST("/api/auth/token", middleware.GenerateToken(container.RedisClient))

	apiv1 := r.Group("/api/v1")
	apiv1.Use(middleware.Security())
	apiv1.Use(rateLimitMiddleware(apiLimiter))
	if os.Getenv("DISABLE_API_AUTH") != "true" {
		apiv1.Use(middleware.AuthRequired(container.RedisClient))
	}
	apiv1.Use(middleware.UsageTracking(container.UsageRecorder))

	// 用量概览，不需要域名参数，不走DomainValidator
	apiv1.GET("/stats/usage", handlers.UsageStats(container.UsageRecorder, apiLimiter))

	domainRoutes := apiv1.Group("")
	domainRoutes.Use(middleware.DomainValidator())
	{
		domainRoutes.GET("/whois/:domain", handlers.WhoisQuery(container.WhoisService))
		domainRoutes.GET("/dns/:domain", handlers.DNSQuery(container.DNSService))
		domainRoutes.GET("/dns/:domain/:type", handlers.DNSQueryByType(container.DNSService))
		domainRoutes.GET("/lookup/:domain", handlers.Lookup(container.LookupService))
	}
}
