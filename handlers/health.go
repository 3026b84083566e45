/*
 * @Date: 2025-06-20 10:44:00
 * @Description: 健康检查处理器
 */
package handlers

import (
	"context"
	"os"
	"time"

	"domainlens/services"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// HealthStatus 健康检查响应
type HealthStatus struct {
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	Timestamp  string            `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// Health 健康检查
// 探测Redis和DNS解析器可达性；任一组件异常时整体降级为degraded
func Health(container *services.ServiceContainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		components := map[string]string{
			"redis": "up",
			"dns":   "up",
		}
		status := "ok"

		if container.RedisClient != nil {
			if err := container.RedisClient.Ping(ctx).Err(); err != nil {
				components["redis"] = "down"
				status = "degraded"
			}
		} else {
			components["redis"] = "disabled"
		}

		probe := os.Getenv("HEALTH_PROBE_DOMAIN")
		if probe == "" {
			probe = "example.com"
		}
		if _, err := container.DNSService.Resolve(ctx, probe, []string{"A"}); err != nil {
			components["dns"] = "down"
			status = "degraded"
		}

		code := 200
		if status != "ok" {
			code = 503
		}
		c.JSON(code, HealthStatus{
			Status:     status,
			Version:    serviceVersion,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Components: components,
		})
	}
}
