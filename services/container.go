/*
 * @Date: 2025-06-19 16:02:00
 * @Description: 服务容器，用于统一管理所有服务组件
 */
package services

import (
	"os"
	"time"

	"domainlens/pkg/logger"
	"domainlens/providers"

	"github.com/go-redis/redis/v8"
)

// ServiceContainer 服务容器，管理所有服务组件
type ServiceContainer struct {
	RedisClient   *redis.Client
	WorkerPool    *WorkerPool
	WhoisService  *WhoisService
	DNSService    *DNSService
	LookupService *LookupService
	UsageRecorder *UsageRecorder
	Limiter       *RateLimiter
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(redisClient *redis.Client, workerPoolSize int) *ServiceContainer {
	container := &ServiceContainer{
		RedisClient: redisClient,
	}

	// 初始化工作池
	logger.Module("CONTAINER").Infof("初始化工作池，大小: %d", workerPoolSize)
	container.WorkerPool = NewWorkerPool(workerPoolSize)
	container.WorkerPool.Start()

	// 初始化WHOIS解析服务
	legacy := providers.NewLegacyClient()
	rdap := providers.NewRDAPClient()
	container.WhoisService = NewWhoisService(legacy, rdap)

	// 初始化DNS解析服务
	container.DNSService = NewDNSService(os.Getenv("DNS_SERVER"), container.WorkerPool)

	// 初始化聚合查询服务
	container.LookupService = NewLookupService(container.WhoisService, container.DNSService)

	// 初始化调用量记录器
	container.UsageRecorder = NewUsageRecorder(redisClient)

	return container
}

// InitializeLimiter 初始化限流器
func (sc *ServiceContainer) InitializeLimiter(key string, rate int, period time.Duration) {
	sc.Limiter = NewRateLimiter(sc.RedisClient, key, rate, period)
}

// Shutdown 关闭所有服务
func (sc *ServiceContainer) Shutdown() {
	lg := logger.Module("CONTAINER")

	if sc.WorkerPool != nil {
		lg.Info("关闭工作池...")
		sc.WorkerPool.Stop()
	}

	if sc.RedisClient != nil {
		lg.Info("关闭 Redis 客户端...")
		sc.RedisClient.Close()
	}

	lg.Info("所有服务已关闭")
}
