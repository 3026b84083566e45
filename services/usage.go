/*
 * @Date: 2025-06-19 14:33:50
 * @Description: 调用量统计 - 按调用方和接口维度记录到Redis
 */
package services

import (
	"context"
	"encoding/json"
	"time"

	"domainlens/pkg/logger"
	"domainlens/utils"

	"github.com/go-redis/redis/v8"
)

const (
	// usageCounterTTL 按天计数器的保留时长
	usageCounterTTL = 90 * 24 * time.Hour
	// recentEventsCap 每个调用方保留的最近调用明细条数
	recentEventsCap = 200
)

// UsageEvent 单次调用的明细记录
type UsageEvent struct {
	CallerID   string `json:"callerId"`
	Endpoint   string `json:"endpoint"`
	Domain     string `json:"domain"`
	StatusCode int    `json:"statusCode"`
	LatencyMs  int64  `json:"latencyMs"`
	UserAgent  string `json:"userAgent,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// UsageRecorder 调用量记录器
// 统计失败只记日志，绝不影响请求本身
type UsageRecorder struct {
	rdb *redis.Client
}

// NewUsageRecorder 创建调用量记录器
func NewUsageRecorder(rdb *redis.Client) *UsageRecorder {
	return &UsageRecorder{rdb: rdb}
}

// Record 记录一次API调用
func (u *UsageRecorder) Record(ctx context.Context, event UsageEvent) {
	if u.rdb == nil {
		return
	}
	event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	event.UserAgent = utils.TruncateString(event.UserAgent, 120)

	day := time.Now().UTC().Format("20060102")
	counterKey := utils.BuildCacheKey("usage", "count", event.CallerID, event.Endpoint, day)
	recentKey := utils.BuildCacheKey("usage", "recent", event.CallerID)

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Module("USAGE").Warnf("调用明细序列化失败: %v", err)
		return
	}

	pipe := u.rdb.Pipeline()
	pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, usageCounterTTL)
	pipe.LPush(ctx, recentKey, payload)
	pipe.LTrim(ctx, recentKey, 0, recentEventsCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		logger.Module("USAGE").Warnf("调用量写入失败: caller=%s endpoint=%s err=%v",
			event.CallerID, event.Endpoint, err)
		return
	}

	logger.Module("USAGE").Debugf("调用记录: caller=%s endpoint=%s domain=%s status=%d latency=%dms",
		event.CallerID, event.Endpoint, event.Domain, event.StatusCode, event.LatencyMs)
}

// DailyCount 读取某调用方某接口当天的调用次数
func (u *UsageRecorder) DailyCount(ctx context.Context, callerID, endpoint string) (int64, error) {
	day := time.Now().UTC().Format("20060102")
	counterKey := utils.BuildCacheKey("usage", "count", callerID, endpoint, day)
	count, err := u.rdb.Get(ctx, counterKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}
