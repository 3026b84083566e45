/*
 * @Date: 2025-06-13 09:31:55
 * @Description: 统一日志系统 - 基于uber-go/zap，按天切割日志文件
 */
package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
)

// ContextKey 用于从context中获取request ID
type ContextKey string

const RequestIDKey ContextKey = "request_id"

// Init 初始化全局logger
// env: "dev" 使用彩色控制台输出，"production" 使用JSON格式并写入切割日志文件
func Init(env string) error {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.CallerKey = "caller"

	var core zapcore.Core
	if env == "dev" || env == "development" {
		devCfg := zap.NewDevelopmentEncoderConfig()
		devCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		devCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewCore(
			zapcore.NewConsoleEncoder(devCfg),
			zapcore.Lock(os.Stdout),
			zapcore.DebugLevel,
		)
	} else {
		if err := os.MkdirAll("logs", 0755); err != nil {
			return fmt.Errorf("无法创建日志目录: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   fmt.Sprintf("logs/server_%s.log", time.Now().Format("2006-01-02")),
			MaxSize:    100, // MB
			MaxBackups: 30,
			MaxAge:     90, // 天
			Compress:   true,
			LocalTime:  true,
		}
		fileSink := zapcore.AddSync(rotator)
		core = zapcore.NewTee(
			zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileSink, zapcore.InfoLevel),
			zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(os.Stdout), zapcore.InfoLevel),
		)
	}

	l := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	base = l
	sugar = l.Sugar()

	// 向后兼容：重定向标准库log到zap
	stdLog := zap.NewStdLog(l)
	log.SetOutput(stdLog.Writer())
	log.SetFlags(0)

	return nil
}

// Module 创建带模块名称的logger
// 用法: logger.Module("Whois").Infof("query started: %s", domain)
func Module(name string) *zap.SugaredLogger {
	if sugar == nil {
		return zap.NewExample().Sugar().Named(name)
	}
	return sugar.Named(name)
}

// Base 返回原始zap.Logger，用于需要强类型字段的场景
func Base() *zap.Logger {
	if base == nil {
		return zap.NewExample()
	}
	return base
}

// Sugar 返回SugaredLogger，用于printf风格日志
func Sugar() *zap.SugaredLogger {
	if sugar == nil {
		return zap.NewExample().Sugar()
	}
	return sugar
}

// WithRequest 从Gin context取request ID，返回带request_id和client_ip字段的logger
func WithRequest(c *gin.Context, moduleName string) *zap.SugaredLogger {
	l := Module(moduleName)
	if requestID, exists := c.Get("requestID"); exists {
		l = l.With("request_id", requestID)
	}
	return l.With("client_ip", c.ClientIP())
}

// FromContext 从标准context.Context中获取request ID
func FromContext(ctx context.Context, moduleName string) *zap.SugaredLogger {
	l := Module(moduleName)
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		l = l.With("request_id", requestID)
	}
	return l
}

// Sync 刷新日志缓冲区，程序退出前调用
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

// DeriveEnvironment 根据环境变量推导运行环境
func DeriveEnvironment() string {
	if ginMode := os.Getenv("GIN_MODE"); ginMode != "" {
		if ginMode == "release" {
			return "production"
		}
		return "dev"
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "dev"
}
