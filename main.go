/*
 * @Date: 2025-06-20 12:00:00
 * @Description: 服务入口 - 初始化配置、日志、Redis与HTTP服务器
 */
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"domainlens/middleware"
	"domainlens/pkg/logger"
	"domainlens/routes"
	"domainlens/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

// getPort 读取监听端口，确保带冒号前缀
func getPort(defaultPort string) string {
	port := defaultPort
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

// getCorsConfig 从环境变量中读取CORS配置
func getCorsConfig() cors.Config {
	lg := logger.Module("CORS")

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
		for i := range allowedOrigins {
			allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
		}
	}

	allowedMethods := []string{"GET", "POST", "OPTIONS"}
	if methods := os.Getenv("CORS_ALLOWED_METHODS"); methods != "" {
		allowedMethods = strings.Split(methods, ",")
	}

	allowedHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"}
	if headers := os.Getenv("CORS_ALLOWED_HEADERS"); headers != "" {
		allowedHeaders = strings.Split(headers, ",")
	}

	exposedHeaders := []string{"Content-Length", "X-Request-ID"}
	if headers := os.Getenv("CORS_EXPOSED_HEADERS"); headers != "" {
		exposedHeaders = strings.Split(headers, ",")
	}

	maxAge := 12 * time.Hour
	if ageStr := os.Getenv("CORS_MAX_AGE"); ageStr != "" {
		if age, err := time.ParseDuration(ageStr); err == nil {
			maxAge = age
		}
	}

	lg.Infof("CORS配置: 允许的源=%v 方法=%v", allowedOrigins, allowedMethods)

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     allowedMethods,
		AllowHeaders:     allowedHeaders,
		ExposeHeaders:    exposedHeaders,
		AllowCredentials: true,
		MaxAge:           maxAge,
	}
}

func main() {
	// .env缺失不阻止启动，容器环境通常直接注入环境变量
	_ = godotenv.Load()

	env := logger.DeriveEnvironment()
	if err := logger.Init(env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	lg := logger.Module("MAIN")
	lg.Infof("启动服务器，版本：%s，环境：%s", os.Getenv("APP_VERSION"), env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化Redis客户端
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
		IdleTimeout:  5 * time.Minute,
		MaxConnAge:   30 * time.Minute,
	})

	// 初始化服务容器
	numCPU := runtime.NumCPU()
	serviceContainer := services.NewServiceContainer(rdb, numCPU*2)

	// 创建Gin引擎
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())
	r.Use(middleware.ErrorHandler())
	r.Use(cors.New(getCorsConfig()))

	// 注册API路由
	routes.RegisterAPIRoutes(r, serviceContainer)

	port := getPort("8080")
	srv := &http.Server{
		Addr:           port,
		Handler:        r,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	// 优雅关闭
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		lg.Info("正在关闭服务器...")

		// 先排空在途请求再停服务组件，避免请求还在跑时工作池已关闭
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			lg.Errorf("服务器被强制关闭: %v", err)
		}

		serviceContainer.Shutdown()

		lg.Info("服务器已安全关闭")
	}()

	lg.Infof("服务器启动在端口%s，环境：%s", port, env)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatalf("服务器启动失败: %v", err)
	}
}
