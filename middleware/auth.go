/*
 * @Date: 2025-06-20 03:41:00
 * @Description: 认证中间件
 */

package middleware

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"domainlens/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
)

const (
	TokenExpiration = 30 * time.Second
)

type Claims struct {
	jwt.StandardClaims
	Nonce string `json:"nonce"`
	IP    string `json:"ip"`
}

// normalizeIP 规范化IP地址，处理IPv4和IPv6映射
// 用于JWT IP绑定验证，确保IP比较的准确性
func normalizeIP(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parsed := net.ParseIP(trimmed)
	if parsed == nil {
		// 解析失败时返回原始值（可能包含端口或其他信息）
		return trimmed
	}

	// IPv4或IPv4映射的IPv6统一为IPv4格式
	if v4 := parsed.To4(); v4 != nil {
		return v4.String()
	}

	return parsed.String()
}

func AuthRequired(rdb *redis.Client) gin.HandlerFunc {
	lg := logger.Module("AUTH")
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			lg.Warnf("缺少认证头: ip=%s", c.ClientIP())
			c.AbortWithStatusJSON(401, gin.H{"error": "Missing authorization header"})
			return
		}

		// 先验证Bearer前缀和长度再切片，避免越界
		const bearerPrefix = "Bearer "
		if len(authHeader) < len(bearerPrefix) || !strings.HasPrefix(authHeader, bearerPrefix) {
			lg.Warnf("认证头格式错误: ip=%s", c.ClientIP())
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid authorization header format"})
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Empty token"})
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil {
			lg.Warnf("Token验证失败: %v", err)
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		// Token必须从其签发时声明的IP地址使用，防止跨网络令牌重用
		requestIP := normalizeIP(c.ClientIP())
		tokenIP := normalizeIP(claims.IP)
		if requestIP == "" || tokenIP == "" || requestIP != tokenIP {
			lg.Warnf("Token IP不匹配: token_ip=%s request_ip=%s nonce=%s",
				claims.IP, c.ClientIP(), claims.Nonce)
			c.AbortWithStatusJSON(401, gin.H{
				"error": "Token IP mismatch",
				"code":  "IP_BINDING_FAILED",
			})
			return
		}

		// nonce一次性使用，防止重放
		nonceKey := fmt.Sprintf("nonce:%s", claims.Nonce)
		if exists, _ := rdb.Exists(c, nonceKey).Result(); exists == 1 {
			c.AbortWithStatusJSON(401, gin.H{"error": "Token already used"})
			return
		}
		rdb.Set(c, nonceKey, true, TokenExpiration)

		// 供调用量统计识别调用方
		c.Set("callerID", normalizeIP(claims.IP))

		c.Next()
	}
}

// 生成临时Token的处理函数
func GenerateToken(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		// 限制单IP的令牌签发频率
		key := fmt.Sprintf("token:ip:%s", clientIP)
		count, _ := rdb.Incr(c, key).Result()
		rdb.Expire(c, key, time.Minute)

		if count > 30 { // 每分钟最多30个token
			c.JSON(429, gin.H{
				"error": "请求过于频繁",
				"code":  "TOO_MANY_REQUESTS",
			})
			return
		}

		nonce := fmt.Sprintf("%d", time.Now().UnixNano())
		claims := Claims{
			StandardClaims: jwt.StandardClaims{
				ExpiresAt: time.Now().Add(TokenExpiration).Unix(),
				IssuedAt:  time.Now().Unix(),
				Issuer:    "domainlens-api",
			},
			Nonce: nonce,
			IP:    clientIP,
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signedToken, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			c.JSON(500, gin.H{
				"error": "Failed to generate token",
				"code":  "TOKEN_GENERATION_FAILED",
			})
			return
		}

		c.JSON(200, gin.H{"token": signedToken})
	}
}
