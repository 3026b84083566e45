/*
 * @Date: 2025-06-20 10:14:00
 * @Description: 服务层错误到HTTP响应的映射
 */
package handlers

import (
	"errors"

	"domainlens/types"
	"domainlens/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError 将服务层的哨兵错误映射到统一错误响应
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidDomain):
		utils.ErrorResponse(c, 400, "INVALID_DOMAIN", err.Error())
	case errors.Is(err, types.ErrUnsupportedRecordType):
		utils.ErrorResponse(c, 400, "UNSUPPORTED_RECORD_TYPE", err.Error())
	case errors.Is(err, types.ErrDomainNotFound):
		utils.ErrorResponse(c, 404, "DOMAIN_NOT_FOUND", err.Error())
	case errors.Is(err, types.ErrWhoisUnavailable):
		utils.ErrorResponse(c, 404, "WHOIS_UNAVAILABLE", err.Error())
	default:
		utils.ErrorResponse(c, 500, "INTERNAL_SERVER_ERROR", "查询失败，请稍后重试")
	}
}
