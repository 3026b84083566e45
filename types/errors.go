/*
 * @Date: 2025-06-14 21:52:08
 * @Description: 统一错误类型
 */
package types

import "errors"

// 对外暴露的错误分类，handler层通过 errors.Is 映射到HTTP状态码
// 瞬时网络错误在各查询层内部消化，不会越过服务边界
var (
	// ErrInvalidDomain 域名格式非法（客户端输入错误，任何网络调用之前返回）
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrUnsupportedRecordType 请求了不支持的DNS记录类型
	ErrUnsupportedRecordType = errors.New("unsupported dns record type")

	// ErrDomainNotFound DNS权威返回NXDOMAIN，域名不存在
	ErrDomainNotFound = errors.New("domain not found")

	// ErrWhoisUnavailable 四级WHOIS回退全部失败
	ErrWhoisUnavailable = errors.New("whois unavailable")
)
