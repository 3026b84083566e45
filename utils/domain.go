/*
 * @Date: 2025-06-15 10:12:44
 * @Description: 域名规范化与校验
 */
package utils

import (
	"fmt"
	"regexp"
	"strings"

	"domainlens/types"
)

// 标签由字母数字和连字符组成（首尾不能是连字符），最后一级标签至少两个字母
var domainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}$`)

// NormalizeDomain 清理并校验用户输入的域名
// 依次去掉协议前缀、路径、端口，转小写后按域名语法校验
// 对已规范化的输入是幂等的
func NormalizeDomain(raw string) (string, error) {
	domain := strings.TrimSpace(raw)

	lower := strings.ToLower(domain)
	if strings.HasPrefix(lower, "http://") {
		domain = domain[len("http://"):]
	} else if strings.HasPrefix(lower, "https://") {
		domain = domain[len("https://"):]
	}

	if idx := strings.Index(domain, "/"); idx != -1 {
		domain = domain[:idx]
	}
	if idx := strings.Index(domain, ":"); idx != -1 {
		domain = domain[:idx]
	}

	domain = strings.ToLower(strings.TrimSpace(domain))

	if domain == "" {
		return "", fmt.Errorf("%w: 域名不能为空", types.ErrInvalidDomain)
	}
	if !domainPattern.MatchString(domain) {
		return "", fmt.Errorf("%w: %s", types.ErrInvalidDomain, raw)
	}

	return domain, nil
}

// TLD 取域名最后一级标签
func TLD(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}
