/*
 * @Date: 2025-06-15 11:26:47
 * @Description: 域名权威服务器查找
 */
package registry

import "strings"

// WhoisServer 返回域名对应的传统WHOIS服务器
// 先用最后两级标签查二级后缀表（co.uk、com.cn等），再回退到TLD表
// 查不到不是错误，调用方继续下一级回退策略
func WhoisServer(domain string) (string, bool) {
	parts := strings.Split(domain, ".")

	if len(parts) >= 2 {
		suffix := strings.Join(parts[len(parts)-2:], ".")
		if server, ok := suffixWhoisServers[suffix]; ok {
			return server, true
		}
	}

	server, ok := tldWhoisServers[parts[len(parts)-1]]
	return server, ok
}

// RDAPEndpoints 返回域名的RDAP候选端点列表（按优先级排序）
// TLD专属端点在前，通用引导服务始终追加在最后
func RDAPEndpoints(domain string) []string {
	parts := strings.Split(domain, ".")
	tld := parts[len(parts)-1]

	endpoints := make([]string, 0, 2)
	if base, ok := tldRDAPServers[tld]; ok {
		endpoints = append(endpoints, base)
	}
	return append(endpoints, BootstrapRDAP)
}
