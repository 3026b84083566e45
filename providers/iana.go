/*
 * @Date: 2025-06-17 11:18:52
 * @Description: IANA引荐查询 - 从whois.iana.org发现TLD的权威WHOIS服务器
 */
package providers

import (
	"context"
	"regexp"
	"strings"

	"domainlens/pkg/logger"
)

// IANAServer IANA根WHOIS服务器，任何TLD都可以在这里查到权威服务器引荐
const IANAServer = "whois.iana.org"

var referralPattern = regexp.MustCompile(`(?i)whois:\s*(\S+)`)

// DiscoverWhoisServer 查询IANA获取TLD的权威WHOIS服务器
// 在响应中扫描 "whois: <hostname>" 引荐行，未找到返回空串
func DiscoverWhoisServer(ctx context.Context, client *LegacyClient, tld string) string {
	return DiscoverWhoisServerFrom(ctx, client, tld, IANAServer)
}

// DiscoverWhoisServerFrom 与DiscoverWhoisServer相同，但向指定的引荐服务器查询
func DiscoverWhoisServerFrom(ctx context.Context, client *LegacyClient, tld, ianaServer string) string {
	lg := logger.FromContext(ctx, "IANA")

	raw, ok := client.QueryServer(ctx, tld, ianaServer)
	if !ok {
		lg.Debugf("查询IANA失败: tld=%s", tld)
		return ""
	}

	m := referralPattern.FindStringSubmatch(raw)
	if m == nil {
		lg.Debugf("IANA响应中未找到whois引荐: tld=%s", tld)
		return ""
	}

	server := strings.TrimSpace(m[1])
	lg.Debugf("IANA引荐WHOIS服务器: tld=%s server=%s", tld, server)
	return server
}
