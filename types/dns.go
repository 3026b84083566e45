/*
 * @Date: 2025-06-14 21:46:30
 * @Description: DNS查询类型定义
 */
package types

// DNSRecordEntry 单条DNS记录
type DNSRecordEntry struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	TTL   uint32 `json:"ttl,omitempty"`
}

// DNSResult DNS查询响应
// Records 的顺序保证：按查询的记录类型顺序，同类型内按解析器返回顺序
type DNSResult struct {
	Domain    string           `json:"domain"`
	Records   []DNSRecordEntry `json:"records"`
	QueryTime string           `json:"queryTime"`
}

// LookupResult 综合查询结果
// Whois 为 *WhoisRecord 或 *WhoisError：WHOIS失败降级为错误负载，不影响整体成功
type LookupResult struct {
	DNS   *DNSResult `json:"dns"`
	Whois any        `json:"whois"`
}
