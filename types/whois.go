/*
 * @Date: 2025-06-14 21:40:12
 * @Description: WHOIS查询类型定义
 */
package types

// WhoisRecord 统一的WHOIS查询结果
// 所有可选字段的零值表示"未知"，不使用空字符串占位
type WhoisRecord struct {
	Domain         string   `json:"domain"`
	Registrar      string   `json:"registrar,omitempty"`
	Registrant     string   `json:"registrant,omitempty"`
	CreationDate   string   `json:"creationDate,omitempty"`
	ExpirationDate string   `json:"expirationDate,omitempty"`
	UpdatedDate    string   `json:"updatedDate,omitempty"`
	NameServers    []string `json:"nameServers,omitempty"`
	StatusCodes    []string `json:"status,omitempty"`
	DNSSEC         string   `json:"dnssec,omitempty"`
	Emails         []string `json:"emails,omitempty"`
	CountryCode    string   `json:"country,omitempty"`
	RawText        string   `json:"rawText,omitempty"`
	Source         string   `json:"sourceProvider,omitempty"` // 产生结果的查询层（library/whois/iana-referral/rdap）
}

// WhoisError WHOIS查询失败时嵌入综合查询结果的错误负载
type WhoisError struct {
	Domain string `json:"domain"`
	Error  string `json:"error"`
}
