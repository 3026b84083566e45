/*
 * @Date: 2025-06-17 10:40:26
 * @Description: RDAP客户端与解析 - 基于HTTP+JSON的现代化WHOIS查询
 */
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"domainlens/pkg/logger"
	"domainlens/registry"
	"domainlens/types"
)

// RDAPResponse RDAP 协议的标准域名响应结构
type RDAPResponse struct {
	ObjectClassName string           `json:"objectClassName"`
	Handle          string           `json:"handle"`
	LDHName         string           `json:"ldhName"`
	UnicodeName     string           `json:"unicodeName,omitempty"`
	Entities        []RDAPEntity     `json:"entities,omitempty"`
	Status          []string         `json:"status,omitempty"`
	Events          []RDAPEvent      `json:"events,omitempty"`
	NameServers     []RDAPNameServer `json:"nameservers,omitempty"`
	SecureDNS       *RDAPSecureDNS   `json:"secureDNS,omitempty"`
	Port43          string           `json:"port43,omitempty"`
}

type RDAPEntity struct {
	ObjectClassName string         `json:"objectClassName"`
	Handle          string         `json:"handle"`
	Roles           []string       `json:"roles"`
	VCardArray      []any          `json:"vcardArray,omitempty"`
	PublicIDs       []RDAPPublicID `json:"publicIds,omitempty"`
	Entities        []RDAPEntity   `json:"entities,omitempty"`
}

type RDAPEvent struct {
	EventAction string `json:"eventAction"`
	EventDate   string `json:"eventDate"`
}

type RDAPNameServer struct {
	ObjectClassName string `json:"objectClassName"`
	LDHName         string `json:"ldhName"`
}

type RDAPSecureDNS struct {
	ZoneSigned       bool `json:"zoneSigned"`
	DelegationSigned bool `json:"delegationSigned"`
}

type RDAPPublicID struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// RDAPClient RDAP查询客户端
type RDAPClient struct {
	client *http.Client
	// endpoints 返回域名的候选端点列表，默认查静态注册表
	endpoints func(domain string) []string
}

// NewRDAPClient 创建RDAP客户端
func NewRDAPClient() *RDAPClient {
	return &RDAPClient{
		endpoints: registry.RDAPEndpoints,
		client: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   5 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
				IdleConnTimeout:       30 * time.Second,
			},
		},
	}
}

// Fetch 按优先级尝试候选RDAP端点，返回首个解析成功的JSON响应
// 404或其他任何错误只导致跳过该候选；全部失败返回nil
func (c *RDAPClient) Fetch(ctx context.Context, domain string) *RDAPResponse {
	lg := logger.FromContext(ctx, "RDAP")

	for i, base := range c.endpoints(domain) {
		rdapURL := base + url.QueryEscape(domain)
		lg.Debugf("RDAP查询候选 %d: %s", i+1, rdapURL)

		resp, err := c.fetchOne(ctx, rdapURL)
		if err != nil {
			lg.Debugf("RDAP候选 %d 失败: %v", i+1, err)
			continue
		}
		return resp
	}
	return nil
}

func (c *RDAPClient) fetchOne(ctx context.Context, rdapURL string) (*RDAPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rdapURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建RDAP请求失败: %w", err)
	}
	req.Header.Set("Accept", "application/rdap+json, application/json")
	req.Header.Set("User-Agent", "DomainLens/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RDAP请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("RDAP返回状态码 %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取RDAP响应失败: %w", err)
	}

	var rdapResp RDAPResponse
	if err := json.Unmarshal(body, &rdapResp); err != nil {
		return nil, fmt.Errorf("解析RDAP响应失败: %w", err)
	}
	return &rdapResp, nil
}

// ParseRDAP 从RDAP结构化响应提取统一的WHOIS字段
// 结构上缺失的字段保持"未知"状态，不产生错误
func ParseRDAP(rdap *RDAPResponse, domain string) *types.WhoisRecord {
	record := &types.WhoisRecord{
		Domain:      domain,
		StatusCodes: rdap.Status,
	}

	for _, entity := range rdap.Entities {
		if entityHasRole(entity.Roles, "registrar") && record.Registrar == "" {
			record.Registrar = registrarName(entity)
		}
		if entityHasRole(entity.Roles, "registrant") {
			fn, emails := registrantInfo(entity)
			if record.Registrant == "" {
				record.Registrant = fn
			}
			record.Emails = append(record.Emails, emails...)
		}
	}

	// 事件 -> 日期，每个字段首个匹配生效
	for _, event := range rdap.Events {
		switch strings.ToLower(event.EventAction) {
		case "registration":
			if record.CreationDate == "" {
				record.CreationDate = event.EventDate
			}
		case "expiration":
			if record.ExpirationDate == "" {
				record.ExpirationDate = event.EventDate
			}
		case "last changed", "last update of rdap database":
			if record.UpdatedDate == "" {
				record.UpdatedDate = event.EventDate
			}
		}
	}

	for _, ns := range rdap.NameServers {
		if ns.LDHName != "" {
			record.NameServers = append(record.NameServers, strings.ToLower(ns.LDHName))
		}
	}

	if rdap.SecureDNS != nil {
		if rdap.SecureDNS.DelegationSigned {
			record.DNSSEC = "signedDelegation"
		} else {
			record.DNSSEC = "unsigned"
		}
	}

	if raw, err := json.MarshalIndent(rdap, "", "  "); err == nil {
		record.RawText = string(raw)
	}

	return record
}

// registrarName 提取注册商名称：优先vCard的fn字段，其次用IANA注册商ID合成
func registrarName(entity RDAPEntity) string {
	if fn := vcardField(entity.VCardArray, "fn"); fn != "" {
		return fn
	}
	for _, pid := range entity.PublicIDs {
		if strings.EqualFold(pid.Type, "IANA Registrar ID") {
			return fmt.Sprintf("Registrar ID: %s", pid.Identifier)
		}
	}
	return ""
}

// registrantInfo 从注册人实体提取名称和邮箱
func registrantInfo(entity RDAPEntity) (string, []string) {
	fn := vcardField(entity.VCardArray, "fn")

	var emails []string
	if len(entity.VCardArray) > 1 {
		if properties, ok := entity.VCardArray[1].([]any); ok {
			for _, prop := range properties {
				propArray, ok := prop.([]any)
				if !ok || len(propArray) < 4 {
					continue
				}
				if name, _ := propArray[0].(string); name == "email" {
					if value, ok := propArray[3].(string); ok && value != "" {
						emails = append(emails, value)
					}
				}
			}
		}
	}
	return fn, emails
}

// vcardField 从jCard数组中取指定属性的值
func vcardField(vcard []any, field string) string {
	if len(vcard) < 2 {
		return ""
	}
	properties, ok := vcard[1].([]any)
	if !ok {
		return ""
	}
	for _, prop := range properties {
		propArray, ok := prop.([]any)
		if !ok || len(propArray) < 4 {
			continue
		}
		if name, _ := propArray[0].(string); name != field {
			continue
		}
		if value, ok := propArray[3].(string); ok {
			return value
		}
	}
	return ""
}

func entityHasRole(roles []string, target string) bool {
	for _, role := range roles {
		if strings.EqualFold(role, target) {
			return true
		}
	}
	return false
}
