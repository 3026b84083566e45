/*
 * @Date: 2025-06-17 14:36:40
 * @Description: 高层WHOIS查询 - 基于likexian/whois库与结构化解析
 */
package providers

import (
	"context"
	"strings"

	"domainlens/pkg/logger"
	"domainlens/types"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// LibraryLookup 用现成的WHOIS客户端库做一次高层查询并结构化解析
// 库内部自带服务器发现和引荐跟踪；解析结果中域名字段非空才算有效
// 库不支持context，这里用goroutine桥接以便调用方超时能及时中断等待
func LibraryLookup(ctx context.Context, domain string) (*types.WhoisRecord, bool) {
	lg := logger.FromContext(ctx, "WhoisLib")

	type result struct {
		record *types.WhoisRecord
		ok     bool
	}
	ch := make(chan result, 1)

	go func() {
		raw, err := whois.Whois(domain)
		if err != nil {
			lg.Debugf("whois库查询失败: %s: %v", domain, err)
			ch <- result{nil, false}
			return
		}

		info, err := whoisparser.Parse(raw)
		if err != nil {
			lg.Debugf("whois库解析失败: %s: %v", domain, err)
			ch <- result{nil, false}
			return
		}
		if info.Domain == nil || info.Domain.Domain == "" {
			ch <- result{nil, false}
			return
		}

		ch <- result{convertParsedWhois(&info, domain, raw), true}
	}()

	select {
	case <-ctx.Done():
		return nil, false
	case res := <-ch:
		return res.record, res.ok
	}
}

// convertParsedWhois 将库的解析结果映射为统一的WhoisRecord
func convertParsedWhois(info *whoisparser.WhoisInfo, domain, raw string) *types.WhoisRecord {
	record := &types.WhoisRecord{
		Domain:  domain,
		RawText: raw,
	}

	if d := info.Domain; d != nil {
		record.CreationDate = d.CreatedDate
		record.ExpirationDate = d.ExpirationDate
		record.UpdatedDate = d.UpdatedDate
		record.StatusCodes = d.Status
		for _, ns := range d.NameServers {
			record.NameServers = append(record.NameServers, strings.ToLower(ns))
		}
		if d.DNSSec {
			record.DNSSEC = "signedDelegation"
		}
	}

	if r := info.Registrar; r != nil {
		record.Registrar = r.Name
	}

	if r := info.Registrant; r != nil {
		if r.Organization != "" {
			record.Registrant = r.Organization
		} else {
			record.Registrant = r.Name
		}
		if r.Email != "" {
			record.Emails = append(record.Emails, r.Email)
		}
		record.CountryCode = r.Country
	}

	return record
}
