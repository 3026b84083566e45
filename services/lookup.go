/*
 * @Date: 2025-06-19 09:22:14
 * @Description: 聚合查询服务 - WHOIS与DNS并行查询
 */
package services

import (
	"context"

	"domainlens/pkg/logger"
	"domainlens/types"
)

// LookupService 单域名聚合查询
type LookupService struct {
	whois *WhoisService
	dns   *DNSService
}

// NewLookupService 创建聚合查询服务
func NewLookupService(whois *WhoisService, dns *DNSService) *LookupService {
	return &LookupService{whois: whois, dns: dns}
}

type whoisOutcome struct {
	record *types.WhoisRecord
	err    error
}

type dnsOutcome struct {
	result *types.DNSResult
	err    error
}

// Lookup 并行执行WHOIS解析与全类型DNS查询
// DNS失败使整次调用失败；WHOIS失败降级为结果内的错误负载，不影响DNS部分
func (s *LookupService) Lookup(ctx context.Context, domain string) (*types.LookupResult, error) {
	whoisCh := make(chan whoisOutcome, 1)
	dnsCh := make(chan dnsOutcome, 1)

	go func() {
		record, err := s.whois.Resolve(ctx, domain)
		whoisCh <- whoisOutcome{record: record, err: err}
	}()
	go func() {
		result, err := s.dns.Resolve(ctx, domain, nil)
		dnsCh <- dnsOutcome{result: result, err: err}
	}()

	whoisOut := <-whoisCh
	dnsOut := <-dnsCh

	if dnsOut.err != nil {
		return nil, dnsOut.err
	}

	result := &types.LookupResult{DNS: dnsOut.result}
	if whoisOut.err != nil {
		logger.FromContext(ctx, "LOOKUP").Warnf("WHOIS部分失败，降级返回: domain=%s err=%v", domain, whoisOut.err)
		result.Whois = &types.WhoisError{Domain: domain, Error: whoisOut.err.Error()}
	} else {
		result.Whois = whoisOut.record
	}
	return result, nil
}
