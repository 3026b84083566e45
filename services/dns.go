/*
 * @Date: 2025-06-18 15:47:31
 * @Description: DNS解析服务 - 多记录类型并行查询与格式化
 */
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"domainlens/pkg/logger"
	"domainlens/types"

	"github.com/miekg/dns"
)

// SupportedRecordTypes 支持的记录类型，批量查询时严格按此顺序返回
var SupportedRecordTypes = []string{"A", "AAAA", "CNAME", "MX", "NS", "TXT", "SOA", "PTR", "SRV", "CAA"}

var recordTypeCodes = map[string]uint16{
	"A":     dns.TypeA,
	"AAAA":  dns.TypeAAAA,
	"CNAME": dns.TypeCNAME,
	"MX":    dns.TypeMX,
	"NS":    dns.TypeNS,
	"TXT":   dns.TypeTXT,
	"SOA":   dns.TypeSOA,
	"PTR":   dns.TypePTR,
	"SRV":   dns.TypeSRV,
	"CAA":   dns.TypeCAA,
}

const (
	// perQueryTimeout 单个记录类型的查询超时
	perQueryTimeout = 5 * time.Second
	// queryLifetime 整次DNS解析的总超时
	queryLifetime = 10 * time.Second
	// fallbackDNSServer 无配置且读不到resolv.conf时的兜底解析器
	fallbackDNSServer = "8.8.8.8:53"
)

// DNSService DNS记录解析服务
type DNSService struct {
	server string
	client *dns.Client
	pool   *WorkerPool
}

// NewDNSService 创建DNS解析服务
// server为空时依次回退到 /etc/resolv.conf 和公共DNS
func NewDNSService(server string, pool *WorkerPool) *DNSService {
	if server == "" {
		server = systemResolver()
	}
	if !strings.Contains(server, ":") {
		server = server + ":53"
	}
	return &DNSService{
		server: server,
		client: &dns.Client{Timeout: perQueryTimeout},
		pool:   pool,
	}
}

func systemResolver() string {
	if conf, err := dns.ClientConfigFromFile("/etc/resolv.conf"); err == nil && len(conf.Servers) > 0 {
		return conf.Servers[0] + ":" + conf.Port
	}
	return fallbackDNSServer
}

// Resolve 查询域名的DNS记录
// recordTypes为空时查询全部支持的类型；结果按固定类型顺序排列，
// 同类型内保持解析器返回顺序。任何类型遇到NXDOMAIN立即使整次调用失败
func (s *DNSService) Resolve(ctx context.Context, domain string, recordTypes []string) (*types.DNSResult, error) {
	queryTypes, err := normalizeRecordTypes(recordTypes)
	if err != nil {
		return nil, err
	}

	lg := logger.FromContext(ctx, "DNS")
	lg.Debugf("开始DNS查询: domain=%s types=%v server=%s", domain, queryTypes, s.server)

	ctx, cancel := context.WithTimeout(ctx, queryLifetime)
	defer cancel()

	// 各记录类型互不依赖，经工作池并行查询；结果按类型顺序的下标回填
	answers := make([][]types.DNSRecordEntry, len(queryTypes))
	failures := make([]error, len(queryTypes))

	var wg sync.WaitGroup
	for i, rtype := range queryTypes {
		i, rtype := i, rtype
		wg.Add(1)
		s.pool.Run(func() {
			defer wg.Done()
			answers[i], failures[i] = s.queryType(ctx, domain, rtype)
			if failures[i] != nil {
				// NXDOMAIN对整次调用是致命的，立即中止其余在途查询
				cancel()
			}
		})
	}
	wg.Wait()

	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}

	result := &types.DNSResult{
		Domain:    domain,
		Records:   []types.DNSRecordEntry{},
		QueryTime: time.Now().Format("2006-01-02 15:04:05"),
	}
	for _, entries := range answers {
		result.Records = append(result.Records, entries...)
	}

	lg.Debugf("DNS查询完成: domain=%s records=%d", domain, len(result.Records))
	return result, nil
}

// normalizeRecordTypes 校验请求的记录类型并归一化为固定的类型顺序
// 不支持的类型在任何网络调用之前快速失败
func normalizeRecordTypes(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return SupportedRecordTypes, nil
	}

	wanted := make(map[string]bool, len(requested))
	for _, t := range requested {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := recordTypeCodes[t]; !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedRecordType, t)
		}
		wanted[t] = true
	}
	if len(wanted) == 0 {
		return SupportedRecordTypes, nil
	}

	ordered := make([]string, 0, len(wanted))
	for _, t := range SupportedRecordTypes {
		if wanted[t] {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// queryType 查询单个记录类型
// 无答案、服务器失败、传输错误都静默跳过；只有NXDOMAIN作为错误上抛
func (s *DNSService) queryType(ctx context.Context, domain, rtype string) ([]types.DNSRecordEntry, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), recordTypeCodes[rtype])
	m.RecursionDesired = true

	resp, _, err := s.client.ExchangeContext(ctx, m, s.server)
	if err != nil {
		return nil, nil
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, fmt.Errorf("%w: %s", types.ErrDomainNotFound, domain)
	default:
		return nil, nil
	}

	var entries []types.DNSRecordEntry
	for _, rr := range resp.Answer {
		// CNAME跟链时答案里会混入中间记录，只保留请求的类型
		if rr.Header().Rrtype != recordTypeCodes[rtype] {
			continue
		}
		entries = append(entries, types.DNSRecordEntry{
			Type:  rtype,
			Name:  domain,
			Value: formatRecordValue(rtype, rr),
			TTL:   rr.Header().Ttl,
		})
	}
	return entries, nil
}

// formatRecordValue 按记录类型格式化记录值
func formatRecordValue(rtype string, rr dns.RR) string {
	switch record := rr.(type) {
	case *dns.A:
		return record.A.String()
	case *dns.AAAA:
		return record.AAAA.String()
	case *dns.CNAME:
		return trimDot(record.Target)
	case *dns.NS:
		return trimDot(record.Ns)
	case *dns.PTR:
		return trimDot(record.Ptr)
	case *dns.MX:
		return fmt.Sprintf("%d %s", record.Preference, trimDot(record.Mx))
	case *dns.SOA:
		return fmt.Sprintf("主NS: %s, 管理邮箱: %s, 序列号: %d",
			trimDot(record.Ns), trimDot(record.Mbox), record.Serial)
	case *dns.SRV:
		return fmt.Sprintf("%d %d %d %s",
			record.Priority, record.Weight, record.Port, trimDot(record.Target))
	case *dns.TXT:
		return strings.Join(record.Txt, "")
	default:
		// 其余类型（CAA等）取RR的规范文本表示，去掉头部前缀
		return strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String()))
	}
}

func trimDot(name string) string {
	return strings.TrimSuffix(name, ".")
}
