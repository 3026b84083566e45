/*
 * @Date: 2025-06-18 10:03:55
 * @Description: WHOIS解析编排器 - 四级回退状态机
 */
package services

import (
	"context"
	"fmt"

	"domainlens/pkg/logger"
	"domainlens/providers"
	"domainlens/registry"
	"domainlens/types"
	"domainlens/utils"
)

// tierStatus 单个回退层的结果标记
type tierStatus int

const (
	tierAccepted tierStatus = iota // 本层产出有效记录，短路返回
	tierSkipped                    // 本层不适用（如无权威服务器），继续下一层
	tierFailed                     // 本层尝试过但失败，继续下一层
)

// tierResult 回退层的带标记结果
type tierResult struct {
	status tierStatus
	record *types.WhoisRecord
	reason string
}

func accepted(record *types.WhoisRecord) tierResult { return tierResult{status: tierAccepted, record: record} }
func skipped(reason string) tierResult              { return tierResult{status: tierSkipped, reason: reason} }
func failed(reason string) tierResult               { return tierResult{status: tierFailed, reason: reason} }

// tier 一个回退策略：名称 + 执行函数
type tier struct {
	name string
	run  func(ctx context.Context, domain string) tierResult
}

// WhoisService WHOIS解析编排器
// 回退顺序固定不可配置：数据丰富度递减、TLD覆盖面递增
//  1. whois库高层查询
//  2. 权威服务器直连查询
//  3. IANA引荐查询
//  4. RDAP回退
type WhoisService struct {
	legacy     *providers.LegacyClient
	rdap       *providers.RDAPClient
	ianaServer string
	tiers      []tier
}

// NewWhoisService 创建WHOIS编排器
func NewWhoisService(legacy *providers.LegacyClient, rdap *providers.RDAPClient) *WhoisService {
	s := &WhoisService{
		legacy:     legacy,
		rdap:       rdap,
		ianaServer: providers.IANAServer,
	}
	s.tiers = []tier{
		{name: "library", run: s.libraryTier},
		{name: "whois", run: s.directTier},
		{name: "iana-referral", run: s.referralTier},
		{name: "rdap", run: s.rdapTier},
	}
	return s
}

// Resolve 依序尝试各回退层，返回首个被接受的记录
// 所有层都未接受时返回 ErrWhoisUnavailable
func (s *WhoisService) Resolve(ctx context.Context, domain string) (*types.WhoisRecord, error) {
	lg := logger.FromContext(ctx, "Whois")

	for _, t := range s.tiers {
		if ctx.Err() != nil {
			break
		}

		res := s.runTier(ctx, t, domain)
		switch res.status {
		case tierAccepted:
			lg.Infof("WHOIS查询成功: domain=%s tier=%s registrar=%s", domain, t.name, res.record.Registrar)
			res.record.Source = t.name
			return res.record, nil
		case tierSkipped:
			lg.Debugf("跳过回退层 %s: domain=%s %s", t.name, domain, res.reason)
		case tierFailed:
			lg.Debugf("回退层 %s 失败: domain=%s %s", t.name, domain, res.reason)
		}
	}

	return nil, fmt.Errorf("%w: %s", types.ErrWhoisUnavailable, domain)
}

// runTier 执行单个回退层，层内panic只算该层失败，不中断整次解析
func (s *WhoisService) runTier(ctx context.Context, t tier, domain string) (res tierResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx, "Whois").Warnf("回退层 %s 异常: %v", t.name, r)
			res = failed(fmt.Sprintf("panic: %v", r))
		}
	}()
	return t.run(ctx, domain)
}

// libraryTier 第一层：whois库高层查询，解析出域名字段才算接受
func (s *WhoisService) libraryTier(ctx context.Context, domain string) tierResult {
	record, ok := providers.LibraryLookup(ctx, domain)
	if !ok {
		return failed("库查询未返回有效记录")
	}
	return accepted(record)
}

// directTier 第二层：查静态表找权威服务器后直连查询
// 接受条件：响应不少于100字符且未命中"未注册"判定
func (s *WhoisService) directTier(ctx context.Context, domain string) tierResult {
	server, ok := registry.WhoisServer(domain)
	if !ok {
		return skipped("无已知权威WHOIS服务器")
	}
	return s.queryAndParse(ctx, domain, server)
}

// referralTier 第三层：向IANA查询裸TLD获取引荐服务器
// 引荐服务器与第二层相同则无需重复查询
func (s *WhoisService) referralTier(ctx context.Context, domain string) tierResult {
	referred := providers.DiscoverWhoisServerFrom(ctx, s.legacy, utils.TLD(domain), s.ianaServer)
	if referred == "" {
		return failed("IANA未返回whois引荐")
	}
	if direct, ok := registry.WhoisServer(domain); ok && referred == direct {
		return skipped("引荐服务器与直连层相同")
	}
	return s.queryAndParse(ctx, domain, referred)
}

// rdapTier 第四层：RDAP回退，取回可解析的JSON即算接受
// RDAP没有类似原始文本的"未注册"启发式，空记录也视为成功
func (s *WhoisService) rdapTier(ctx context.Context, domain string) tierResult {
	rdapResp := s.rdap.Fetch(ctx, domain)
	if rdapResp == nil {
		return failed("所有RDAP端点均失败")
	}
	return accepted(providers.ParseRDAP(rdapResp, domain))
}

// queryAndParse 第二、三层共用的查询+判定+解析流程
func (s *WhoisService) queryAndParse(ctx context.Context, domain, server string) tierResult {
	raw, ok := s.legacy.QueryServer(ctx, domain, server)
	if !ok {
		return failed(fmt.Sprintf("查询 %s 失败", server))
	}
	if providers.IsNotFound(raw) {
		return failed(fmt.Sprintf("%s 返回无效或未注册响应", server))
	}
	return accepted(providers.ParseWhoisText(raw, domain))
}
