package services

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"domainlens/types"

	"github.com/miekg/dns"
)

// startMockDNSServer 启动内存中的UDP DNS服务器
func startMockDNSServer(t *testing.T, handler dns.Handler) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("启动模拟DNS服务器失败: %v", err)
	}

	srv := &dns.Server{PacketConn: pc, Handler: handler}
	go srv.ActivateAndServe()
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

func newTestPool(t *testing.T) *WorkerPool {
	t.Helper()
	pool := NewWorkerPool(4)
	pool.Start()
	t.Cleanup(pool.Stop)
	return pool
}

// answeringHandler 按请求类型返回固定应答的处理器
func answeringHandler() dns.Handler {
	return dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)

		q := r.Question[0]
		hdr := dns.RR_Header{Name: q.Name, Rrtype: q.Qtype, Class: dns.ClassINET, Ttl: 300}
		switch q.Qtype {
		case dns.TypeA:
			m.Answer = append(m.Answer, &dns.A{Hdr: hdr, A: net.ParseIP("93.184.216.34")})
		case dns.TypeMX:
			m.Answer = append(m.Answer, &dns.MX{Hdr: hdr, Preference: 10, Mx: "mail.example.com."})
		case dns.TypeSOA:
			m.Answer = append(m.Answer, &dns.SOA{
				Hdr: hdr, Ns: "ns1.example.com.", Mbox: "hostmaster.example.com.",
				Serial: 2025082601, Refresh: 7200, Retry: 3600, Expire: 1209600, Minttl: 3600,
			})
		}
		w.WriteMsg(m)
	})
}

func TestResolveUnsupportedTypeFailsFast(t *testing.T) {
	// 指向不存在的服务器：校验必须发生在任何网络调用之前
	svc := NewDNSService("127.0.0.1:1", newTestPool(t))

	_, err := svc.Resolve(context.Background(), "example.com", []string{"FOO"})
	if !errors.Is(err, types.ErrUnsupportedRecordType) {
		t.Errorf("err = %v, want ErrUnsupportedRecordType", err)
	}
}

func TestResolveSingleType(t *testing.T) {
	addr := startMockDNSServer(t, answeringHandler())
	svc := NewDNSService(addr, newTestPool(t))

	result, err := svc.Resolve(context.Background(), "example.com", []string{"A"})
	if err != nil {
		t.Fatalf("Resolve失败: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("Records = %v", result.Records)
	}
	rec := result.Records[0]
	if rec.Type != "A" || rec.Value != "93.184.216.34" || rec.TTL != 300 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Name != "example.com" {
		t.Errorf("Name = %q", rec.Name)
	}
}

// 请求顺序不影响结果顺序：始终按固定类型顺序排列
func TestResolveFixedTypeOrder(t *testing.T) {
	addr := startMockDNSServer(t, answeringHandler())
	svc := NewDNSService(addr, newTestPool(t))

	result, err := svc.Resolve(context.Background(), "example.com", []string{"MX", "A"})
	if err != nil {
		t.Fatalf("Resolve失败: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("Records = %v", result.Records)
	}
	if result.Records[0].Type != "A" || result.Records[1].Type != "MX" {
		t.Errorf("类型顺序错误: %s, %s", result.Records[0].Type, result.Records[1].Type)
	}
	if result.Records[1].Value != "10 mail.example.com" {
		t.Errorf("MX格式错误: %q", result.Records[1].Value)
	}
}

// nxdomainHandler 对任何问题都应答NXDOMAIN
func nxdomainHandler() dns.Handler {
	return dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetRcode(r, dns.RcodeNameError)
		w.WriteMsg(m)
	})
}

// 任一类型NXDOMAIN使整次调用失败
func TestResolveNXDomain(t *testing.T) {
	addr := startMockDNSServer(t, nxdomainHandler())
	svc := NewDNSService(addr, newTestPool(t))

	_, err := svc.Resolve(context.Background(), "nonexistent-domain.example", []string{"A"})
	if !errors.Is(err, types.ErrDomainNotFound) {
		t.Errorf("err = %v, want ErrDomainNotFound", err)
	}
}

// SERVFAIL和空答案都静默跳过，不产生错误
func TestResolveSkipsServerFailures(t *testing.T) {
	handler := dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		if r.Question[0].Qtype == dns.TypeA {
			m.SetRcode(r, dns.RcodeServerFailure)
		} else {
			m.SetReply(r)
		}
		w.WriteMsg(m)
	})
	addr := startMockDNSServer(t, handler)
	svc := NewDNSService(addr, newTestPool(t))

	result, err := svc.Resolve(context.Background(), "example.com", []string{"A", "TXT"})
	if err != nil {
		t.Fatalf("Resolve失败: %v", err)
	}
	if len(result.Records) != 0 {
		t.Errorf("Records = %v, want空", result.Records)
	}
	if result.QueryTime == "" {
		t.Error("QueryTime应有值")
	}
}

func TestNormalizeRecordTypes(t *testing.T) {
	got, err := normalizeRecordTypes([]string{" mx ", "a", "MX"})
	if err != nil {
		t.Fatalf("normalizeRecordTypes失败: %v", err)
	}
	if len(got) != 2 || got[0] != "A" || got[1] != "MX" {
		t.Errorf("got = %v", got)
	}

	all, err := normalizeRecordTypes(nil)
	if err != nil || len(all) != len(SupportedRecordTypes) {
		t.Errorf("空请求应返回全部支持的类型: %v, %v", all, err)
	}
}

func TestFormatRecordValue(t *testing.T) {
	hdr := dns.RR_Header{Name: "example.com.", Class: dns.ClassINET, Ttl: 300}

	tests := []struct {
		name string
		typ  string
		rr   dns.RR
		want string
	}{
		{"A", "A", &dns.A{Hdr: hdr, A: net.ParseIP("1.2.3.4")}, "1.2.3.4"},
		{"CNAME去尾点", "CNAME", &dns.CNAME{Hdr: hdr, Target: "alias.example.com."}, "alias.example.com"},
		{"MX带优先级", "MX", &dns.MX{Hdr: hdr, Preference: 10, Mx: "mail.example.com."}, "10 mail.example.com"},
		{"SRV四元组", "SRV", &dns.SRV{Hdr: hdr, Priority: 5, Weight: 10, Port: 443, Target: "svc.example.com."}, "5 10 443 svc.example.com"},
		{"TXT拼接分段", "TXT", &dns.TXT{Hdr: hdr, Txt: []string{"v=spf1 ", "-all"}}, "v=spf1 -all"},
		{
			"SOA摘要",
			"SOA",
			&dns.SOA{Hdr: hdr, Ns: "ns1.example.com.", Mbox: "hostmaster.example.com.", Serial: 42},
			"主NS: ns1.example.com, 管理邮箱: hostmaster.example.com, 序列号: 42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRecordValue(tt.typ, tt.rr); got != tt.want {
				t.Errorf("formatRecordValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveHonorsContextTimeout(t *testing.T) {
	// 不应答的服务器：依赖context超时而非永久阻塞
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer pc.Close()

	svc := NewDNSService(pc.LocalAddr().String(), newTestPool(t))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	result, err := svc.Resolve(ctx, "example.com", []string{"A"})
	if time.Since(start) > 3*time.Second {
		t.Error("超时未生效")
	}
	// 传输层失败静默跳过，应返回空结果而非错误
	if err != nil {
		t.Errorf("err = %v", err)
	}
	if result != nil && len(result.Records) != 0 {
		t.Errorf("Records = %v", result.Records)
	}
}
