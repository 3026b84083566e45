package utils

import (
	"errors"
	"testing"

	"domainlens/types"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"纯域名", "example.com", "example.com"},
		{"大写转小写", "EXAMPLE.COM", "example.com"},
		{"去掉http前缀", "http://example.com", "example.com"},
		{"去掉https前缀和路径", "https://example.com/path/page?q=1", "example.com"},
		{"去掉端口", "example.com:8080", "example.com"},
		{"去掉首尾空白", "  example.com  ", "example.com"},
		{"多级子域名", "a.b.example.co.uk", "a.b.example.co.uk"},
		{"标签内连字符", "my-domain.com", "my-domain.com"},
		{"中文域名转码后", "xn--fiq228c.cn", "xn--fiq228c.cn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDomain(tt.input)
			if err != nil {
				t.Fatalf("NormalizeDomain(%q)失败: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// 规范化后的输出再次规范化应保持不变
func TestNormalizeDomainIdempotent(t *testing.T) {
	inputs := []string{"https://EXAMPLE.com/page", "sub.example.co.uk", "example.com:443"}
	for _, input := range inputs {
		first, err := NormalizeDomain(input)
		if err != nil {
			t.Fatalf("NormalizeDomain(%q)失败: %v", input, err)
		}
		second, err := NormalizeDomain(first)
		if err != nil {
			t.Fatalf("再次规范化%q失败: %v", first, err)
		}
		if first != second {
			t.Errorf("非幂等: %q -> %q -> %q", input, first, second)
		}
	}
}

func TestNormalizeDomainRejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a domain",
		"-bad.com",
		"bad-.com",
		"example",
		"example.c0m1",
		"exam ple.com",
	}
	for _, input := range inputs {
		if _, err := NormalizeDomain(input); err == nil {
			t.Errorf("NormalizeDomain(%q)应返回错误", input)
		} else if !errors.Is(err, types.ErrInvalidDomain) {
			t.Errorf("NormalizeDomain(%q)错误类型 = %v, want ErrInvalidDomain", input, err)
		}
	}
}

func TestTLD(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"example.com", "com"},
		{"a.b.example.co.uk", "uk"},
		{"localhost", ""},
	}
	for _, tt := range tests {
		if got := TLD(tt.domain); got != tt.want {
			t.Errorf("TLD(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}
