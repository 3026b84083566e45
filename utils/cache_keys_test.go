package utils

import (
	"strings"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"基本拼接", []string{"usage", "count", "1.2.3.4"}, "usage:count:1.2.3.4"},
		{"大小写和空格归一", []string{"Usage", "My Key"}, "usage:my_key"},
		{"URL归约为域名", []string{"dns", "https://Example.COM/path"}, "dns:example.com"},
		{"空输入", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildCacheKey(tt.parts...); got != tt.want {
				t.Errorf("BuildCacheKey(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestBuildCacheKeyBoundsLongParts(t *testing.T) {
	long := strings.Repeat("a", 200) + ".com"
	key := BuildCacheKey("whois", long)
	if len(key) > 6+80 {
		t.Errorf("key过长: %d字符", len(key))
	}

	// 两个前缀相同的超长片段不应映射到同一key
	other := strings.Repeat("a", 200) + ".org"
	if key == BuildCacheKey("whois", other) {
		t.Error("不同的超长片段截断后不应碰撞")
	}
}

func TestShortHash10(t *testing.T) {
	h := ShortHash10("example.com")
	if len(h) != 10 {
		t.Errorf("len = %d, want 10", len(h))
	}
	if h != ShortHash10("example.com") {
		t.Error("同一输入应得到相同哈希")
	}
	if h == ShortHash10("example.org") {
		t.Error("不同输入不应碰撞")
	}
}
