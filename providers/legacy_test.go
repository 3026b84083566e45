package providers

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"
)

// startMockWhoisServer 启动单次应答的模拟WHOIS服务器
// 读取一行查询后返回固定响应并关闭连接
func startMockWhoisServer(t *testing.T, response []byte) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("启动模拟服务器失败: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				_, _ = bufio.NewReader(c).ReadString('\n')
				_, _ = c.Write(response)
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func TestQueryServerReadsFullResponse(t *testing.T) {
	response := []byte("Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar LLC\n")
	addr := startMockWhoisServer(t, response)

	client := NewLegacyClient()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	text, ok := client.QueryServer(ctx, "example.com", addr)
	if !ok {
		t.Fatal("QueryServer应成功")
	}
	if text != string(response) {
		t.Errorf("响应不完整: %q", text)
	}
}

func TestQueryServerConnectFailure(t *testing.T) {
	client := NewLegacyClient()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// 占用端口后立即关闭，确保无人监听
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	if _, ok := client.QueryServer(ctx, "example.com", addr); ok {
		t.Error("连接失败时应返回ok=false")
	}
}

// 非UTF-8响应按编码回退链解码，不应出现替换字符
func TestQueryServerDecodesLatin1(t *testing.T) {
	// "Responsable: Méxican Registrar" 的Latin-1字节，0xE9=é
	response := []byte("Responsable: M\xe9xican Registrar\n")
	addr := startMockWhoisServer(t, response)

	client := NewLegacyClient()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	text, ok := client.QueryServer(ctx, "example.mx", addr)
	if !ok {
		t.Fatal("QueryServer应成功")
	}
	if !strings.Contains(text, "Méxican") {
		t.Errorf("Latin-1解码失败: %q", text)
	}
	if strings.ContainsRune(text, '�') {
		t.Errorf("响应中不应出现替换字符: %q", text)
	}
}

func TestDecodeWhoisBytes(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"合法UTF-8原样返回", []byte("Registrar: 示例注册商"), "Registrar: 示例注册商"},
		{"Latin-1回退", []byte("caf\xe9"), "café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeWhoisBytes(tt.raw); got != tt.want {
				t.Errorf("decodeWhoisBytes() = %q, want %q", got, tt.want)
			}
		})
	}
}
