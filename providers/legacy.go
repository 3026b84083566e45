/*
 * @Date: 2025-06-16 14:05:38
 * @Description: 传统WHOIS客户端 - 基于TCP端口43的原始文本协议
 */
package providers

import (
	"context"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"domainlens/pkg/logger"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const (
	// DefaultWhoisPort 传统WHOIS协议端口
	DefaultWhoisPort = "43"
	// defaultQueryTimeout 单次查询的连接和读取超时
	defaultQueryTimeout = 10 * time.Second
)

// LegacyClient 传统WHOIS查询客户端
type LegacyClient struct {
	timeout time.Duration
}

// NewLegacyClient 创建传统WHOIS客户端
func NewLegacyClient() *LegacyClient {
	return &LegacyClient{timeout: defaultQueryTimeout}
}

// QueryServer 向指定服务器发送WHOIS查询并收集完整响应
// 连接、超时、解码失败都在本层消化，返回ok=false，由编排器决定该层的去留
func (c *LegacyClient) QueryServer(ctx context.Context, query, server string) (string, bool) {
	lg := logger.FromContext(ctx, "LegacyWhois")

	// 服务器地址未带端口时补上43
	addr := server
	if _, _, err := net.SplitHostPort(server); err != nil {
		addr = net.JoinHostPort(server, DefaultWhoisPort)
	}

	dialer := &net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		lg.Debugf("连接WHOIS服务器失败: %s: %v", server, err)
		return "", false
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetDeadline(deadline)

	if _, err := conn.Write([]byte(query + "\r\n")); err != nil {
		lg.Debugf("发送查询失败: %s: %v", addr, err)
		return "", false
	}

	// 读取到对端关闭连接或超时为止
	var raw []byte
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			raw = append(raw, buf[:n]...)
		}
		if err != nil {
			break
		}
	}

	if len(raw) == 0 {
		return "", false
	}

	text := decodeWhoisBytes(raw)
	lg.Debugf("WHOIS服务器 %s 响应长度: %d 字节", server, len(raw))
	return text, true
}

// decodeWhoisBytes 按编码回退顺序解码响应字节
// 依次尝试 UTF-8、Latin-1、GBK，最后用UTF-8替换非法字节兜底，首个完整解码成功者生效
func decodeWhoisBytes(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	decoders := []encoding.Encoding{
		charmap.ISO8859_1,
		simplifiedchinese.GBK,
	}
	for _, enc := range decoders {
		if decoded, err := enc.NewDecoder().Bytes(raw); err == nil {
			return string(decoded)
		}
	}

	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
