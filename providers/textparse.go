/*
 * @Date: 2025-06-16 15:22:10
 * @Description: WHOIS原始文本解析 - 按模式表容错提取字段
 */
package providers

import (
	"regexp"
	"strings"

	"domainlens/types"
)

// 各注册局的响应格式五花八门，单值字段按模式表顺序逐行匹配，首个命中者生效
var (
	registrarPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Registrar:\s*(.+)`),
		regexp.MustCompile(`(?i)Sponsoring Registrar:\s*(.+)`),
		regexp.MustCompile(`(?i)Registrar Name:\s*(.+)`),
	}
	registrantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Registrant Organization:\s*(.+)`),
		regexp.MustCompile(`(?i)Registrant:\s*(.+)`),
		regexp.MustCompile(`(?i)Registrant Name:\s*(.+)`),
		regexp.MustCompile(`(?i)org:\s*(.+)`),
	}
	creationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Creation Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Created Date:\s*(.+)`),
		regexp.MustCompile(`(?i)created:\s*(.+)`),
		regexp.MustCompile(`(?i)Registration Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Domain Registration Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Created On:\s*(.+)`),
	}
	expirationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Expir.*Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Registry Expiry Date:\s*(.+)`),
		regexp.MustCompile(`(?i)expires:\s*(.+)`),
		regexp.MustCompile(`(?i)paid-till:\s*(.+)`),
	}
	updatedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Updated Date:\s*(.+)`),
		regexp.MustCompile(`(?i)Last Updated:\s*(.+)`),
		regexp.MustCompile(`(?i)modified:\s*(.+)`),
		regexp.MustCompile(`(?i)last-update:\s*(.+)`),
		regexp.MustCompile(`(?i)Last Modified:\s*(.+)`),
	}
	nameServerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Name Server:\s*(.+)`),
		regexp.MustCompile(`(?i)nserver:\s*(.+)`),
		regexp.MustCompile(`(?i)nameserver:\s*(.+)`),
		regexp.MustCompile(`(?i)DNS:\s*(.+)`),
	}
	statusPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Domain Status:\s*(.+)`),
		regexp.MustCompile(`(?i)Status:\s*(.+)`),
	}
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// notFoundIndicators 注册局表示"域名不存在"的惯用措辞
var notFoundIndicators = []string{
	"no match",
	"not found",
	"no data found",
	"no entries found",
	"domain not found",
	"no information",
	"status: free",
}

// minUsableLength 短于此长度的响应一律视为无效数据
const minUsableLength = 100

// maxEmails 邮箱最多保留前5个
const maxEmails = 5

// IsNotFound 判断WHOIS原始文本是否为权威的"未注册"响应
// 不足100字符的响应无论内容如何都视为信息不足
func IsNotFound(rawText string) bool {
	if len(rawText) < minUsableLength {
		return true
	}
	lower := strings.ToLower(rawText)
	for _, indicator := range notFoundIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// ParseWhoisText 从WHOIS原始文本提取结构化字段
// 跳过空行和 % / # 开头的注册局注释行；单值字段首次匹配生效，后续同字段行忽略
func ParseWhoisText(rawText, domain string) *types.WhoisRecord {
	record := &types.WhoisRecord{
		Domain:  domain,
		RawText: rawText,
	}
	if rawText == "" {
		return record
	}

	seenNS := make(map[string]bool)
	seenStatus := make(map[string]bool)

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}

		if record.Registrar == "" {
			record.Registrar = matchFirst(registrarPatterns, line)
		}
		if record.Registrant == "" {
			record.Registrant = matchFirst(registrantPatterns, line)
		}
		if record.CreationDate == "" {
			record.CreationDate = matchFirst(creationPatterns, line)
		}
		if record.ExpirationDate == "" {
			record.ExpirationDate = matchFirst(expirationPatterns, line)
		}
		if record.UpdatedDate == "" {
			record.UpdatedDate = matchFirst(updatedPatterns, line)
		}

		// 域名服务器和状态是多值字段：每个匹配行都收集，按首见顺序去重
		if ns := matchFirst(nameServerPatterns, line); ns != "" {
			ns = strings.ToLower(ns)
			if !seenNS[ns] {
				seenNS[ns] = true
				record.NameServers = append(record.NameServers, ns)
			}
		}
		if status := matchFirst(statusPatterns, line); status != "" {
			if !seenStatus[status] {
				seenStatus[status] = true
				record.StatusCodes = append(record.StatusCodes, status)
			}
		}
	}

	record.Emails = extractEmails(rawText)

	return record
}

// matchFirst 按模式表顺序匹配一行，返回首个命中模式的捕获值
func matchFirst(patterns []*regexp.Regexp, line string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractEmails 对全文做一次邮箱提取，按出现顺序去重并截断为前5个
func extractEmails(rawText string) []string {
	matches := emailPattern.FindAllString(rawText, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	var emails []string
	for _, email := range matches {
		if seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
		if len(emails) == maxEmails {
			break
		}
	}
	return emails
}
