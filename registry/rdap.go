/*
 * @Date: 2025-06-15 11:20:03
 * @Description: RDAP服务端点静态表
 */
package registry

// BootstrapRDAP 通用RDAP引导服务，始终作为最后一个候选端点
const BootstrapRDAP = "https://rdap.org/domain/"

// tldRDAPServers TLD到RDAP基础URL的映射
// 用于不支持传统WHOIS的新顶级域名，TLD专属条目优先于引导服务
var tldRDAPServers = map[string]string{
	// Google 域名
	"dev":  "https://rdap.nic.google/domain/",
	"app":  "https://rdap.nic.google/domain/",
	"page": "https://rdap.nic.google/domain/",
	"how":  "https://rdap.nic.google/domain/",
	"soy":  "https://rdap.nic.google/domain/",
	"new":  "https://rdap.nic.google/domain/",
	"day":  "https://rdap.nic.google/domain/",
	"foo":  "https://rdap.nic.google/domain/",

	// Donuts 域名
	"software": "https://rdap.donuts.co/rdap/domain/",
	"engineer": "https://rdap.donuts.co/rdap/domain/",
	"digital":  "https://rdap.donuts.co/rdap/domain/",
	"cloud":    "https://rdap.donuts.co/rdap/domain/",
	"agency":   "https://rdap.donuts.co/rdap/domain/",

	// 其他常见 RDAP
	"com":  "https://rdap.verisign.com/com/v1/domain/",
	"net":  "https://rdap.verisign.com/net/v1/domain/",
	"org":  "https://rdap.publicinterestregistry.org/rdap/domain/",
	"io":   "https://rdap.nic.io/domain/",
	"co":   "https://rdap.nic.co/domain/",
	"me":   "https://rdap.nic.me/domain/",
	"xyz":  "https://rdap.nic.xyz/domain/",
	"top":  "https://rdap.nic.top/domain/",
	"info": "https://rdap.afilias.net/rdap/info/domain/",
	"biz":  "https://rdap.nic.biz/domain/",
}
