package registry

import "testing"

func TestWhoisServerTLDLookup(t *testing.T) {
	server, ok := WhoisServer("example.com")
	if !ok || server != "whois.verisign-grs.com" {
		t.Errorf("WhoisServer(example.com) = %q, %v", server, ok)
	}
}

// 二级后缀表优先于TLD表
func TestWhoisServerSuffixPriority(t *testing.T) {
	server, ok := WhoisServer("example.co.uk")
	if !ok || server != "whois.nic.uk" {
		t.Errorf("WhoisServer(example.co.uk) = %q, %v", server, ok)
	}

	server, ok = WhoisServer("example.com.cn")
	if !ok || server != "whois.cnnic.cn" {
		t.Errorf("WhoisServer(example.com.cn) = %q, %v", server, ok)
	}
}

func TestWhoisServerUnknownTLD(t *testing.T) {
	if server, ok := WhoisServer("example.unknowntld"); ok {
		t.Errorf("未知TLD不应返回服务器: %q", server)
	}
}

func TestRDAPEndpointsKnownTLD(t *testing.T) {
	endpoints := RDAPEndpoints("example.com")
	if len(endpoints) != 2 {
		t.Fatalf("endpoints = %v", endpoints)
	}
	if endpoints[0] != "https://rdap.verisign.com/com/v1/domain/" {
		t.Errorf("endpoints[0] = %q", endpoints[0])
	}
	if endpoints[1] != BootstrapRDAP {
		t.Errorf("endpoints[1] = %q, 引导服务应始终殿后", endpoints[1])
	}
}

// 未知TLD只剩通用引导服务
func TestRDAPEndpointsUnknownTLD(t *testing.T) {
	endpoints := RDAPEndpoints("example.unknowntld")
	if len(endpoints) != 1 || endpoints[0] != BootstrapRDAP {
		t.Errorf("endpoints = %v", endpoints)
	}
}
