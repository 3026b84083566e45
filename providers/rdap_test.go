package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchOneStatusHandling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/domain/missing.com":
			w.WriteHeader(404)
		case "/domain/example.com":
			w.Header().Set("Content-Type", "application/rdap+json")
			w.Write([]byte(`{"objectClassName":"domain","ldhName":"EXAMPLE.COM"}`))
		default:
			w.WriteHeader(500)
		}
	}))
	defer srv.Close()

	client := NewRDAPClient()
	ctx := context.Background()

	// 404应作为错误返回，由调用方跳过该候选
	if _, err := client.fetchOne(ctx, srv.URL+"/domain/missing.com"); err == nil {
		t.Error("404应返回错误")
	}

	resp, err := client.fetchOne(ctx, srv.URL+"/domain/example.com")
	if err != nil {
		t.Fatalf("fetchOne失败: %v", err)
	}
	if resp.LDHName != "EXAMPLE.COM" {
		t.Errorf("LDHName = %q", resp.LDHName)
	}
}

// 候选端点按顺序尝试，失败的候选被跳过，首个成功者生效
func TestFetchFallsThroughFailingCandidates(t *testing.T) {
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		switch {
		case strings.HasPrefix(r.URL.Path, "/tld/"):
			w.WriteHeader(404)
		case strings.HasPrefix(r.URL.Path, "/bootstrap/"):
			w.Write([]byte(`{"objectClassName":"domain","ldhName":"example.com"}`))
		default:
			w.WriteHeader(500)
		}
	}))
	defer srv.Close()

	client := NewRDAPClient()
	client.endpoints = func(domain string) []string {
		return []string{srv.URL + "/tld/", srv.URL + "/bootstrap/"}
	}

	resp := client.Fetch(context.Background(), "example.com")
	if resp == nil {
		t.Fatal("Fetch应从第二个候选取回响应")
	}
	if resp.LDHName != "example.com" {
		t.Errorf("LDHName = %q", resp.LDHName)
	}
	want := []string{"/tld/example.com", "/bootstrap/example.com"}
	if len(hits) != 2 || hits[0] != want[0] || hits[1] != want[1] {
		t.Errorf("候选访问顺序 = %v, want %v", hits, want)
	}
}

// 所有候选都失败时返回nil
func TestFetchAllCandidatesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	client := NewRDAPClient()
	client.endpoints = func(domain string) []string {
		return []string{srv.URL + "/a/", srv.URL + "/b/"}
	}

	if resp := client.Fetch(context.Background(), "example.com"); resp != nil {
		t.Errorf("全部候选失败应返回nil, got %+v", resp)
	}
}

func TestFetchOneMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewRDAPClient()
	if _, err := client.fetchOne(context.Background(), srv.URL); err == nil {
		t.Error("JSON解析失败应返回错误")
	}
}

func TestParseRDAPFullResponse(t *testing.T) {
	rdap := &RDAPResponse{
		ObjectClassName: "domain",
		LDHName:         "EXAMPLE.COM",
		Status:          []string{"client delete prohibited"},
		Entities: []RDAPEntity{
			{
				Roles: []string{"registrar"},
				VCardArray: []any{
					"vcard",
					[]any{
						[]any{"version", map[string]any{}, "text", "4.0"},
						[]any{"fn", map[string]any{}, "text", "Example Registrar LLC"},
					},
				},
			},
			{
				Roles: []string{"registrant"},
				VCardArray: []any{
					"vcard",
					[]any{
						[]any{"fn", map[string]any{}, "text", "Example Org"},
						[]any{"email", map[string]any{}, "text", "admin@example.com"},
					},
				},
			},
		},
		Events: []RDAPEvent{
			{EventAction: "registration", EventDate: "1995-08-14T04:00:00Z"},
			{EventAction: "expiration", EventDate: "2026-08-13T04:00:00Z"},
			{EventAction: "last changed", EventDate: "2025-08-14T07:01:44Z"},
		},
		NameServers: []RDAPNameServer{
			{LDHName: "A.IANA-SERVERS.NET"},
			{LDHName: "B.IANA-SERVERS.NET"},
		},
		SecureDNS: &RDAPSecureDNS{DelegationSigned: true},
	}

	record := ParseRDAP(rdap, "example.com")

	if record.Registrar != "Example Registrar LLC" {
		t.Errorf("Registrar = %q", record.Registrar)
	}
	if record.Registrant != "Example Org" {
		t.Errorf("Registrant = %q", record.Registrant)
	}
	if len(record.Emails) != 1 || record.Emails[0] != "admin@example.com" {
		t.Errorf("Emails = %v", record.Emails)
	}
	if record.CreationDate != "1995-08-14T04:00:00Z" {
		t.Errorf("CreationDate = %q", record.CreationDate)
	}
	if record.ExpirationDate != "2026-08-13T04:00:00Z" {
		t.Errorf("ExpirationDate = %q", record.ExpirationDate)
	}
	if record.UpdatedDate != "2025-08-14T07:01:44Z" {
		t.Errorf("UpdatedDate = %q", record.UpdatedDate)
	}
	if len(record.NameServers) != 2 || record.NameServers[0] != "a.iana-servers.net" {
		t.Errorf("NameServers = %v", record.NameServers)
	}
	if record.DNSSEC != "signedDelegation" {
		t.Errorf("DNSSEC = %q", record.DNSSEC)
	}
	if record.RawText == "" {
		t.Error("RawText应保留序列化的RDAP响应")
	}
}

// 注册商实体无vCard fn字段时，退回用IANA注册商ID合成名称
func TestParseRDAPRegistrarIDFallback(t *testing.T) {
	rdap := &RDAPResponse{
		LDHName: "example.com",
		Entities: []RDAPEntity{
			{
				Roles:     []string{"registrar"},
				PublicIDs: []RDAPPublicID{{Type: "IANA Registrar ID", Identifier: "376"}},
			},
		},
	}

	record := ParseRDAP(rdap, "example.com")
	if record.Registrar != "Registrar ID: 376" {
		t.Errorf("Registrar = %q", record.Registrar)
	}
}

func TestParseRDAPEmptyResponse(t *testing.T) {
	record := ParseRDAP(&RDAPResponse{}, "example.com")
	if record.Domain != "example.com" {
		t.Errorf("Domain = %q", record.Domain)
	}
	if record.Registrar != "" || record.DNSSEC != "" {
		t.Error("空RDAP响应不应提取出字段")
	}
}
