package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAuthorizeRedirectsToConsentURL(t *testing.T) {
	s := newTestServer()
	w := doRequest(s, http.MethodGet, "/api/authorize", nil)

	if w.Code != http.StatusFound {
		t.Fatalf("authorize status = %d, want %d", w.Code, http.StatusFound)
	}

	location := w.Header().Get("Location")
	if location == "" {
		t.Fatal("authorize response has no Location header")
	}

	consentURL, err := url.Parse(location)
	if err != nil {
		t.Fatalf("consent URL does not parse: %v", err)
	}
	if consentURL.Host != "accounts.google.com" {
		t.Errorf("consent URL host = %q, want accounts.google.com", consentURL.Host)
	}

	q := consentURL.Query()
	if q.Get("access_type") != "offline" {
		t.Errorf("access_type = %q, want offline", q.Get("access_type"))
	}
	if q.Get("client_id") != "test-client-id" {
		t.Errorf("client_id = %q, want test-client-id", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "http://localhost:8080/api/oauth2callback" {
		t.Errorf("redirect_uri = %q", q.Get("redirect_uri"))
	}

	scope := q.Get("scope")
	for _, want := range []string{
		"https://www.googleapis.com/auth/youtube.readonly",
		"https://www.googleapis.com/auth/spreadsheets",
		"https://www.googleapis.com/auth/drive",
		"https://www.googleapis.com/auth/yt-analytics.readonly",
	} {
		if !strings.Contains(scope, want) {
			t.Errorf("scope %q missing from consent URL scope %q", want, scope)
		}
	}
}

func TestCallbackMissingCode(t *testing.T) {
	s := newTestServer()
	w := doRequest(s, http.MethodGet, "/api/oauth2callback", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("callback status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Errorf("callback issued a redirect to %q, want none", loc)
	}
	body := decodeBody(t, w)
	if _, ok := body["error"]; !ok {
		t.Errorf("callback body has no error key: %v", body)
	}
}
