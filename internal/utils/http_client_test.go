package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:3003", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	client := NewHTTPClient("http://localhost:3003/", 0)

	if client.BaseURL != "http://localhost:3003" {
		t.Errorf("expected base URL without trailing slash, got %q", client.BaseURL)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://b", time.Second)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_SendsRequestsToBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/api/blogs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if gotPath != "/api/blogs" {
		t.Errorf("expected path /api/blogs, got %s", gotPath)
	}
}
