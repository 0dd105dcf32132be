package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3003", 10*time.Second)
//	resp, err := client.R().Get("/api/blogs")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client bound to baseURL.
// A trailing slash on baseURL is dropped; a non-positive timeout leaves
// the resty default (no timeout) in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
