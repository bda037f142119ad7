package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-pass-vault-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client bound to baseURL. Every
// request carries a JSON Accept header and the client user agent; timeout
// bounds a single request and zero disables the bound.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/api/version")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
