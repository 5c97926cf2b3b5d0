package client

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTimeout = 30 * time.Second

// CreateProxyHTTPClient creates an HTTP client that routes through proxyURL.
// An empty or unparsable proxy falls back to a direct client.
func CreateProxyHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	if proxyURL == "" {
		return CreateHTTPClient(timeout)
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return CreateHTTPClient(timeout)
	}

	transport := newTransport()
	transport.Proxy = http.ProxyURL(proxy)

	return &http.Client{
		Transport: transport,
		Timeout:   orDefaultTimeout(timeout),
	}
}

// CreateHTTPClient creates a standard HTTP client
func CreateHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: newTransport(),
		Timeout:   orDefaultTimeout(timeout),
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
		ForceAttemptHTTP2:   true,
	}
}

func orDefaultTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultTimeout
	}
	return timeout
}

// APIHeaders returns the headers sent with every API request. hh.ru rejects
// requests without a User-Agent.
func APIHeaders(userAgent string) http.Header {
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)
	headers.Set("Accept", "application/json")
	headers.Set("Accept-Encoding", "gzip")
	return headers
}

// ReadResponseBody reads the response body, handling gzip compression if necessary
func ReadResponseBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer reader.Close()
	default:
		reader = resp.Body
	}

	return io.ReadAll(reader)
}
