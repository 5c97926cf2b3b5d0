package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestReadResponseBodyGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(`{"items":[]}`)); err != nil {
		t.Fatal(err)
	}
	zw.Close()

	resp := &http.Response{
		Header: http.Header{"Content-Encoding": []string{"gzip"}},
		Body:   io.NopCloser(&buf),
	}
	body, err := ReadResponseBody(resp)
	if err != nil {
		t.Fatalf("ReadResponseBody: %v", err)
	}
	if string(body) != `{"items":[]}` {
		t.Errorf("body = %q", body)
	}
}

func TestReadResponseBodyPlain(t *testing.T) {
	resp := &http.Response{Header: http.Header{}, Body: io.NopCloser(bytes.NewBufferString("plain"))}
	body, err := ReadResponseBody(resp)
	if err != nil || string(body) != "plain" {
		t.Errorf("ReadResponseBody() = %q, %v", body, err)
	}
}

func TestCreateClients(t *testing.T) {
	if c := CreateHTTPClient(0); c.Timeout != defaultTimeout {
		t.Errorf("timeout = %v", c.Timeout)
	}
	c := CreateProxyHTTPClient("http://127.0.0.1:8080", 5*time.Second)
	if c.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok || tr.Proxy == nil {
		t.Fatal("expected a proxied transport")
	}
	req, _ := http.NewRequest(http.MethodGet, "https://api.hh.ru/vacancies", nil)
	u, err := tr.Proxy(req)
	if err != nil || u == nil || u.Host != "127.0.0.1:8080" {
		t.Errorf("proxy = %v, %v", u, err)
	}
	if h := APIHeaders("agent/1.0"); h.Get("User-Agent") != "agent/1.0" {
		t.Errorf("User-Agent = %q", h.Get("User-Agent"))
	}
}
