// Package network provides the HTTP client shared by every outbound request.
package network

import (
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// Client is the shared HTTP client. It sets no overall request timeout and relies on
// the transport's connection-level timeouts.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	// ConfigureTransport fails when the bundled h2 support is already registered.
	if err := http2.ConfigureTransport(t); err != nil {
		t.ForceAttemptHTTP2 = true
	}
	return t
}
