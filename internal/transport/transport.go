// Package transport builds the HTTP client used for upstream store
// requests. CDNs fronting many WooCommerce stores rate-limit Go's
// default TLS client by JA3 fingerprint, so the handshake here presents
// a Chrome fingerprint via uTLS and lets ALPN pick h2 or http/1.1.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// NewClient returns an HTTP client whose TLS handshakes carry Chrome's
// fingerprint. timeout bounds both the dial and the whole request.
func NewClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: timeout}
	return &http.Client{
		Timeout: timeout,
		Transport: &fingerprintTransport{
			h2: &http2.Transport{
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return dialFingerprintTLS(ctx, dialer, network, addr)
				},
			},
			h1: &http.Transport{
				DialContext: dialer.DialContext,
				DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return dialFingerprintTLS(ctx, dialer, network, addr)
				},
				ForceAttemptHTTP2: false,
			},
		},
	}
}

// fingerprintTransport routes each request to an HTTP/2 or HTTP/1.1
// transport, both dialing TLS with the Chrome fingerprint.
type fingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

// RoundTrip sends https requests over HTTP/2 first and falls back to
// HTTP/1.1 when the server does not speak h2. Plain http requests go
// straight to the HTTP/1.1 transport; there is no fingerprint to
// present without a handshake.
func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}
	resp, err := t.h2.RoundTrip(req)
	if err != nil {
		return t.h1.RoundTrip(req)
	}
	return resp, nil
}

// dialFingerprintTLS dials addr and completes a uTLS handshake that
// mimics current Chrome, with SNI taken from the host part of addr.
func dialFingerprintTLS(ctx context.Context, dialer *net.Dialer, network, addr string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}

	tlsConn := utls.UClient(conn, &utls.Config{ServerName: host}, utls.HelloChrome_Auto)
	if err := tlsConn.Handshake(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}
	return tlsConn, nil
}
