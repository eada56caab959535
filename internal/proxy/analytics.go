// Package proxy forwards analytics traffic from the site origin to the
// PostHog ingestion host.
package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/sbilibin2017/yokva-landing/internal/logger"
)

const (
	// DefaultUpstream is the PostHog ingestion origin.
	DefaultUpstream = "https://us.i.posthog.com"

	// Prefix is the path prefix the proxy is mounted under.
	Prefix = "/ph"

	allowedMethods = "GET,HEAD,POST,PUT,PATCH,DELETE,OPTIONS"
	errorBody      = "PostHog proxy error"
)

// hopByHopHeaders never cross the proxy in either direction.
var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Host",
	"Content-Length",
}

// clientIdentityHeaders are dropped from requests only.
var clientIdentityHeaders = []string{
	"Cookie",
	"Cf-Connecting-Ip",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Real-Ip",
}

// AnalyticsProxy is an http.Handler relaying /ph/* to the upstream origin.
type AnalyticsProxy struct {
	upstream *url.URL
	rp       *httputil.ReverseProxy
}

// NewAnalyticsProxy builds the proxy. An empty upstream selects DefaultUpstream;
// transport may be nil to use http.DefaultTransport.
func NewAnalyticsProxy(upstream string, transport http.RoundTripper) (*AnalyticsProxy, error) {
	if strings.TrimSpace(upstream) == "" {
		upstream = DefaultUpstream
	}
	target, err := url.Parse(strings.TrimRight(strings.TrimSpace(upstream), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse analytics upstream: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("analytics upstream %q must be an absolute URL", upstream)
	}
	if transport == nil {
		transport = http.DefaultTransport
	}

	p := &AnalyticsProxy{upstream: target}
	p.rp = &httputil.ReverseProxy{
		Rewrite:        p.rewrite,
		Transport:      transport,
		ModifyResponse: stripResponseHeaders,
		ErrorHandler:   proxyError,
	}
	return p, nil
}

// Upstream returns the configured upstream origin.
func (p *AnalyticsProxy) Upstream() string {
	return p.upstream.String()
}

func (p *AnalyticsProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Allow", allowedMethods)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	p.rp.ServeHTTP(w, r)
}

func (p *AnalyticsProxy) rewrite(pr *httputil.ProxyRequest) {
	out := pr.Out

	out.URL.Scheme = p.upstream.Scheme
	out.URL.Host = p.upstream.Host
	out.URL.Path = UpstreamPath(pr.In.URL.Path)
	out.URL.RawPath = ""
	out.URL.RawQuery = pr.In.URL.RawQuery
	out.Host = ""

	for _, h := range hopByHopHeaders {
		out.Header.Del(h)
	}
	for _, h := range clientIdentityHeaders {
		out.Header.Del(h)
	}

	if out.Method == http.MethodGet || out.Method == http.MethodHead {
		out.Body = nil
		out.ContentLength = 0
	}
}

// UpstreamPath strips the mount prefix from path, mapping an empty remainder to "/".
func UpstreamPath(path string) string {
	rest := strings.TrimPrefix(path, Prefix)
	if rest == "" || rest[0] != '/' {
		rest = "/" + rest
	}
	return rest
}

func stripResponseHeaders(resp *http.Response) error {
	for _, h := range hopByHopHeaders {
		resp.Header.Del(h)
	}
	return nil
}

func proxyError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Log.Errorw("analytics proxy failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = w.Write([]byte(errorBody))
}
