package dnsimple

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Response is a successful API response. Body is nil when the server sent no content.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport executes built requests against the client's endpoint and
// classifies the responses.
type Transport struct {
	client *Client
}

// RequestBuilder returns a builder bound to path. Each call returns a new
// builder; no state carries over between calls.
func (t *Transport) RequestBuilder(path string) *RequestBuilder {
	return NewRequestBuilder().ForPath(path)
}

// URL returns the absolute URL req is sent to
func (t *Transport) URL(req *Request) string {
	u := t.client.versionedRoot() + strings.TrimLeft(req.Path, "/")
	if query := encodeQuery(req.Params); query != "" {
		u += "?" + query
	}
	return u
}

// Execute sends req and returns the response on a 2xx status.
// Any other status returns one of the typed API errors.
//
// Headers on req replace the Accept, Content-Type and Authorization values
// the transport would send. User-Agent is always the client's.
func (t *Transport) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Path == "" {
		return nil, ErrMissingPath
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	requestURL := t.URL(req)

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if creds := t.client.currentCredentials(); creds != nil {
		creds.Authenticate(httpReq)
	}
	applyHeaders(httpReq.Header, req.Headers)
	httpReq.Header.Set("User-Agent", t.client.UserAgent())

	start := time.Now()
	resp, err := t.client.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	t.client.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("DNSimple API request")

	if !isSuccessful(resp.StatusCode) {
		return nil, newResponseError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		respBody = nil
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// applyHeaders adds pairs to h. The first pair for a name replaces any value
// already set; later pairs for the same name are appended.
func applyHeaders(h http.Header, pairs []Pair) {
	replaced := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		key := http.CanonicalHeaderKey(p.Key)
		if !replaced[key] {
			h.Del(key)
			replaced[key] = true
		}
		h.Add(key, p.Value)
	}
}

func isSuccessful(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// encodeQuery serializes params in order. Unreserved characters and ':' are
// kept literal; everything else is percent-encoded with lowercase hex.
func encodeQuery(params []Pair) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		escapeQueryComponent(&sb, p.Key)
		sb.WriteByte('=')
		escapeQueryComponent(&sb, p.Value)
	}
	return sb.String()
}

const lowerHex = "0123456789abcdef"

func escapeQueryComponent(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isQueryLiteral(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(lowerHex[c>>4])
		sb.WriteByte(lowerHex[c&0x0f])
	}
}

func isQueryLiteral(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~', ':':
		return true
	}
	return false
}
