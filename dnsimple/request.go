package dnsimple

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Request is a transport-ready description of a single API call.
// Path is relative to the versioned API root.
type Request struct {
	Method  string
	Path    string
	Headers []Pair
	Params  []Pair
	Body    []byte
}

// RequestBuilder composes a Request incrementally.
// A builder created without a path must be given one with ForPath before Build.
type RequestBuilder struct {
	method  string
	path    string
	headers []Pair
	params  []Pair
	body    []byte
	err     error
}

// NewRequestBuilder returns an empty builder with no path set
func NewRequestBuilder() *RequestBuilder {
	return (&RequestBuilder{}).Reset()
}

// ForPath resets the builder and binds it to path
func (b *RequestBuilder) ForPath(path string) *RequestBuilder {
	b.Reset()
	b.path = path
	return b
}

// Reset clears everything, including the path and any recorded error
func (b *RequestBuilder) Reset() *RequestBuilder {
	*b = RequestBuilder{method: http.MethodGet}
	return b
}

// AddHeaders appends headers in order. Duplicate names are all transmitted.
func (b *RequestBuilder) AddHeaders(pairs ...Pair) *RequestBuilder {
	b.headers = append(b.headers, pairs...)
	return b
}

// AddParameters appends query parameters in order. Duplicate keys are all transmitted.
func (b *RequestBuilder) AddParameters(pairs ...Pair) *RequestBuilder {
	b.params = append(b.params, pairs...)
	return b
}

// AddJSONPayload serializes v as the request body, replacing any previous body.
// A serialization failure is reported by Build.
func (b *RequestBuilder) AddJSONPayload(v any) *RequestBuilder {
	data, err := json.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("failed to encode request body: %w", err)
		return b
	}
	b.body = data
	return b
}

// SetMethod sets the HTTP method. GET is used when never called.
func (b *RequestBuilder) SetMethod(method string) *RequestBuilder {
	b.method = method
	return b
}

// AddPagination appends per_page and page as decimal query parameters
func (b *RequestBuilder) AddPagination(perPage, page int) *RequestBuilder {
	return b.AddParameters(
		Pair{Key: "per_page", Value: strconv.Itoa(perPage)},
		Pair{Key: "page", Value: strconv.Itoa(page)},
	)
}

// Build returns a snapshot of the request. Later changes to the builder do
// not affect a request that was already built.
func (b *RequestBuilder) Build() (*Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.path == "" {
		return nil, ErrMissingPath
	}

	req := &Request{
		Method: b.method,
		Path:   b.path,
	}
	if len(b.headers) > 0 {
		req.Headers = append([]Pair(nil), b.headers...)
	}
	if len(b.params) > 0 {
		req.Params = append([]Pair(nil), b.params...)
	}
	if b.body != nil {
		req.Body = append([]byte(nil), b.body...)
	}
	return req, nil
}
