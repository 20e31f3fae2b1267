package dnsimple

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// service is the base every resource service embeds
type service struct {
	client *Client
}

// buildRequestForPath returns a GET builder bound to path
func (s *service) buildRequestForPath(path string) *RequestBuilder {
	return s.client.transport.RequestBuilder(path).SetMethod(http.MethodGet)
}

// execute builds the request and sends it through the transport
func (s *service) execute(ctx context.Context, b *RequestBuilder) (*Response, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return s.client.transport.Execute(ctx, req)
}

// addListOptionsToRequest adds sort, then filters, then non-default pagination.
// The order is part of the wire format.
func addListOptionsToRequest(opts *ListOptions, b *RequestBuilder) {
	if opts == nil {
		return
	}
	if opts.HasSortingOptions() {
		if pair, ok := opts.UnpackSorting(); ok {
			b.AddParameters(pair)
		}
	}
	if opts.HasFilterOptions() {
		b.AddParameters(opts.UnpackFilters()...)
	}
	if !opts.Pagination.IsDefault() {
		b.AddParameters(opts.Pagination.Unpack()...)
	}
}

// resourcePath joins escaped path segments
func resourcePath(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return "/" + strings.Join(escaped, "/")
}
