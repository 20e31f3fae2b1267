// Package dnsimple provides a typed client for the DNSimple v2 API.
//
// Every operation is a single synchronous request/response exchange: the
// client composes the request, sends it through the configured HTTP client and
// turns the response into a typed result or a typed error. There are no
// retries and no caching.
//
// # Architecture
//
// The package is organized into several components:
//
//   - ListOptions: pagination, sorting and filtering for list endpoints
//   - RequestBuilder: composes method, path, headers, query and JSON body
//   - Transport: executes a Request and classifies the response
//   - Decoders: DecodeSimple, DecodeList, DecodePaginated, ... over the data envelope
//   - Client: base URL, user agent, credentials and the resource services
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := dnsimple.NewClient(
//		dnsimple.NewTokenAuth("your-token"),
//		dnsimple.WithBaseURL(dnsimple.SandboxBaseURL),
//		dnsimple.WithTimeout(30*time.Second),
//		dnsimple.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	opts := (&dnsimple.DomainListOptions{}).
//		FilterByNameLike("example").
//		SortByExpiration(dnsimple.Asc)
//	domains, err := client.Domains.List(ctx, "1010", opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(domains.Pagination.TotalEntries, domains.RateLimit.Remaining)
//
// # Query strings
//
// List options are sent in a fixed order: the sort parameter first, then
// each filter in the order it was added, then per_page and page. Default
// pagination (page 1, 30 per page) is never sent.
//
// # Error Handling
//
// Failed calls return one of:
//
//   - *ValidationError (400) with the per-field messages
//   - *AuthenticationError (401)
//   - *NotFoundError (404)
//   - *ServiceUnavailableError (501, 502, 503, 504)
//   - *APIError for any other status
//
// Each kind unwraps to its *APIError, and the error text is the message the
// server sent:
//
//	var verr *dnsimple.ValidationError
//	if errors.As(err, &verr) {
//		for field, msgs := range verr.Errors {
//			fmt.Println(field, msgs)
//		}
//	}
package dnsimple
