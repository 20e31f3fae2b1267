package dnsimple

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Rate limit response headers
const (
	HeaderRateLimit          = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimit is the request quota reported with every response
type RateLimit struct {
	Limit     int
	Remaining int
	// Reset is the Unix time at which the quota is replenished
	Reset int64
}

// ResetTime returns Reset as a time
func (r RateLimit) ResetTime() time.Time {
	return time.Unix(r.Reset, 0).UTC()
}

// PaginationData is the pagination block of a list response
type PaginationData struct {
	CurrentPage  int `json:"current_page"`
	PerPage      int `json:"per_page"`
	TotalEntries int `json:"total_entries"`
	TotalPages   int `json:"total_pages"`
}

// HasMorePages checks if there are pages after the current one
func (p PaginationData) HasMorePages() bool {
	return p.CurrentPage < p.TotalPages
}

// EmptyResponse is a response without a payload
type EmptyResponse struct {
	RateLimit RateLimit
}

// SimpleResponse holds a single object
type SimpleResponse[T any] struct {
	RateLimit RateLimit
	Data      T
}

// SimpleOrEmptyResponse holds a single object, or nothing when the server
// answered with no content.
type SimpleOrEmptyResponse[T any] struct {
	RateLimit RateLimit
	Data      T
	IsEmpty   bool
}

// ListResponse holds a list without pagination
type ListResponse[T any] struct {
	RateLimit RateLimit
	Data      []T
}

// PaginatedResponse holds one page of a list
type PaginatedResponse[T any] struct {
	RateLimit  RateLimit
	Data       []T
	Pagination PaginationData
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
}

// DecodeEmpty extracts the rate limit from a response without payload
func DecodeEmpty(resp *Response) (*EmptyResponse, error) {
	rl, err := parseRateLimit(resp.Header)
	if err != nil {
		return nil, err
	}
	return &EmptyResponse{RateLimit: rl}, nil
}

// DecodeSimple extracts data as a single T
func DecodeSimple[T any](resp *Response) (*SimpleResponse[T], error) {
	rl, err := parseRateLimit(resp.Header)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}
	var data T
	if err := decodeData(env.Data, &data); err != nil {
		return nil, err
	}
	return &SimpleResponse[T]{RateLimit: rl, Data: data}, nil
}

// DecodeSimpleOrEmpty is DecodeSimple, except that a no-content response
// yields IsEmpty and a zero T instead of an error.
func DecodeSimpleOrEmpty[T any](resp *Response) (*SimpleOrEmptyResponse[T], error) {
	rl, err := parseRateLimit(resp.Header)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNoContent || resp.Body == nil {
		return &SimpleOrEmptyResponse[T]{RateLimit: rl, IsEmpty: true}, nil
	}
	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}
	var data T
	if err := decodeData(env.Data, &data); err != nil {
		return nil, err
	}
	return &SimpleOrEmptyResponse[T]{RateLimit: rl, Data: data}, nil
}

// DecodeList extracts data as a list of T
func DecodeList[T any](resp *Response) (*ListResponse[T], error) {
	rl, err := parseRateLimit(resp.Header)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}
	var data []T
	if err := decodeData(env.Data, &data); err != nil {
		return nil, err
	}
	return &ListResponse[T]{RateLimit: rl, Data: data}, nil
}

// DecodePaginated extracts data as a list of T together with the pagination
// block. Only use it for endpoints that paginate: a response without
// pagination is an error.
func DecodePaginated[T any](resp *Response) (*PaginatedResponse[T], error) {
	rl, err := parseRateLimit(resp.Header)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}
	var data []T
	if err := decodeData(env.Data, &data); err != nil {
		return nil, err
	}
	if isAbsent(env.Pagination) {
		return nil, &DecodeError{Target: "pagination", Err: ErrMissingPagination}
	}
	var pagination PaginationData
	if err := json.Unmarshal(env.Pagination, &pagination); err != nil {
		return nil, &DecodeError{Target: "pagination", Err: err}
	}
	return &PaginatedResponse[T]{RateLimit: rl, Data: data, Pagination: pagination}, nil
}

func decodeEnvelope(body []byte) (*envelope, error) {
	if len(body) == 0 {
		return nil, &DecodeError{Target: "response", Err: ErrMissingData}
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Target: "response", Err: err}
	}
	return &env, nil
}

func decodeData(raw json.RawMessage, v any) error {
	if isAbsent(raw) {
		return &DecodeError{Target: "data", Err: ErrMissingData}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{Target: "data", Err: err}
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func parseRateLimit(h http.Header) (RateLimit, error) {
	limit, err := headerInt(h, HeaderRateLimit)
	if err != nil {
		return RateLimit{}, err
	}
	remaining, err := headerInt(h, HeaderRateLimitRemaining)
	if err != nil {
		return RateLimit{}, err
	}
	reset, err := headerInt(h, HeaderRateLimitReset)
	if err != nil {
		return RateLimit{}, err
	}
	return RateLimit{Limit: int(limit), Remaining: int(remaining), Reset: reset}, nil
}

func headerInt(h http.Header, name string) (int64, error) {
	value := strings.TrimSpace(h.Get(name))
	if value == "" {
		return 0, &RateLimitHeaderError{Header: name}
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &RateLimitHeaderError{Header: name, Value: value, Err: err}
	}
	return n, nil
}
