package dnsimple

import (
	"strconv"
	"strings"
)

const (
	// DefaultPage is the page requested when none is set
	DefaultPage = 1
	// DefaultPerPage is the page size the API uses when none is set
	DefaultPerPage = 30
)

// Pair is a single ordered key/value entry used for headers and query parameters.
type Pair struct {
	Key   string
	Value string
}

// SortOrder is the direction of a sort criterion
type SortOrder string

const (
	// Asc sorts in ascending order
	Asc SortOrder = "asc"
	// Desc sorts in descending order
	Desc SortOrder = "desc"
)

// Sort is a single sort criterion
type Sort struct {
	Field string
	Order SortOrder
}

// String returns the criterion in field:order form
func (s Sort) String() string {
	return s.Field + ":" + string(s.Order)
}

// Filter is a single filter criterion. Each filter becomes its own query parameter.
type Filter struct {
	Field string
	Value string
}

// Pagination is the request-side page selection.
// Zero fields are treated as their defaults.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination returns a Pagination for the given page size and page number
func NewPagination(perPage, page int) Pagination {
	return Pagination{Page: page, PerPage: perPage}
}

func (p Pagination) page() int {
	if p.Page == 0 {
		return DefaultPage
	}
	return p.Page
}

func (p Pagination) perPage() int {
	if p.PerPage == 0 {
		return DefaultPerPage
	}
	return p.PerPage
}

// IsDefault reports whether both page and page size are unchanged from the defaults.
// Default pagination is never sent to the API.
func (p Pagination) IsDefault() bool {
	return p.page() == DefaultPage && p.perPage() == DefaultPerPage
}

// Unpack returns the per_page and page parameters, in that order.
func (p Pagination) Unpack() []Pair {
	return []Pair{
		{Key: "per_page", Value: strconv.Itoa(p.perPage())},
		{Key: "page", Value: strconv.Itoa(p.page())},
	}
}

// ListOptions accumulates pagination, sorting and filtering for list endpoints.
// The zero value is ready to use and produces no query parameters.
type ListOptions struct {
	Pagination Pagination

	sorting []Sort
	filters []Filter
}

// NewListOptions returns empty list options with default pagination
func NewListOptions() *ListOptions {
	return &ListOptions{Pagination: NewPagination(DefaultPerPage, DefaultPage)}
}

// AddSort appends a sort criterion. Repeated fields are kept.
func (o *ListOptions) AddSort(field string, order SortOrder) *ListOptions {
	o.sorting = append(o.sorting, Sort{Field: field, Order: order})
	return o
}

// AddFilter appends a filter criterion. Repeated fields are kept.
func (o *ListOptions) AddFilter(field, value string) *ListOptions {
	o.filters = append(o.filters, Filter{Field: field, Value: value})
	return o
}

// SetPagination replaces the page selection
func (o *ListOptions) SetPagination(perPage, page int) *ListOptions {
	o.Pagination = NewPagination(perPage, page)
	return o
}

// HasSortingOptions reports whether any sort criterion was added
func (o *ListOptions) HasSortingOptions() bool {
	return len(o.sorting) > 0
}

// HasFilterOptions reports whether any filter criterion was added
func (o *ListOptions) HasFilterOptions() bool {
	return len(o.filters) > 0
}

// UnpackSorting returns the single sort parameter with every criterion joined
// in insertion order. ok is false when no criteria were added.
func (o *ListOptions) UnpackSorting() (pair Pair, ok bool) {
	if !o.HasSortingOptions() {
		return Pair{}, false
	}
	parts := make([]string, 0, len(o.sorting))
	for _, s := range o.sorting {
		parts = append(parts, s.String())
	}
	return Pair{Key: "sort", Value: strings.Join(parts, ",")}, true
}

// UnpackFilters returns one parameter per filter in insertion order
func (o *ListOptions) UnpackFilters() []Pair {
	pairs := make([]Pair, 0, len(o.filters))
	for _, f := range o.filters {
		pairs = append(pairs, Pair{Key: f.Field, Value: f.Value})
	}
	return pairs
}

// DomainListOptions are the list options accepted by Domains.List
type DomainListOptions struct {
	ListOptions
}

// FilterByNameLike keeps domains whose name contains value
func (o *DomainListOptions) FilterByNameLike(value string) *DomainListOptions {
	o.AddFilter("name_like", value)
	return o
}

// FilterByRegistrantID keeps domains registered to the given contact
func (o *DomainListOptions) FilterByRegistrantID(id int64) *DomainListOptions {
	o.AddFilter("registrant_id", strconv.FormatInt(id, 10))
	return o
}

// SortByID sorts by ID
func (o *DomainListOptions) SortByID(order SortOrder) *DomainListOptions {
	o.AddSort("id", order)
	return o
}

// SortByName sorts by name
func (o *DomainListOptions) SortByName(order SortOrder) *DomainListOptions {
	o.AddSort("name", order)
	return o
}

// SortByExpiration sorts by expiration date
func (o *DomainListOptions) SortByExpiration(order SortOrder) *DomainListOptions {
	o.AddSort("expiration", order)
	return o
}

// WithPagination selects a page
func (o *DomainListOptions) WithPagination(perPage, page int) *DomainListOptions {
	o.SetPagination(perPage, page)
	return o
}

// ZoneListOptions are the list options accepted by Zones.List
type ZoneListOptions struct {
	ListOptions
}

// FilterByNameLike keeps zones whose name contains value
func (o *ZoneListOptions) FilterByNameLike(value string) *ZoneListOptions {
	o.AddFilter("name_like", value)
	return o
}

// SortByID sorts by ID
func (o *ZoneListOptions) SortByID(order SortOrder) *ZoneListOptions {
	o.AddSort("id", order)
	return o
}

// SortByName sorts by name
func (o *ZoneListOptions) SortByName(order SortOrder) *ZoneListOptions {
	o.AddSort("name", order)
	return o
}

// WithPagination selects a page
func (o *ZoneListOptions) WithPagination(perPage, page int) *ZoneListOptions {
	o.SetPagination(perPage, page)
	return o
}

// ZoneRecordListOptions are the list options accepted by Zones.ListRecords
type ZoneRecordListOptions struct {
	ListOptions
}

// FilterByNameLike keeps records whose name contains value
func (o *ZoneRecordListOptions) FilterByNameLike(value string) *ZoneRecordListOptions {
	o.AddFilter("name_like", value)
	return o
}

// FilterByName keeps records whose name is exactly value
func (o *ZoneRecordListOptions) FilterByName(value string) *ZoneRecordListOptions {
	o.AddFilter("name", value)
	return o
}

// FilterByType keeps records of the given type (A, MX, SOA, ...)
func (o *ZoneRecordListOptions) FilterByType(recordType string) *ZoneRecordListOptions {
	o.AddFilter("type", recordType)
	return o
}

// SortByID sorts by ID
func (o *ZoneRecordListOptions) SortByID(order SortOrder) *ZoneRecordListOptions {
	o.AddSort("id", order)
	return o
}

// SortByName sorts by name
func (o *ZoneRecordListOptions) SortByName(order SortOrder) *ZoneRecordListOptions {
	o.AddSort("name", order)
	return o
}

// SortByContent sorts by record content
func (o *ZoneRecordListOptions) SortByContent(order SortOrder) *ZoneRecordListOptions {
	o.AddSort("content", order)
	return o
}

// SortByType sorts by record type
func (o *ZoneRecordListOptions) SortByType(order SortOrder) *ZoneRecordListOptions {
	o.AddSort("type", order)
	return o
}

// WithPagination selects a page
func (o *ZoneRecordListOptions) WithPagination(perPage, page int) *ZoneRecordListOptions {
	o.SetPagination(perPage, page)
	return o
}

// DSRecordListOptions are the list options accepted by Domains.ListDSRecords
type DSRecordListOptions struct {
	ListOptions
}

// SortByID sorts by ID
func (o *DSRecordListOptions) SortByID(order SortOrder) *DSRecordListOptions {
	o.AddSort("id", order)
	return o
}

// SortByCreatedAt sorts by creation time
func (o *DSRecordListOptions) SortByCreatedAt(order SortOrder) *DSRecordListOptions {
	o.AddSort("created_at", order)
	return o
}

// WithPagination selects a page
func (o *DSRecordListOptions) WithPagination(perPage, page int) *DSRecordListOptions {
	o.SetPagination(perPage, page)
	return o
}
