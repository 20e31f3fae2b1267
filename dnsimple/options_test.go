package dnsimple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationIsDefault(t *testing.T) {
	tests := []struct {
		name       string
		pagination Pagination
		want       bool
	}{
		{"defaults", NewPagination(30, 1), true},
		{"zero value", Pagination{}, true},
		{"other page", NewPagination(30, 2), false},
		{"other page size", NewPagination(50, 1), false},
		{"both changed", NewPagination(42, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pagination.IsDefault())
		})
	}
}

func TestPaginationUnpack(t *testing.T) {
	assert.Equal(t, []Pair{{"per_page", "42"}, {"page", "7"}}, NewPagination(42, 7).Unpack())
	assert.Equal(t, []Pair{{"per_page", "30"}, {"page", "1"}}, Pagination{}.Unpack())
	assert.Equal(t, []Pair{{"per_page", "100"}, {"page", "10"}}, NewPagination(100, 10).Unpack())
}

func TestUnpackSorting(t *testing.T) {
	opts := NewListOptions()
	_, ok := opts.UnpackSorting()
	assert.False(t, ok)
	assert.False(t, opts.HasSortingOptions())

	opts.AddSort("id", Asc).AddSort("label", Desc).AddSort("email", Asc)

	pair, ok := opts.UnpackSorting()
	assert.True(t, ok)
	assert.True(t, opts.HasSortingOptions())
	assert.Equal(t, Pair{Key: "sort", Value: "id:asc,label:desc,email:asc"}, pair)
}

func TestUnpackSortingKeepsDuplicates(t *testing.T) {
	opts := NewListOptions().AddSort("name", Asc).AddSort("name", Desc)

	pair, ok := opts.UnpackSorting()
	assert.True(t, ok)
	assert.Equal(t, "name:asc,name:desc", pair.Value)
}

func TestUnpackFilters(t *testing.T) {
	opts := NewListOptions()
	assert.False(t, opts.HasFilterOptions())
	assert.Empty(t, opts.UnpackFilters())

	opts.AddFilter("name_like", "example").AddFilter("type", "A").AddFilter("type", "MX")

	assert.True(t, opts.HasFilterOptions())
	assert.Equal(t, []Pair{
		{"name_like", "example"},
		{"type", "A"},
		{"type", "MX"},
	}, opts.UnpackFilters())
}

func TestTypedListOptions(t *testing.T) {
	domains := (&DomainListOptions{}).
		FilterByNameLike("example").
		FilterByRegistrantID(42).
		SortByExpiration(Desc).
		WithPagination(10, 2)

	pair, _ := domains.UnpackSorting()
	assert.Equal(t, "expiration:desc", pair.Value)
	assert.Equal(t, []Pair{{"name_like", "example"}, {"registrant_id", "42"}}, domains.UnpackFilters())
	assert.Equal(t, NewPagination(10, 2), domains.Pagination)

	records := (&ZoneRecordListOptions{}).FilterByType("SOA").SortByContent(Asc)
	pair, _ = records.UnpackSorting()
	assert.Equal(t, "content:asc", pair.Value)
	assert.True(t, records.Pagination.IsDefault())
}
