package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dnsimple/dnsimple"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder dnsimple.SortOrder
		wantErr   bool
	}{
		{input: "name:asc", wantField: "name", wantOrder: dnsimple.Asc},
		{input: "expiration:DESC", wantField: "expiration", wantOrder: dnsimple.Desc},
		{input: "id", wantField: "id", wantOrder: dnsimple.Asc},
		{input: ":asc", wantErr: true},
		{input: "name:up", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := parseSort(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestListFlagsOptions(t *testing.T) {
	flags := listFlags{
		sorts:   []string{"id:asc", "name:desc"},
		filters: []string{"name_like=example", "type=MX"},
		page:    2,
		perPage: 50,
	}

	opts, err := flags.options()
	require.NoError(t, err)

	pair, ok := opts.UnpackSorting()
	require.True(t, ok)
	assert.Equal(t, "id:asc,name:desc", pair.Value)
	assert.Equal(t, []dnsimple.Pair{{Key: "name_like", Value: "example"}, {Key: "type", Value: "MX"}}, opts.UnpackFilters())
	assert.Equal(t, dnsimple.NewPagination(50, 2), opts.Pagination)
}

func TestListFlagsOptionsErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags listFlags
	}{
		{name: "filter without value", flags: listFlags{filters: []string{"name_like"}, page: 1, perPage: 30}},
		{name: "filter without key", flags: listFlags{filters: []string{"=x"}, page: 1, perPage: 30}},
		{name: "bad sort", flags: listFlags{sorts: []string{"id:sideways"}, page: 1, perPage: 30}},
		{name: "zero page", flags: listFlags{page: 0, perPage: 30}},
		{name: "negative per page", flags: listFlags{page: 1, perPage: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.flags.options()
			assert.Error(t, err)
		})
	}
}

func TestForPageLeavesOriginal(t *testing.T) {
	var opts dnsimple.ListOptions
	opts.AddSort("id", dnsimple.Asc).SetPagination(10, 1)

	page3 := forPage(opts, 10, 3)
	assert.Equal(t, 3, page3.Pagination.Page)
	assert.Equal(t, 1, opts.Pagination.Page)

	pair, ok := page3.UnpackSorting()
	require.True(t, ok)
	assert.Equal(t, "id:asc", pair.Value)
}

func TestApplyWhere(t *testing.T) {
	zones := []dnsimple.Zone{
		{ID: 1, Name: "example.com", Active: true},
		{ID: 2, Name: "example.io", Active: false},
	}

	all, err := applyWhere("", zones)
	require.NoError(t, err)
	assert.Equal(t, zones, all)

	active, err := applyWhere("active", zones)
	require.NoError(t, err)
	assert.Equal(t, zones[:1], active)

	_, err = applyWhere("name ==", zones)
	assert.ErrorContains(t, err, "invalid --where expression")
}
