package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/dnsimple"
	"github.com/s0up4200/dnsimple/filter"
)

// listFlags are the flags shared by every paginated list command
type listFlags struct {
	sorts   []string
	filters []string
	page    int
	perPage int
	all     bool
	where   string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.sorts, "sort", nil, "sort criterion as field:asc or field:desc (repeatable)")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "server-side filter as key=value (repeatable)")
	cmd.Flags().IntVar(&f.page, "page", dnsimple.DefaultPage, "page to fetch")
	cmd.Flags().IntVar(&f.perPage, "per-page", dnsimple.DefaultPerPage, "records per page")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch every page")
	cmd.Flags().StringVarP(&f.where, "where", "w", "", "client-side filter expression, e.g. 'lower(name) endsWith \".io\"'")
}

// options parses the sort and filter flags into list options
func (f *listFlags) options() (dnsimple.ListOptions, error) {
	var opts dnsimple.ListOptions

	for _, s := range f.sorts {
		field, order, err := parseSort(s)
		if err != nil {
			return opts, err
		}
		opts.AddSort(field, order)
	}
	for _, kv := range f.filters {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return opts, fmt.Errorf("invalid filter %q: expected key=value", kv)
		}
		opts.AddFilter(key, value)
	}

	if f.page < 1 || f.perPage < 1 {
		return opts, fmt.Errorf("--page and --per-page must be positive")
	}
	opts.SetPagination(f.perPage, f.page)
	return opts, nil
}

// forPage returns a copy of opts selecting page. The copy shares the
// read-only sort and filter criteria.
func forPage(opts dnsimple.ListOptions, perPage, page int) dnsimple.ListOptions {
	opts.SetPagination(perPage, page)
	return opts
}

func parseSort(s string) (string, dnsimple.SortOrder, error) {
	field, order, found := strings.Cut(s, ":")
	if field == "" {
		return "", "", fmt.Errorf("invalid sort %q: expected field:asc or field:desc", s)
	}
	if !found {
		return field, dnsimple.Asc, nil
	}
	switch dnsimple.SortOrder(strings.ToLower(order)) {
	case dnsimple.Asc:
		return field, dnsimple.Asc, nil
	case dnsimple.Desc:
		return field, dnsimple.Desc, nil
	default:
		return "", "", fmt.Errorf("invalid sort order %q in %q: must be asc or desc", order, s)
	}
}

// applyWhere keeps the records matching the --where expression
func applyWhere[T any](where string, records []T) ([]T, error) {
	if where == "" {
		return records, nil
	}
	f, err := filter.Compile(where)
	if err != nil {
		return nil, fmt.Errorf("invalid --where expression: %w", err)
	}
	return filter.Apply(f, records)
}
