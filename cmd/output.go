package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/itchyny/gojq"
)

// isJSON reports whether results are printed as JSON
func isJSON() bool {
	return cfg != nil && cfg.Output.Format == "json"
}

// writeJSON prints v as indented JSON, filtered through query when one is given
func writeJSON(w io.Writer, v any, query string) error {
	if query == "" {
		return encodeJSON(w, v)
	}

	results, err := applyQuery(v, query)
	if err != nil {
		return err
	}
	for _, result := range results {
		if s, ok := result.(string); ok {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
			continue
		}
		if err := encodeJSON(w, result); err != nil {
			return err
		}
	}
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// applyQuery runs a jq expression over the JSON form of v
func applyQuery(v any, query string) ([]any, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	// gojq only accepts the generic JSON types
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	var results []any
	iter := parsed.Run(input)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := result.(error); ok {
			return nil, fmt.Errorf("jq error: %w", err)
		}
		results = append(results, result)
	}
	return results, nil
}

// writeTable prints rows under header, aligned in columns
func writeTable(w io.Writer, header []any, rows [][]any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	writeRow(tw, header)
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []any) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

// render prints v as JSON or, for table output, via table
func render(w io.Writer, v any, table func() error) error {
	if isJSON() {
		return writeJSON(w, v, jqQuery)
	}
	return table()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
