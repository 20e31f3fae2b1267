package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/dnsimple/dnsimple"
)

func TestWriteJSON(t *testing.T) {
	webhooks := []dnsimple.Webhook{
		{ID: 1, URL: "https://webhook.test"},
		{ID: 2, URL: "https://another.test"},
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "no query",
			query: "",
			want:  "[\n  {\n    \"id\": 1,\n    \"url\": \"https://webhook.test\"\n  },\n  {\n    \"id\": 2,\n    \"url\": \"https://another.test\"\n  }\n]\n",
		},
		{
			name:  "strings print raw",
			query: ".[].url",
			want:  "https://webhook.test\nhttps://another.test\n",
		},
		{
			name:  "numbers",
			query: "length",
			want:  "2\n",
		},
		{
			name:  "select objects",
			query: `.[] | select(.id == 2)`,
			want:  "{\n  \"id\": 2,\n  \"url\": \"https://another.test\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeJSON(&buf, webhooks, tt.query))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteJSONInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, map[string]int{"a": 1}, ".[")
	assert.ErrorContains(t, err, "invalid jq expression")

	err = writeJSON(&buf, map[string]int{"a": 1}, ".a | keys")
	assert.ErrorContains(t, err, "jq error")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []any{"ID", "NAME"}, [][]any{
		{1, "example.com"},
		{22, "b.io"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ID   NAME\n1    example.com\n22   b.io\n", buf.String())
}
