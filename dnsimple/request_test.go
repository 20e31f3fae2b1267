package dnsimple

import (
	"math"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilderDefaults(t *testing.T) {
	req, err := NewRequestBuilder().ForPath("/whoami").Build()
	require.NoError(t, err)

	want := &Request{Method: http.MethodGet, Path: "/whoami"}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestBuilderWithoutPath(t *testing.T) {
	_, err := NewRequestBuilder().Build()
	assert.ErrorIs(t, err, ErrMissingPath)

	_, err = NewRequestBuilder().ForPath("x").Reset().Build()
	assert.ErrorIs(t, err, ErrMissingPath)
}

func TestRequestBuilderReset(t *testing.T) {
	b := NewRequestBuilder().
		ForPath("/1010/domains").
		SetMethod(http.MethodPost).
		AddHeaders(Pair{"X-Custom", "1"}).
		AddParameters(Pair{"name_like", "example"}).
		AddJSONPayload(DomainAttributes{Name: "example.com"})

	reused, err := b.Reset().ForPath("x").Build()
	require.NoError(t, err)

	fresh, err := NewRequestBuilder().ForPath("x").Build()
	require.NoError(t, err)

	if diff := cmp.Diff(fresh, reused); diff != "" {
		t.Errorf("reset builder leaked state (-fresh +reused):\n%s", diff)
	}
}

func TestRequestBuilderForPathResets(t *testing.T) {
	b := NewRequestBuilder().ForPath("a").AddParameters(Pair{"page", "2"})
	req, err := b.ForPath("b").Build()
	require.NoError(t, err)
	assert.Equal(t, "b", req.Path)
	assert.Empty(t, req.Params)
}

func TestRequestBuilderKeepsDuplicates(t *testing.T) {
	req, err := NewRequestBuilder().ForPath("x").
		AddHeaders(Pair{"X-Tag", "a"}, Pair{"X-Tag", "b"}).
		AddParameters(Pair{"type", "A"}).
		AddParameters(Pair{"type", "MX"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []Pair{{"X-Tag", "a"}, {"X-Tag", "b"}}, req.Headers)
	assert.Equal(t, []Pair{{"type", "A"}, {"type", "MX"}}, req.Params)
}

func TestRequestBuilderJSONPayload(t *testing.T) {
	b := NewRequestBuilder().ForPath("x").
		AddJSONPayload(DomainAttributes{Name: "first.com"}).
		AddJSONPayload(DomainAttributes{Name: "second.com"})

	req, err := b.Build()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"second.com"}`, string(req.Body))
}

func TestRequestBuilderJSONPayloadError(t *testing.T) {
	_, err := NewRequestBuilder().ForPath("x").AddJSONPayload(math.Inf(1)).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode request body")
}

func TestRequestBuilderAddPagination(t *testing.T) {
	req, err := NewRequestBuilder().ForPath("x").AddPagination(42, 7).Build()
	require.NoError(t, err)
	assert.Equal(t, []Pair{{"per_page", "42"}, {"page", "7"}}, req.Params)
}

func TestBuildReturnsSnapshot(t *testing.T) {
	b := NewRequestBuilder().ForPath("x").AddParameters(Pair{"a", "1"})
	req, err := b.Build()
	require.NoError(t, err)

	b.AddParameters(Pair{"b", "2"})
	assert.Equal(t, []Pair{{"a", "1"}}, req.Params)
}
