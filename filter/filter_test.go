package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/s0up4200/dnsimple/dnsimple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `state == "registered"`,
		},
		{
			name:        "empty expression",
			expression:  "  ",
			wantErr:     true,
			errContains: "empty filter expression",
		},
		{
			name:        "invalid syntax",
			expression:  `name contains "unclosed`,
			wantErr:     true,
			errContains: "compilation error",
		},
		{
			name:       "complex expression",
			expression: `lower(name) endsWith ".com" && auto_renew == false && id > 100`,
		},
		{
			name:       "non boolean result",
			expression: `upper("x")`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestCompileErrorKinds(t *testing.T) {
	_, err := Compile("")
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, err = Compile(`name ==`)
	var compileErr *CompilationError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "name ==", compileErr.Expression)
}

func TestMatchDomains(t *testing.T) {
	soon := time.Now().Add(10 * 24 * time.Hour)
	later := time.Now().Add(300 * 24 * time.Hour)
	registrant := int64(2715)

	domains := []dnsimple.Domain{
		{ID: 1, Name: "example-alpha.com", State: "registered", RegistrantID: &registrant, ExpiresAt: &soon},
		{ID: 2, Name: "example-beta.io", State: "hosted"},
		{ID: 3, Name: "EXAMPLE-gamma.com", State: "registered", AutoRenew: true, ExpiresAt: &later},
	}

	tests := []struct {
		name       string
		expression string
		wantIDs    []int64
	}{
		{
			name:       "equality",
			expression: `state == "hosted"`,
			wantIDs:    []int64{2},
		},
		{
			name:       "case insensitive suffix",
			expression: `lower(name) endsWith ".com"`,
			wantIDs:    []int64{1, 3},
		},
		{
			name:       "starts with",
			expression: `name startsWith "EXAMPLE-g"`,
			wantIDs:    []int64{3},
		},
		{
			name:       "expiring soon guards null",
			expression: `expires_at != nil && daysUntil(expires_at) < 30`,
			wantIDs:    []int64{1},
		},
		{
			name:       "boolean field",
			expression: `auto_renew`,
			wantIDs:    []int64{3},
		},
		{
			name:       "null registrant",
			expression: `registrant_id == nil`,
			wantIDs:    []int64{2, 3},
		},
		{
			name:       "numeric comparison",
			expression: `id >= 2`,
			wantIDs:    []int64{2, 3},
		},
		{
			name:       "lowered contains",
			expression: `lower(name) contains "gamma"`,
			wantIDs:    []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := Apply(f, domains)
			require.NoError(t, err)

			ids := make([]int64, 0, len(matched))
			for _, d := range matched {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMatchZoneRecords(t *testing.T) {
	records := []dnsimple.ZoneRecord{
		{ID: 1, Name: "", Type: "SOA", Content: "ns1.dnsimple.com admin.dnsimple.com", TTL: 3600, SystemRecord: true},
		{ID: 2, Name: "www", Type: "A", Content: "127.0.0.1", TTL: 600},
		{ID: 3, Name: "", Type: "MX", Content: "mx.example.com", TTL: 600, Priority: 10},
	}

	tests := []struct {
		name       string
		expression string
		wantIDs    []int64
	}{
		{
			name:       "type field",
			expression: `type == "A"`,
			wantIDs:    []int64{2},
		},
		{
			name:       "type through builtin",
			expression: `lower(type) == "mx"`,
			wantIDs:    []int64{3},
		},
		{
			name:       "type membership",
			expression: `type in ["A", "MX"] && !system_record`,
			wantIDs:    []int64{2, 3},
		},
		{
			name:       "content suffix",
			expression: `content endsWith ".com" && ttl < 3600`,
			wantIDs:    []int64{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := Apply(f, records)
			require.NoError(t, err)

			ids := make([]int64, 0, len(matched))
			for _, r := range matched {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMatchEvaluationError(t *testing.T) {
	f, err := Compile(`daysSince(expires_at) > 1`)
	require.NoError(t, err)

	_, err = f.Match(dnsimple.Domain{Name: "never-expires.com"})
	require.Error(t, err)

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "daysSince(expires_at) > 1", evalErr.Expression)
}

func TestMatchNonObject(t *testing.T) {
	f, err := Compile(`true`)
	require.NoError(t, err)

	_, err = f.Match([]int{1, 2})
	assert.Error(t, err)
}

func TestDaysSince(t *testing.T) {
	f, err := Compile(`daysSince(created_at) >= 6 && daysSince(created_at) <= 7`)
	require.NoError(t, err)

	ok, err := f.Match(dnsimple.Zone{Name: "example.com", CreatedAt: time.Now().Add(-7*24*time.Hour + time.Hour)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompileUsesCache(t *testing.T) {
	expression := `name == "cached.example"`
	first, err := Compile(expression)
	require.NoError(t, err)

	second, err := Compile(expression)
	require.NoError(t, err)
	assert.Same(t, first.program, second.program)
	assert.Equal(t, expression, second.String())
}

func TestProgramCacheEviction(t *testing.T) {
	cache := newProgramCache(2)

	a, err := Compile(`id == 1`)
	require.NoError(t, err)
	b, err := Compile(`id == 2`)
	require.NoError(t, err)
	c, err := Compile(`id == 3`)
	require.NoError(t, err)

	cache.Put("a", a.program)
	cache.Put("b", b.program)

	// touch a so that b is the oldest
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", c.program)
	assert.Equal(t, 2, cache.Len())

	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}
