package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/s0up4200/dnsimple/config"
	"github.com/s0up4200/dnsimple/dnsimple"
)

func writeAPIResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set(dnsimple.HeaderRateLimit, "2400")
	w.Header().Set(dnsimple.HeaderRateLimitRemaining, "2399")
	w.Header().Set(dnsimple.HeaderRateLimitReset, "1450451976")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// resetFlags restores every flag of c and its children to its default
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// runCLI executes the root command against a test API server
func runCLI(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	keyring.MockInit()
	tokenStore = config.NewKeyringStore("")

	t.Setenv("HOME", t.TempDir())
	t.Setenv("DNSIMPLE_API_BASE_URL", server.URL)
	t.Setenv("DNSIMPLE_API_TOKEN", "cli-token")
	t.Setenv("DNSIMPLE_LOGGING_LEVEL", "error")

	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.LoggingConfig
		debug     bool
		wantLevel zerolog.Level
	}{
		{name: "configured level", cfg: config.LoggingConfig{Level: "warn", Format: "json"}, wantLevel: zerolog.WarnLevel},
		{name: "upper case level", cfg: config.LoggingConfig{Level: "ERROR", Format: "json"}, wantLevel: zerolog.ErrorLevel},
		{name: "empty level", cfg: config.LoggingConfig{Format: "json"}, wantLevel: zerolog.InfoLevel},
		{name: "verbose raises level", cfg: config.LoggingConfig{Level: "error", Format: "json"}, debug: true, wantLevel: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := setupLogger(&buf, tt.cfg, tt.debug)
			assert.Equal(t, tt.wantLevel, l.GetLevel())
		})
	}
}

func TestSetupLoggerFormats(t *testing.T) {
	var jsonOut bytes.Buffer
	l := setupLogger(&jsonOut, config.LoggingConfig{Level: "info", Format: "json"}, true)
	l.Debug().Str("url", "https://api.dnsimple.com/v2/whoami").Msg("DNSimple API request")

	var event map[string]any
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &event))
	assert.Equal(t, "debug", event["level"])
	assert.Equal(t, "DNSimple API request", event["message"])

	var consoleOut bytes.Buffer
	l = setupLogger(&consoleOut, config.LoggingConfig{Level: "info", Format: "console", Color: true}, false)
	l.Info().Msg("hello")
	l.Debug().Msg("hidden")

	assert.Contains(t, consoleOut.String(), "hello")
	assert.NotContains(t, consoleOut.String(), "hidden")
	// a buffer is not a terminal
	assert.False(t, strings.Contains(consoleOut.String(), "\x1b["))
}

func TestDomainsListCommandAllPages(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/1010/domains", r.URL.Path)
		assert.Equal(t, "Bearer cli-token", r.Header.Get("Authorization"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()
		writeAPIResponse(w, http.StatusOK, fmt.Sprintf(
			`{"data":[{"id":%d,"name":"example-%d.com","state":"hosted"}],"pagination":{"current_page":%d,"per_page":1,"total_entries":3,"total_pages":3}}`,
			page, page, page))
	}

	out, err := runCLI(t, handler, "domains", "list", "--account", "1010", "--per-page", "1", "--all", "-o", "json")
	require.NoError(t, err)

	var domains []dnsimple.Domain
	require.NoError(t, json.Unmarshal([]byte(out), &domains))
	require.Len(t, domains, 3)
	for i, d := range domains {
		assert.Equal(t, int64(i+1), d.ID)
	}
	assert.Contains(t, queries, "per_page=1&page=2")
}

func TestDomainsListCommandWhereAndJQ(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeAPIResponse(w, http.StatusOK, `{"data":[{"id":1,"name":"a.com","state":"hosted"},{"id":2,"name":"b.io","state":"registered"}],"pagination":{"current_page":1,"per_page":30,"total_entries":2,"total_pages":1}}`)
	}

	out, err := runCLI(t, handler, "domains", "list", "--account", "1010", "--where", `state == "registered"`, "--jq", ".[].name")
	require.NoError(t, err)
	assert.Equal(t, "b.io\n", out)
}

func TestDomainsListCommandWhereHelpers(t *testing.T) {
	soon := time.Now().Add(5 * 24 * time.Hour).UTC().Format(time.RFC3339)
	later := time.Now().Add(200 * 24 * time.Hour).UTC().Format(time.RFC3339)
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeAPIResponse(w, http.StatusOK, fmt.Sprintf(`{"data":[`+
			`{"id":1,"name":"Expiring.IO","state":"registered","expires_at":%q},`+
			`{"id":2,"name":"later.io","state":"registered","expires_at":%q},`+
			`{"id":3,"name":"hosted.io","state":"hosted","expires_at":null},`+
			`{"id":4,"name":"soon.com","state":"registered","expires_at":%q}`+
			`],"pagination":{"current_page":1,"per_page":30,"total_entries":4,"total_pages":1}}`, soon, later, soon))
	}

	out, err := runCLI(t, handler, "domains", "list", "--account", "1010",
		"--where", `lower(name) endsWith ".io" && expires_at != nil && daysUntil(expires_at) < 30`,
		"--jq", ".[].id")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestRecordsListCommandWhereType(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/1010/zones/example.com/records", r.URL.Path)
		writeAPIResponse(w, http.StatusOK, `{"data":[`+
			`{"id":10,"zone_id":"example.com","name":"","type":"SOA","content":"ns1.dnsimple.com","ttl":3600,"system_record":true},`+
			`{"id":11,"zone_id":"example.com","name":"www","type":"A","content":"127.0.0.1","ttl":600},`+
			`{"id":12,"zone_id":"example.com","name":"","type":"MX","content":"mx.example.com","ttl":600,"priority":10}`+
			`],"pagination":{"current_page":1,"per_page":30,"total_entries":3,"total_pages":1}}`)
	}

	out, err := runCLI(t, handler, "zones", "records", "list", "example.com", "--account", "1010",
		"--where", `type == "MX" || name startsWith "ww"`, "--jq", ".[].type")
	require.NoError(t, err)
	assert.Equal(t, "A\nMX\n", out)
}

func TestCommandReportsAPIErrors(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		writeAPIResponse(w, http.StatusNotFound, "{\"message\":\"Domain `nope.com` not found\"}")
	}

	_, err := runCLI(t, handler, "domains", "get", "nope.com", "--account", "1010")
	require.Error(t, err)
	assert.True(t, dnsimple.IsNotFound(err))
	assert.Equal(t, "Domain `nope.com` not found", err.Error())
}

func TestCommandRequiresAccount(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}

	_, err := runCLI(t, handler, "webhooks", "list")
	assert.ErrorContains(t, err, "account ID is required")
}
