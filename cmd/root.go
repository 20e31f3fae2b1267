package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/config"
	"github.com/s0up4200/dnsimple/dnsimple"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	tokenStore config.TokenStore = config.DefaultStore()

	// Global flags
	accountID    string
	sandbox      bool
	outputFormat string
	jqQuery      string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dnsimple",
	Short: "Manage DNSimple domains, zones and webhooks from the command line",
	Long: `dnsimple is a CLI for the DNSimple v2 API. It lists and manages the
domains, DNS zones, zone records and webhooks of an account.

Credentials are read from the config file, DNSIMPLE_* environment variables
or the OS keychain (see 'dnsimple auth login').`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&accountID, "account", "a", "", "account ID (overrides api.account_id)")
	rootCmd.PersistentFlags().BoolVar(&sandbox, "sandbox", false, "use the sandbox endpoint")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table or json")
	rootCmd.PersistentFlags().StringVar(&jqQuery, "jq", "", "jq expression applied to JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initializeApp loads the configuration and applies the global flags to it
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("sandbox") {
		cfg.API.Sandbox = sandbox
	}
	if accountID != "" {
		cfg.API.AccountID = accountID
	}
	if outputFormat != "" {
		if outputFormat != "table" && outputFormat != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}
	if jqQuery != "" {
		cfg.Output.Format = "json"
	}

	logger = setupLogger(os.Stderr, cfg.Logging, verbose)
	return nil
}

// setupLogger builds the logger described by cfg, writing to out. debug
// raises the level to debug whatever the configured one is.
func setupLogger(out io.Writer, cfg config.LoggingConfig, debug bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !cfg.Color || !isTerminal(out),
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// newClient builds an API client from the loaded configuration. The keychain
// is consulted when no token is configured.
func newClient() (*dnsimple.Client, error) {
	if err := cfg.LoadToken(tokenStore); err != nil {
		logger.Warn().Err(err).Msg("Failed to read token from keychain")
	}

	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	opts := append(cfg.API.ClientOptions(), dnsimple.WithLogger(logger))
	client, err := dnsimple.NewClient(creds, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create DNSimple client: %w", err)
	}
	return client, nil
}

// requireAccount returns the account every account-scoped command works on
func requireAccount() (string, error) {
	if cfg.API.AccountID == "" {
		return "", fmt.Errorf("account ID is required: pass --account or set api.account_id")
	}
	return cfg.API.AccountID, nil
}
