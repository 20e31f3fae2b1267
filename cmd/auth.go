package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/config"
	"github.com/s0up4200/dnsimple/dnsimple"
)

var (
	loginToken string
	skipVerify bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Store API tokens in the OS keychain",
	Long: `Store API tokens in the OS keychain.

Tokens are kept per endpoint: production, sandbox, or the host of a custom
api.base_url. A token in the config file or DNSIMPLE_API_TOKEN takes precedence.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save an API token",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved API token",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where credentials come from",
	Args:  cobra.NoArgs,
	RunE:  runAuthStatus,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)

	authLoginCmd.Flags().StringVar(&loginToken, "token", "", "API token (read from stdin when omitted)")
	authLoginCmd.Flags().BoolVar(&skipVerify, "no-verify", false, "save the token without checking it against the API")
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	token := strings.TrimSpace(loginToken)
	if token == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "API token: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		return fmt.Errorf("no token given")
	}

	profile := cfg.API.Profile()
	if !skipVerify {
		client, err := dnsimple.NewClient(dnsimple.NewTokenAuth(token), append(cfg.API.ClientOptions(), dnsimple.WithLogger(logger))...)
		if err != nil {
			return err
		}
		if _, err := client.Identity.Whoami(cmd.Context()); err != nil {
			return fmt.Errorf("token rejected by %s: %w", cfg.API.Endpoint(), err)
		}
	}

	if err := tokenStore.SetToken(profile, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	logger.Debug().Str("profile", profile).Msg("Saved token to keychain")
	fmt.Fprintf(cmd.OutOrStdout(), "Saved token for %s\n", profile)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	profile := cfg.API.Profile()
	err := tokenStore.DeleteToken(profile)
	if errors.Is(err, config.ErrTokenNotFound) {
		fmt.Fprintf(cmd.OutOrStdout(), "No saved token for %s\n", profile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed token for %s\n", profile)
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	profile := cfg.API.Profile()
	fmt.Fprintf(out, "Endpoint: %s\n", cfg.API.Endpoint())

	switch {
	case cfg.API.Token != "":
		fmt.Fprintln(out, "Credentials: API token from config or environment")
	case cfg.API.Username != "" && cfg.API.Password != "":
		fmt.Fprintf(out, "Credentials: username and password for %s\n", cfg.API.Username)
	default:
		_, err := tokenStore.GetToken(profile)
		switch {
		case err == nil:
			fmt.Fprintf(out, "Credentials: API token from keychain (%s)\n", profile)
		case errors.Is(err, config.ErrTokenNotFound):
			fmt.Fprintln(out, "Credentials: none")
		default:
			return fmt.Errorf("failed to read keychain: %w", err)
		}
	}
	return nil
}
