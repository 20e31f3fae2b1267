package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who the configured credentials belong to",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var accountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"account"},
	Short:   "List the accounts the credentials can access",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long:  `List the accounts a user token can access. Account tokens only see their own account.`,
	Args:  cobra.NoArgs,
	RunE:  runAccountsList,
}

func init() {
	rootCmd.AddCommand(whoamiCmd, accountsCmd)
	accountsCmd.AddCommand(accountsListCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Identity.Whoami(cmd.Context())
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), resp.Data, func() error {
		out := cmd.OutOrStdout()
		if resp.Data.User != nil {
			fmt.Fprintf(out, "User:    %s (ID: %d)\n", resp.Data.User.Email, resp.Data.User.ID)
		}
		if resp.Data.Account != nil {
			fmt.Fprintf(out, "Account: %s (ID: %d, plan: %s)\n",
				resp.Data.Account.Email, resp.Data.Account.ID, resp.Data.Account.PlanIdentifier)
		}
		fmt.Fprintf(out, "Rate limit: %d of %d remaining, resets %s\n",
			resp.RateLimit.Remaining, resp.RateLimit.Limit, resp.RateLimit.ResetTime().Local().Format("15:04:05"))
		return nil
	})
}

func runAccountsList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Accounts.List(cmd.Context())
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), resp.Data, func() error {
		rows := make([][]any, 0, len(resp.Data))
		for _, a := range resp.Data {
			rows = append(rows, []any{a.ID, a.Email, a.PlanIdentifier, yesNo(a.Reseller)})
		}
		return writeTable(cmd.OutOrStdout(), []any{"ID", "EMAIL", "PLAN", "RESELLER"}, rows)
	})
}
