package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var webhooksCmd = &cobra.Command{
	Use:     "webhooks",
	Aliases: []string{"webhook"},
	Short:   "Manage account webhooks",
}

var webhooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List webhooks",
	Args:  cobra.NoArgs,
	RunE:  runWebhooksList,
}

var webhooksCreateCmd = &cobra.Command{
	Use:   "create <url>",
	Short: "Register a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhooksCreate,
}

var webhooksDeleteCmd = &cobra.Command{
	Use:   "delete <webhook-id>",
	Short: "Delete a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhooksDelete,
}

func init() {
	rootCmd.AddCommand(webhooksCmd)
	webhooksCmd.AddCommand(webhooksListCmd, webhooksCreateCmd, webhooksDeleteCmd)
}

func runWebhooksList(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Webhooks.List(cmd.Context(), account)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), resp.Data, func() error {
		out := cmd.OutOrStdout()
		if len(resp.Data) == 0 {
			fmt.Fprintln(out, "No webhooks found.")
			return nil
		}
		rows := make([][]any, 0, len(resp.Data))
		for _, w := range resp.Data {
			rows = append(rows, []any{w.ID, w.URL})
		}
		return writeTable(out, []any{"ID", "URL"}, rows)
	})
}

func runWebhooksCreate(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Webhooks.Create(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}

	logger.Info().Int64("id", resp.Data.ID).Str("url", resp.Data.URL).Msg("Webhook created")
	return render(cmd.OutOrStdout(), resp.Data, func() error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Created webhook %d for %s\n", resp.Data.ID, resp.Data.URL)
		return err
	})
}

func runWebhooksDelete(cmd *cobra.Command, args []string) error {
	webhookID, err := parseID(args[0])
	if err != nil {
		return err
	}
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	if _, err := client.Webhooks.Delete(cmd.Context(), account, webhookID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted webhook %d\n", webhookID)
	return nil
}
