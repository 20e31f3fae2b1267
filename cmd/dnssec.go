package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/dnsimple"
)

var dsRecordListFlags listFlags

var dnssecCmd = &cobra.Command{
	Use:   "dnssec",
	Short: "Manage DNSSEC for a domain",
}

var dnssecStatusCmd = &cobra.Command{
	Use:   "status <domain>",
	Short: "Show whether DNSSEC is enabled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDNSSEC(cmd, args[0], func(ctx context.Context, c *dnsimple.Client, account string) (*dnsimple.DNSSEC, error) {
			resp, err := c.Domains.GetDNSSEC(ctx, account, args[0])
			if err != nil {
				return nil, err
			}
			return &resp.Data, nil
		})
	},
}

var dnssecEnableCmd = &cobra.Command{
	Use:   "enable <domain>",
	Short: "Enable DNSSEC signing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDNSSEC(cmd, args[0], func(ctx context.Context, c *dnsimple.Client, account string) (*dnsimple.DNSSEC, error) {
			resp, err := c.Domains.EnableDNSSEC(ctx, account, args[0])
			if err != nil {
				return nil, err
			}
			return &resp.Data, nil
		})
	},
}

var dnssecDisableCmd = &cobra.Command{
	Use:   "disable <domain>",
	Short: "Disable DNSSEC signing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDNSSEC(cmd, args[0], func(ctx context.Context, c *dnsimple.Client, account string) (*dnsimple.DNSSEC, error) {
			if _, err := c.Domains.DisableDNSSEC(ctx, account, args[0]); err != nil {
				return nil, err
			}
			return &dnsimple.DNSSEC{Enabled: false}, nil
		})
	},
}

var dsRecordsCmd = &cobra.Command{
	Use:   "ds-records <domain>",
	Short: "List the delegation signer records of a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runDSRecords,
}

func init() {
	domainsCmd.AddCommand(dnssecCmd, dsRecordsCmd)
	dnssecCmd.AddCommand(dnssecStatusCmd, dnssecEnableCmd, dnssecDisableCmd)

	dsRecordListFlags.register(dsRecordsCmd)
}

func runDNSSEC(cmd *cobra.Command, domain string, call func(context.Context, *dnsimple.Client, string) (*dnsimple.DNSSEC, error)) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	status, err := call(cmd.Context(), client, account)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), status, func() error {
		state := "disabled"
		if status.Enabled {
			state = "enabled"
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "DNSSEC for %s is %s\n", domain, state)
		return err
	})
}

func runDSRecords(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	opts, err := dsRecordListFlags.options()
	if err != nil {
		return err
	}

	records, pagination, err := listPages(cmd.Context(), dsRecordListFlags.all, dsRecordListFlags.page,
		func(ctx context.Context, page int) (*dnsimple.PaginatedResponse[dnsimple.DelegationSignerRecord], error) {
			return client.Domains.ListDSRecords(ctx, account, args[0], &dnsimple.DSRecordListOptions{
				ListOptions: forPage(opts, dsRecordListFlags.perPage, page),
			})
		})
	if err != nil {
		return err
	}

	records, err = applyWhere(dsRecordListFlags.where, records)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), records, func() error {
		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No DS records found.")
			return nil
		}
		rows := make([][]any, 0, len(records))
		for _, r := range records {
			rows = append(rows, []any{r.ID, r.Keytag, r.Algorithm, r.DigestType, r.Digest})
		}
		if err := writeTable(out, []any{"ID", "KEYTAG", "ALGORITHM", "DIGEST-TYPE", "DIGEST"}, rows); err != nil {
			return err
		}
		printPagination(cmd, pagination)
		return nil
	})
}
