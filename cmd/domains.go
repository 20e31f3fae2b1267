package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/dnsimple"
)

var domainListFlags listFlags

// domainsCmd groups the domain commands
var domainsCmd = &cobra.Command{
	Use:     "domains",
	Aliases: []string{"domain"},
	Short:   "Manage the domains of an account",
}

var domainsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List domains",
	Long: `List the domains of the account.

Server-side filters and sorting map to the API's query parameters:
  dnsimple domains list --filter name_like=example --sort expiration:asc

--where filters the fetched records locally:
  dnsimple domains list --all --where 'expires_at != nil && daysUntil(expires_at) < 30'
  dnsimple domains list --where 'lower(name) endsWith ".io" && !auto_renew'`,
	Args: cobra.NoArgs,
	RunE: runDomainsList,
}

var domainsGetCmd = &cobra.Command{
	Use:   "get <domain>",
	Short: "Show a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsGet,
}

var domainsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Add a domain to the account",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsCreate,
}

var domainsDeleteCmd = &cobra.Command{
	Use:   "delete <domain>",
	Short: "Delete a domain from the account",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsDelete,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
	domainsCmd.AddCommand(domainsListCmd, domainsGetCmd, domainsCreateCmd, domainsDeleteCmd)

	domainListFlags.register(domainsListCmd)
}

func runDomainsList(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	opts, err := domainListFlags.options()
	if err != nil {
		return err
	}

	domains, pagination, err := listPages(cmd.Context(), domainListFlags.all, domainListFlags.page,
		func(ctx context.Context, page int) (*dnsimple.PaginatedResponse[dnsimple.Domain], error) {
			return client.Domains.List(ctx, account, &dnsimple.DomainListOptions{
				ListOptions: forPage(opts, domainListFlags.perPage, page),
			})
		})
	if err != nil {
		return err
	}

	domains, err = applyWhere(domainListFlags.where, domains)
	if err != nil {
		return err
	}

	logger.Debug().Int("count", len(domains)).Str("account", account).Msg("Listed domains")
	return render(cmd.OutOrStdout(), domains, func() error {
		return printDomains(cmd, domains, pagination)
	})
}

func printDomains(cmd *cobra.Command, domains []dnsimple.Domain, pagination *dnsimple.PaginationData) error {
	out := cmd.OutOrStdout()
	if len(domains) == 0 {
		fmt.Fprintln(out, "No domains found.")
		return nil
	}

	rows := make([][]any, 0, len(domains))
	for _, d := range domains {
		expires := d.ExpiresOn()
		if expires == "" {
			expires = "-"
		}
		rows = append(rows, []any{d.ID, d.Name, d.State, yesNo(d.AutoRenew), expires})
	}
	if err := writeTable(out, []any{"ID", "NAME", "STATE", "AUTO-RENEW", "EXPIRES"}, rows); err != nil {
		return err
	}
	printPagination(cmd, pagination)
	return nil
}

// printPagination prints the page footer of a single-page listing
func printPagination(cmd *cobra.Command, pagination *dnsimple.PaginationData) {
	if pagination == nil {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d total)\n",
		pagination.CurrentPage, pagination.TotalPages, pagination.TotalEntries)
	if pagination.HasMorePages() {
		fmt.Fprintln(cmd.OutOrStdout(), "Use --page or --all to see more.")
	}
}

func runDomainsGet(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Domains.Get(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), resp.Data, func() error {
		return printDomainDetails(cmd, resp.Data)
	})
}

func printDomainDetails(cmd *cobra.Command, d dnsimple.Domain) error {
	rows := [][]any{
		{"ID", d.ID},
		{"Name", d.Name},
		{"Unicode name", d.UnicodeName},
		{"State", d.State},
		{"Auto-renew", yesNo(d.AutoRenew)},
		{"Private WHOIS", yesNo(d.PrivateWhois)},
		{"Created", d.CreatedAt.Format("2006-01-02 15:04")},
	}
	if d.ExpiresAt != nil {
		rows = append(rows, []any{"Expires", d.ExpiresAt.Format("2006-01-02 15:04")})
	}
	return writeTable(cmd.OutOrStdout(), []any{"FIELD", "VALUE"}, rows)
}

func runDomainsCreate(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Domains.Create(cmd.Context(), account, dnsimple.DomainAttributes{Name: args[0]})
	if err != nil {
		return err
	}

	logger.Info().Str("domain", resp.Data.Name).Int64("id", resp.Data.ID).Msg("Domain created")
	return render(cmd.OutOrStdout(), resp.Data, func() error {
		return printDomainDetails(cmd, resp.Data)
	})
}

func runDomainsDelete(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	if _, err := client.Domains.Delete(cmd.Context(), account, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted domain %s\n", args[0])
	return nil
}
