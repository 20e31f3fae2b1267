package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/dnsimple"
)

var (
	zoneListFlags   listFlags
	recordListFlags listFlags

	// Record flags
	recordName     string
	recordType     string
	recordContent  string
	recordTTL      int
	recordPriority int
	recordRegions  []string
)

var zonesCmd = &cobra.Command{
	Use:     "zones",
	Aliases: []string{"zone"},
	Short:   "Manage DNS zones and their records",
}

var zonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List zones",
	Args:  cobra.NoArgs,
	RunE:  runZonesList,
}

var zonesActivateCmd = &cobra.Command{
	Use:   "activate <zone>",
	Short: "Activate DNS resolution for a zone",
	Args:  cobra.ExactArgs(1),
	RunE:  runZonesActivate,
}

var recordsCmd = &cobra.Command{
	Use:     "records",
	Aliases: []string{"record"},
	Short:   "Manage the records of a zone",
}

var recordsListCmd = &cobra.Command{
	Use:   "list <zone>",
	Short: "List zone records",
	Long: `List the records of a zone.

  dnsimple zones records list example.com --filter type=MX --sort content:asc`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsList,
}

var recordsCreateCmd = &cobra.Command{
	Use:   "create <zone>",
	Short: "Create a zone record",
	Long: `Create a record in a zone. An empty --name creates the record at the apex.

  dnsimple zones records create example.com --name www --type A --content 192.0.2.1 --ttl 600`,
	Args: cobra.ExactArgs(1),
	RunE: runRecordsCreate,
}

var recordsUpdateCmd = &cobra.Command{
	Use:   "update <zone> <record-id>",
	Short: "Update a zone record",
	Long:  `Update a zone record. Only the flags given are changed.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runRecordsUpdate,
}

var recordsDeleteCmd = &cobra.Command{
	Use:   "delete <zone> <record-id>",
	Short: "Delete a zone record",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecordsDelete,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	zonesCmd.AddCommand(zonesListCmd, zonesActivateCmd, recordsCmd)
	recordsCmd.AddCommand(recordsListCmd, recordsCreateCmd, recordsUpdateCmd, recordsDeleteCmd)

	zoneListFlags.register(zonesListCmd)
	recordListFlags.register(recordsListCmd)

	for _, c := range []*cobra.Command{recordsCreateCmd, recordsUpdateCmd} {
		c.Flags().StringVar(&recordName, "name", "", "record name, relative to the zone")
		c.Flags().StringVar(&recordType, "type", "", "record type (A, AAAA, CNAME, MX, TXT, ...)")
		c.Flags().StringVar(&recordContent, "content", "", "record content")
		c.Flags().IntVar(&recordTTL, "ttl", 0, "time to live in seconds")
		c.Flags().IntVar(&recordPriority, "priority", 0, "record priority (MX, SRV)")
		c.Flags().StringArrayVar(&recordRegions, "region", nil, "region the record is served from (repeatable)")
	}
	_ = recordsCreateCmd.MarkFlagRequired("type")
	_ = recordsCreateCmd.MarkFlagRequired("content")
}

func runZonesList(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	opts, err := zoneListFlags.options()
	if err != nil {
		return err
	}

	zones, pagination, err := listPages(cmd.Context(), zoneListFlags.all, zoneListFlags.page,
		func(ctx context.Context, page int) (*dnsimple.PaginatedResponse[dnsimple.Zone], error) {
			return client.Zones.List(ctx, account, &dnsimple.ZoneListOptions{
				ListOptions: forPage(opts, zoneListFlags.perPage, page),
			})
		})
	if err != nil {
		return err
	}

	zones, err = applyWhere(zoneListFlags.where, zones)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), zones, func() error {
		out := cmd.OutOrStdout()
		if len(zones) == 0 {
			fmt.Fprintln(out, "No zones found.")
			return nil
		}
		rows := make([][]any, 0, len(zones))
		for _, z := range zones {
			rows = append(rows, []any{z.ID, z.Name, yesNo(z.Active), yesNo(z.Reverse), yesNo(z.Secondary)})
		}
		if err := writeTable(out, []any{"ID", "NAME", "ACTIVE", "REVERSE", "SECONDARY"}, rows); err != nil {
			return err
		}
		printPagination(cmd, pagination)
		return nil
	})
}

func runZonesActivate(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Zones.ActivateDNS(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}

	if resp.IsEmpty {
		logger.Debug().Str("zone", args[0]).Msg("Zone activation returned no content")
		return render(cmd.OutOrStdout(), map[string]any{"name": args[0], "active": true}, func() error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "DNS for %s is active\n", args[0])
			return err
		})
	}
	return render(cmd.OutOrStdout(), resp.Data, func() error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Activated DNS for %s\n", resp.Data.Name)
		return err
	})
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	opts, err := recordListFlags.options()
	if err != nil {
		return err
	}

	records, pagination, err := listPages(cmd.Context(), recordListFlags.all, recordListFlags.page,
		func(ctx context.Context, page int) (*dnsimple.PaginatedResponse[dnsimple.ZoneRecord], error) {
			return client.Zones.ListRecords(ctx, account, args[0], &dnsimple.ZoneRecordListOptions{
				ListOptions: forPage(opts, recordListFlags.perPage, page),
			})
		})
	if err != nil {
		return err
	}

	records, err = applyWhere(recordListFlags.where, records)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), records, func() error {
		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No records found.")
			return nil
		}
		rows := make([][]any, 0, len(records))
		for _, r := range records {
			name := r.Name
			if name == "" {
				name = "@"
			}
			rows = append(rows, []any{r.ID, name, r.Type, r.TTL, r.Priority, r.Content})
		}
		if err := writeTable(out, []any{"ID", "NAME", "TYPE", "TTL", "PRIO", "CONTENT"}, rows); err != nil {
			return err
		}
		printPagination(cmd, pagination)
		return nil
	})
}

// recordAttributes returns the attributes given on the command line. Only
// flags that were set are included; create always sends a name.
func recordAttributes(cmd *cobra.Command, create bool) dnsimple.ZoneRecordAttributes {
	var attrs dnsimple.ZoneRecordAttributes
	flags := cmd.Flags()
	if create || flags.Changed("name") {
		name := recordName
		attrs.Name = &name
	}
	if flags.Changed("type") {
		attrs.Type = recordType
	}
	if flags.Changed("content") {
		attrs.Content = recordContent
	}
	if flags.Changed("ttl") {
		attrs.TTL = recordTTL
	}
	if flags.Changed("priority") {
		attrs.Priority = recordPriority
	}
	if flags.Changed("region") {
		attrs.Regions = recordRegions
	}
	return attrs
}

func runRecordsCreate(cmd *cobra.Command, args []string) error {
	account, err := requireAccount()
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.Zones.CreateRecord(cmd.Context(), account, args[0], recordAttributes(cmd, true))
	if err != nil {
		return err
	}

	logger.Info().Str("zone", args[0]).Int64("id", resp.Data.ID).Msg("Record created")
	return render(cmd.OutOrStdout(), resp.Data, func() error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Created %s record %d in %s\n", resp.Data.Type, resp.Data.ID, args[0])
		return err
	})
}

func runRecordsUpdate(cmd *cobra.Command, args []string) error {
	recordID, err := parseID(args[1])
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

	resp, err := client.Zones.UpdateRecord(cmd.Context(), account, args[0], recordID, recordAttributes(cmd, false))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), resp.Data, func() error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated record %d in %s\n", resp.Data.ID, args[0])
		return err
	})
}

func runRecordsDelete(cmd *cobra.Command, args []string) error {
	recordID, err := parseID(args[1])
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

	if _, err := client.Zones.DeleteRecord(cmd.Context(), account, args[0], recordID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d from %s\n", recordID, args[0])
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q: must be a positive integer", s)
	}
	return id, nil
}
