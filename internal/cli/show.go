package cli

import (
	"fmt"
	"strings"

	"github.com/atuluttam/productpersist"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persistence unit",
	Long:  "Shows the resolved persistence unit settings and the entities it manages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := loadUnitInfo(configPath)
		if err != nil {
			return err
		}

		managed, err := productpersist.GetGlobalRegistry().Select(info.Entities)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
		fmt.Fprintf(out, "Persistence Unit: %s\n", info.UnitName)
		fmt.Fprintln(out, strings.Repeat("=", 60))

		fmt.Fprintf(out, "\n  database:     %s (%s)\n", info.DatabaseURL, info.Driver())
		fmt.Fprintf(out, "  schema mode:  %s\n", info.SchemaMode)
		fmt.Fprintf(out, "  show sql:     %t\n", info.ShowSQL)
		fmt.Fprintf(out, "  pool:         max_open=%d max_idle=%d lifetime=%s\n", info.MaxOpenConns, info.MaxIdleConns, info.ConnMaxLifetime)

		fmt.Fprintln(out, "\n✓ Managed Entities:")
		for _, e := range managed.All() {
			fmt.Fprintf(out, "  %s (%s)\n", e.Name, e.Type)
		}

		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
