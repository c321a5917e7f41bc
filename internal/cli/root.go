package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "productpersist",
	Short:         "Save a product through a programmatically configured GORM unit",
	Long:          "productpersist builds a persistence unit from a static config, opens a session and stores one product in a single transaction",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "productpersist.yml", "path to the persistence unit config (built-in defaults when missing)")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
