package cli

import (
	"fmt"
	"os"

	"github.com/atuluttam/productpersist/internal/config"
	"github.com/atuluttam/productpersist/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default persistence unit config",
	Long:  "Creates a productpersist.yml file holding the built-in persistence unit settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.FileExists(configPath) {
			utils.PrintWarning("%s already exists", configPath)
			return nil
		}

		data, err := yaml.Marshal(config.DefaultUnitInfo())
		if err != nil {
			return fmt.Errorf("failed to generate config: %w", err)
		}

		if err := os.WriteFile(configPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		utils.PrintSuccess("Initialized persistence unit config")
		utils.PrintInfo("Created %s", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
