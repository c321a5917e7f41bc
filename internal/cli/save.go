package cli

import (
	"github.com/atuluttam/productpersist"
	"github.com/atuluttam/productpersist/internal/app"
	"github.com/atuluttam/productpersist/internal/persistence"
	"github.com/atuluttam/productpersist/internal/utils"
	"github.com/spf13/cobra"
)

var (
	saveID    int64
	saveName  string
	saveProps []string
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Persist one product",
	Long:  "Creates the session factory, persists one product in a single transaction and closes everything again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := loadUnitInfo(configPath)
		if err != nil {
			return err
		}

		props, err := parseProperties(saveProps)
		if err != nil {
			return err
		}

		product := app.DefaultProduct()
		product.ID = saveID
		product.Name = saveName

		utils.PrintInfo("Using persistence unit %s (%s)", info.UnitName, info.Driver())

		provider := persistence.NewProvider(productpersist.GetGlobalRegistry())
		provider.SetLogOutput(cmd.ErrOrStderr())
		return app.SaveProduct(provider, info, props, product, cmd.OutOrStdout())
	},
}

func init() {
	defaults := app.DefaultProduct()
	saveCmd.Flags().Int64Var(&saveID, "id", defaults.ID, "product identifier")
	saveCmd.Flags().StringVar(&saveName, "name", defaults.Name, "product name")
	saveCmd.Flags().StringArrayVar(&saveProps, "set", nil, "override a unit setting, as key=value (repeatable)")
	rootCmd.AddCommand(saveCmd)
}
