package modinstall

import (
	"github.com/arthur-debert/modinstall/pkg/config"
	"github.com/arthur-debert/modinstall/pkg/installer"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(flagOverrides(cmd.Flags(), map[string]string{"config": config.KeyConfig}))
			if err != nil {
				return err
			}
			return runList(cmd, settings.Config)
		},
	}
	cmd.Flags().StringP("config", "c", "", MsgFlagConfig)
	return cmd
}

func runList(cmd *cobra.Command, catalogPath string) error {
	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	printer, err := newPrinter(cmd, false)
	if err != nil {
		return err
	}
	return printer.ModuleList(installer.Names(catalog.Modules), catalog.Modules)
}
