package modinstall

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/modinstall/pkg/config"
	"github.com/arthur-debert/modinstall/pkg/display"
	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/executor"
	"github.com/arthur-debert/modinstall/pkg/hints"
	"github.com/arthur-debert/modinstall/pkg/installer"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/arthur-debert/modinstall/pkg/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// installFlags maps install flag names to settings keys
var installFlags = map[string]string{
	"module":      config.KeyModule,
	"install-dir": config.KeyInstallDir,
	"config":      config.KeyConfig,
}

func newInstallCmd(verbosity *int) *cobra.Command {
	var (
		force       bool
		listModules bool
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(flagOverrides(cmd.Flags(), installFlags))
			if err != nil {
				return err
			}
			if listModules {
				return runList(cmd, settings.Config)
			}
			if force {
				logger := logging.GetLogger("cli")
				logger.Debug().Msg(MsgDebugForceIgnored)
			}
			return runInstall(cmd, settings, *verbosity)
		},
	}

	cmd.Flags().StringP("module", "m", "", MsgFlagModule)
	cmd.Flags().StringP("install-dir", "d", "", MsgFlagInstallDir)
	cmd.Flags().StringP("config", "c", "", MsgFlagConfig)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&listModules, "list-modules", false, MsgFlagListModules)

	_ = cmd.RegisterFlagCompletionFunc("module", moduleNamesCompletion)
	return cmd
}

// flagOverrides collects explicitly set flags as settings overrides
func flagOverrides(flags *pflag.FlagSet, names map[string]string) map[string]interface{} {
	overrides := map[string]interface{}{}
	for flag, key := range names {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

func newPrinter(cmd *cobra.Command, verbose bool) (*display.Printer, error) {
	return display.New(display.Options{
		Out:     cmd.OutOrStdout(),
		ErrOut:  cmd.ErrOrStderr(),
		Color:   useColor(cmd, cmd.OutOrStdout()),
		Verbose: verbose,
	})
}

func runInstall(cmd *cobra.Command, settings *config.Settings, verbosity int) error {
	logger := logging.GetLogger("cli")
	desc := platform.Detect()
	env := platform.CaptureEnvironment()

	catalog, err := config.LoadCatalog(settings.Config)
	if err != nil {
		return err
	}

	installRoot, err := filepath.Abs(env.ExpandHome(settings.InstallDir))
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrInvalidInput, "invalid install directory %s", settings.InstallDir)
	}

	printer, err := newPrinter(cmd, verbosity >= 1)
	if err != nil {
		return err
	}
	printer.Banner(installRoot)

	selected, err := installer.Select(catalog.Modules, settings.Module)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		printer.NoModules()
		return nil
	}

	logger.Info().
		Str("platform", desc.String()).
		Str("source_root", catalog.SourceRoot()).
		Str("install_root", installRoot).
		Int("modules", len(selected)).
		Msg("Starting installation")

	exec := executor.New(executor.Options{
		SourceRoot:   catalog.SourceRoot(),
		InstallRoot:  installRoot,
		Platform:     desc,
		Env:          env,
		HelperName:   settings.HelperName,
		BackupSuffix: settings.BackupSuffix,
	})
	inst := installer.New(installer.Options{
		InstallRoot: installRoot,
		Executor:    exec,
		Reporter:    printer,
	})

	result, err := inst.Run(cmd.Context(), selected)
	if err != nil {
		return err
	}
	printer.Summary(result)

	if !result.Success() {
		return ErrIncomplete
	}
	return printUsageHints(cmd)
}

func printUsageHints(cmd *cobra.Command) error {
	catalog, err := hints.New(hintsRenderer(cmd))
	if err != nil {
		return err
	}
	text, err := catalog.Render(hints.UsageTopic)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// moduleNamesCompletion completes --module from the configured catalog
func moduleNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	settings, err := config.LoadSettings(flagOverrides(cmd.Flags(), installFlags))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	catalog, err := config.LoadCatalog(settings.Config)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return append(installer.Names(catalog.Modules), installer.ModeAll), cobra.ShellCompDirectiveNoFileComp
}
