package modinstall

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/modinstall/internal/version"
	"github.com/arthur-debert/modinstall/pkg/display"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ErrIncomplete is returned when an install ran but some operations failed.
// The details have already been printed by the time it is returned.
var ErrIncomplete = errors.New(MsgErrIncomplete)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int
	var style string

	rootCmd := &cobra.Command{
		Use:     "modinstall",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			if _, err := display.ParseFormat(style); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Str("style", style).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&style, "style", display.FormatAuto.String(), MsgFlagStyle)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd(&verbosity))
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInitConfigCmd())
	rootCmd.AddCommand(newHintsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if !errors.Is(err, ErrIncomplete) {
		reportError(rootCmd, err)
	}
	return 1
}

func reportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	p, perr := display.New(display.Options{Out: w, Color: useColor(cmd, w)})
	if perr != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	p.Error(err)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
