package modinstall

import (
	"fmt"

	"github.com/arthur-debert/modinstall/pkg/sampleconfig"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	var (
		format string
		write  string
	)

	cmd := &cobra.Command{
		Use:     "init-config",
		Short:   MsgInitConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if write == "" {
				content, err := sampleconfig.Generate(format)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(content)
				return err
			}

			f := format
			if !cmd.Flags().Changed("format") {
				f = ""
			}
			written, err := sampleconfig.Write(write, f)
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, write)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, write)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", sampleconfig.FormatJSON, MsgFlagFormat)
	cmd.Flags().StringVarP(&write, "write", "w", "", MsgFlagWrite)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{sampleconfig.FormatJSON, sampleconfig.FormatYAML, sampleconfig.FormatTOML},
		cobra.ShellCompDirectiveNoFileComp,
	))
	return cmd
}
