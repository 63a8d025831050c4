package modinstall

import (
	"fmt"

	"github.com/arthur-debert/modinstall/pkg/hints"
	"github.com/spf13/cobra"
)

func newHintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hints [topic]",
		Short:   MsgHintsShort,
		Long:    MsgHintsLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := hints.New(hintsRenderer(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, MsgAvailableTopics)
				for _, name := range catalog.Names() {
					fmt.Fprintf(out, MsgTopicItem, name)
				}
				return nil
			}

			text, err := catalog.Render(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}
}

// hintsRenderer uses glamour only when stdout is a color terminal
func hintsRenderer(cmd *cobra.Command) hints.Renderer {
	if useColor(cmd, cmd.OutOrStdout()) {
		return hints.NewGlamourRenderer()
	}
	return hints.PlainRenderer{}
}
