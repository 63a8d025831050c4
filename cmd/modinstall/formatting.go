package modinstall

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/modinstall/pkg/display"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}

// outputFormat returns the format chosen with --style
func outputFormat(cmd *cobra.Command) display.Format {
	flag := cmd.Flag("style")
	if flag == nil {
		return display.FormatAuto
	}
	format, err := display.ParseFormat(flag.Value.String())
	if err != nil {
		return display.FormatAuto
	}
	return format
}

// useColor reports whether output to w should be styled. Auto detection
// needs a terminal file; any other writer gets plain text unless --style
// forces it.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	format := outputFormat(cmd)
	if f, ok := w.(*os.File); ok {
		format = format.Resolve(f)
	} else if format == display.FormatAuto {
		format = display.FormatText
	}
	return format == display.FormatTerminal
}
