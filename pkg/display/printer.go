package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/pterm/pterm"
)

// Msg constants for user-facing output
const (
	MsgTitle          = "modinstall"
	MsgSubtitle       = "module installer"
	MsgInstallDir     = "Install directory: %s"
	MsgInstalling     = "Installing module: %s"
	MsgModuleDone     = "Module '%s' installed"
	MsgModuleWarnings = "Module '%s' completed with %d warning(s)"
	MsgNoModules      = "No modules to install"
	MsgAllDone        = "Installation complete!"
	MsgDoneWarnings   = "Installation completed with warnings"
	MsgAvailable      = "Available modules:"
	MsgEnabled        = "enabled"
	MsgDisabled       = "disabled"
	MsgNoDescription  = "(no description)"
)

// Options configures a Printer
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	// Color enables ANSI styling
	Color bool
	// Verbose prints every successful operation, not only problems
	Verbose bool
}

// Printer writes installer output
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	styles  *Styles
}

// New creates a Printer. pterm color is a process-wide setting, so it is
// switched on or off here to match opts.Color.
func New(opts Options) (*Printer, error) {
	if opts.ErrOut == nil {
		opts.ErrOut = opts.Out
	}

	if opts.Color {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}

	styles, err := NewStyles(opts.Out, opts.Color)
	if err != nil {
		return nil, err
	}

	return &Printer{
		out:     opts.Out,
		errOut:  opts.ErrOut,
		verbose: opts.Verbose,
		styles:  styles,
	}, nil
}

// Banner prints the title box and the install root
func (p *Printer) Banner(installRoot string) {
	title := p.styles.Render("Title", MsgTitle) + "\n" + p.styles.Render("Subtitle", MsgSubtitle)
	fmt.Fprintln(p.out, p.styles.Box(title))
	fmt.Fprintf(p.out, MsgInstallDir+"\n", p.styles.Render("Path", installRoot))
}

// ModuleList prints the catalog as a table, in the given name order
func (p *Printer) ModuleList(names []string, modules map[string]types.Module) error {
	fmt.Fprintln(p.out, p.styles.Render("Title", MsgAvailable))

	data := [][]string{{"Module", "Status", "Operations", "Description"}}
	for _, name := range names {
		m := modules[name]
		status := MsgDisabled
		if m.Enabled {
			status = MsgEnabled
		}
		desc := m.Description
		if desc == "" {
			desc = MsgNoDescription
		}
		data = append(data, []string{name, status, fmt.Sprint(len(m.Operations)), desc})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, table)
	return nil
}

// ModuleStarted implements installer.Reporter
func (p *Printer) ModuleStarted(m types.Module) {
	fmt.Fprint(p.out, pterm.DefaultSection.Sprintln(fmt.Sprintf(MsgInstalling, m.Name)))
	if m.Description != "" {
		fmt.Fprintln(p.out, "  "+p.styles.Render("Description", m.Description))
	}
}

// OperationFinished implements installer.Reporter
func (p *Printer) OperationFinished(_ types.Module, r types.OperationResult) {
	switch {
	case !r.Success:
		fmt.Fprint(p.errOut, pterm.Warning.Sprintln(r.Message))
	case r.Skipped:
		fmt.Fprint(p.out, pterm.Info.Sprintln(r.Message))
	case p.verbose:
		fmt.Fprint(p.out, pterm.Success.Sprintln(r.Message))
	}

	for _, notice := range r.Notices {
		w := p.out
		if !r.Success {
			w = p.errOut
		}
		fmt.Fprint(w, pterm.Info.Sprintln(notice))
	}
}

// ModuleFinished implements installer.Reporter
func (p *Printer) ModuleFinished(r types.ModuleResult) {
	if failed := r.Failures(); failed > 0 {
		fmt.Fprintln(p.out, p.styles.Render("Warning", fmt.Sprintf(MsgModuleWarnings, r.Name, failed)))
		return
	}
	fmt.Fprintln(p.out, p.styles.Render("Success", fmt.Sprintf(MsgModuleDone, r.Name)))
}

// NoModules reports an empty selection
func (p *Printer) NoModules() {
	fmt.Fprint(p.out, pterm.Warning.Sprintln(MsgNoModules))
}

// Summary prints the final outcome of a run
func (p *Printer) Summary(r types.RunResult) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(p.out, rule)
	if r.Success() {
		fmt.Fprintln(p.out, p.styles.Render("Success", MsgAllDone))
	} else {
		fmt.Fprintln(p.out, p.styles.Render("Warning", MsgDoneWarnings))
	}
	fmt.Fprintln(p.out, rule)
}

// Error prints a fatal error and its remediation hint, if any
func (p *Printer) Error(err error) {
	msg := err.Error()
	var ie *apperrors.InstallError
	if errors.As(err, &ie) {
		msg = ie.Message
	}
	fmt.Fprint(p.errOut, pterm.Error.Sprintln(msg))
	if hint := apperrors.Hint(err); hint != "" {
		fmt.Fprint(p.errOut, pterm.Info.Sprintln(hint))
	}
}
