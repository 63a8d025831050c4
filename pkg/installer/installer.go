package installer

import (
	"context"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/filesystem"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/rs/zerolog"
)

// OperationExecutor runs a single operation
type OperationExecutor interface {
	Execute(ctx context.Context, op types.Operation) types.OperationResult
}

// Reporter observes a run as it progresses
type Reporter interface {
	ModuleStarted(m types.Module)
	OperationFinished(m types.Module, r types.OperationResult)
	ModuleFinished(r types.ModuleResult)
}

// NopReporter ignores every event
type NopReporter struct{}

func (NopReporter) ModuleStarted(types.Module)                            {}
func (NopReporter) OperationFinished(types.Module, types.OperationResult) {}
func (NopReporter) ModuleFinished(types.ModuleResult)                     {}

// Options configures an Installer
type Options struct {
	InstallRoot string
	Executor    OperationExecutor
	// Reporter defaults to NopReporter
	Reporter Reporter
	// Logger defaults to the "installer" component logger when nil
	Logger *zerolog.Logger
}

// Installer runs modules through an executor
type Installer struct {
	installRoot string
	executor    OperationExecutor
	reporter    Reporter
	logger      zerolog.Logger
}

// New creates an Installer
func New(opts Options) *Installer {
	logger := logging.GetLogger("installer")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Installer{
		installRoot: opts.InstallRoot,
		executor:    opts.Executor,
		reporter:    reporter,
		logger:      logger,
	}
}

// Run installs modules in order. The returned error is only set when the
// install root cannot be prepared; operation failures are reported in the
// RunResult.
func (i *Installer) Run(ctx context.Context, modules []types.Module) (types.RunResult, error) {
	result := types.RunResult{InstallRoot: i.installRoot}

	if err := filesystem.EnsureDir(i.installRoot); err != nil {
		return result, apperrors.Wrapf(err, apperrors.ErrFileCopy, "failed to create install directory %s", i.installRoot)
	}

	for _, m := range modules {
		result.Modules = append(result.Modules, i.InstallModule(ctx, m))
	}

	i.logger.Info().
		Int("modules", len(result.Modules)).
		Bool("success", result.Success()).
		Msg("Installation finished")
	return result, nil
}

// InstallModule runs every operation of m in declaration order
func (i *Installer) InstallModule(ctx context.Context, m types.Module) types.ModuleResult {
	logger := i.logger.With().Str("module", m.Name).Logger()
	logger.Info().Int("operations", len(m.Operations)).Msg("Installing module")
	i.reporter.ModuleStarted(m)

	res := types.ModuleResult{Name: m.Name, Description: m.Description}
	for _, op := range m.Operations {
		r := i.executor.Execute(ctx, op)
		res.Results = append(res.Results, r)
		i.reporter.OperationFinished(m, r)
	}

	if failed := res.Failures(); failed > 0 {
		logger.Warn().Int("failed", failed).Msg("Module completed with failures")
	} else {
		logger.Info().Msg("Module installed")
	}
	i.reporter.ModuleFinished(res)
	return res
}
