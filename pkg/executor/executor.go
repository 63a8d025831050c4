package executor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/filesync"
	"github.com/arthur-debert/modinstall/pkg/filesystem"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/arthur-debert/modinstall/pkg/patch"
	"github.com/arthur-debert/modinstall/pkg/platform"
	"github.com/arthur-debert/modinstall/pkg/provision"
	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/rs/zerolog"
)

// BinaryProvisioner obtains a helper binary and installs it on the search path
type BinaryProvisioner interface {
	Provision(ctx context.Context, sourceRoot, buildDir, binaryName string) (provision.Installation, error)
}

// HostPatcher overwrites an external application's file with a payload
type HostPatcher interface {
	Apply(payload string) (patch.Outcome, error)
}

// Options contains configuration for the executor
type Options struct {
	// SourceRoot is where operation sources are resolved
	SourceRoot string
	// InstallRoot is where operation targets are resolved
	InstallRoot string
	Platform    platform.Descriptor
	Env         platform.Environment
	// HelperName is the prebuilt binary base name used by the default provisioner
	HelperName string
	// BackupSuffix is used by the default patcher
	BackupSuffix string

	Syncer      *filesync.Syncer
	Provisioner BinaryProvisioner
	Patcher     HostPatcher
	// Logger defaults to the "executor" component logger when nil
	Logger *zerolog.Logger
}

// Executor runs operations against a source root and an install root
type Executor struct {
	sourceRoot  string
	installRoot string
	syncer      *filesync.Syncer
	provisioner BinaryProvisioner
	patcher     HostPatcher
	logger      zerolog.Logger
}

// New creates an executor. Collaborators left nil are built from the
// platform descriptor and environment snapshot.
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	syncer := opts.Syncer
	if syncer == nil {
		syncer = filesync.New(logger.With().Str("component", "filesync").Logger())
	}

	provisioner := opts.Provisioner
	if provisioner == nil {
		provisioner = provision.New(provision.Options{
			Platform:   opts.Platform,
			Env:        opts.Env,
			HelperName: opts.HelperName,
		})
	}

	patcher := opts.Patcher
	if patcher == nil {
		patcher = patch.New(patch.Options{
			Candidates:   platform.HostFileCandidates(opts.Platform, opts.Env),
			BackupSuffix: opts.BackupSuffix,
			Platform:     opts.Platform,
		})
	}

	return &Executor{
		sourceRoot:  opts.SourceRoot,
		installRoot: opts.InstallRoot,
		syncer:      syncer,
		provisioner: provisioner,
		patcher:     patcher,
		logger:      logger,
	}
}

// Execute runs one operation and reports its outcome. It never panics on
// operation errors and never returns them; they end up in the result.
func (e *Executor) Execute(ctx context.Context, op types.Operation) (result types.OperationResult) {
	start := time.Now()
	result.Operation = op
	defer func() {
		result.Duration = time.Since(start)
	}()

	logger := e.logger.With().Str("type", string(op.Type)).Str("source", op.Source).Logger()
	if op.Description != "" {
		logger.Info().Msg(op.Description)
	}
	done := logging.LogOperationStart(logger, op.Label())
	defer done()

	h, ok := handlers[op.Type]
	if !ok {
		err := apperrors.Newf(apperrors.ErrUnknownOperationType, "unknown operation type: %s", op.Type)
		logger.Warn().Msg(err.Message)
		result.Error = err
		result.Message = err.Message
		return result
	}

	out, err := h.run(e, ctx, op)
	if err != nil {
		if h.policy.skips(err) {
			logger.Warn().Err(err).Msg("Skipping optional operation")
			result.Success = true
			result.Skipped = true
			result.Message = fmt.Sprintf("skipped: %s", messageOf(err))
			return result
		}

		logger.Warn().Err(err).Msg("Operation failed")
		result.Error = err
		result.Message = messageOf(err)
		if hint := apperrors.Hint(err); hint != "" {
			result.Notices = append(result.Notices, hint)
		}
		return result
	}

	result.Success = true
	result.Message = out.message
	result.Notices = append(result.Notices, out.notices...)
	return result
}

// outcome is what a successful handler reports back
type outcome struct {
	message string
	notices []string
}

func (e *Executor) sourcePath(op types.Operation) string {
	return filepath.Join(e.sourceRoot, op.Source)
}

func (e *Executor) targetPath(op types.Operation) string {
	return filepath.Join(e.installRoot, op.TargetPath())
}

func (e *Executor) requireSource(op types.Operation) (string, error) {
	src := e.sourcePath(op)
	if !filesystem.Exists(src) {
		return "", apperrors.Newf(apperrors.ErrMissingSource, "source not found: %s", src).
			WithDetail("source", src)
	}
	return src, nil
}

func (e *Executor) replaceFile(_ context.Context, op types.Operation) (outcome, error) {
	src, err := e.requireSource(op)
	if err != nil {
		return outcome{}, err
	}
	dst := e.targetPath(op)
	if err := e.syncer.ReplaceFile(src, dst); err != nil {
		return outcome{}, copyError(err, src, dst)
	}
	return outcome{message: fmt.Sprintf("copied %s -> %s", op.Source, dst)}, nil
}

func (e *Executor) replaceDir(_ context.Context, op types.Operation) (outcome, error) {
	src, err := e.requireSource(op)
	if err != nil {
		return outcome{}, err
	}
	dst := e.targetPath(op)
	if err := e.syncer.ReplaceDir(src, dst); err != nil {
		return outcome{}, copyError(err, src, dst)
	}
	return outcome{message: fmt.Sprintf("replaced %s -> %s", op.Source, dst)}, nil
}

func (e *Executor) mergeDir(_ context.Context, op types.Operation) (outcome, error) {
	src, err := e.requireSource(op)
	if err != nil {
		return outcome{}, err
	}
	dst := e.targetPath(op)
	if err := e.syncer.MergeDir(src, dst); err != nil {
		return outcome{}, copyError(err, src, dst)
	}
	return outcome{message: fmt.Sprintf("merged %s -> %s", op.Source, dst)}, nil
}

func (e *Executor) provisionBinary(ctx context.Context, op types.Operation) (outcome, error) {
	inst, err := e.provisioner.Provision(ctx, e.sourceRoot, e.sourcePath(op), op.Binary)
	if err != nil {
		return outcome{}, err
	}
	out := outcome{message: fmt.Sprintf("installed %s", inst.Path)}
	if inst.PathWarning != "" {
		out.notices = append(out.notices, inst.PathWarning)
	}
	return out, nil
}

func (e *Executor) patchHostFile(_ context.Context, op types.Operation) (outcome, error) {
	res, err := e.patcher.Apply(e.sourcePath(op))
	if err != nil {
		return outcome{}, err
	}
	out := outcome{message: res.Message}
	if res.BackupCreated {
		out.notices = append(out.notices, fmt.Sprintf("backup created at %s", res.Backup))
	}
	return out, nil
}

// copyError attaches a FILE_COPY code to uncoded filesystem errors
func copyError(err error, src, dst string) error {
	if apperrors.GetErrorCode(err) != apperrors.ErrUnknown {
		return err
	}
	return apperrors.Wrapf(err, apperrors.ErrFileCopy, "failed to copy %s to %s", src, dst)
}

// messageOf prefers the coded message over the full wrapped chain
func messageOf(err error) string {
	var ie *apperrors.InstallError
	if errors.As(err, &ie) {
		return ie.Message
	}
	return err.Error()
}
