package provision

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/filesystem"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/arthur-debert/modinstall/pkg/platform"
	"github.com/rs/zerolog"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// DefaultHelperName is the base name of shipped prebuilt binaries
	DefaultHelperName = "codeagent-wrapper"

	// DefaultToolchain is the compiler invoked when no prebuilt binary matches
	DefaultToolchain = "go"

	// PrebuiltDir holds prebuilt binaries below the source root
	PrebuiltDir = "bin"

	executablePerm fs.FileMode = 0755
)

// Options configures a Provisioner
type Options struct {
	Platform platform.Descriptor
	Env      platform.Environment
	// HelperName is the base name of prebuilt binaries
	HelperName string
	// Toolchain is the build command, "go" by default
	Toolchain string
	Runner    Runner
	// BinDirs overrides the platform install directory candidates
	BinDirs []string
	// Logger defaults to the "provision" component logger when nil
	Logger *zerolog.Logger
}

// Provisioner resolves, builds and installs helper binaries
type Provisioner struct {
	platform   platform.Descriptor
	env        platform.Environment
	helperName string
	toolchain  string
	runner     Runner
	binDirs    []string
	logger     zerolog.Logger
}

// Resolution describes where a usable binary was found
type Resolution struct {
	Path     string
	Prebuilt bool
}

// Installation describes where a binary was installed
type Installation struct {
	Path string
	Dir  string
	// PathWarning is set when Dir is not on the command search path;
	// it contains a remediation command.
	PathWarning string
}

// New creates a Provisioner, filling defaults for unset options
func New(opts Options) *Provisioner {
	logger := logging.GetLogger("provision")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	helperName := opts.HelperName
	if helperName == "" {
		helperName = DefaultHelperName
	}

	toolchain := opts.Toolchain
	if toolchain == "" {
		toolchain = DefaultToolchain
	}

	runner := opts.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	binDirs := opts.BinDirs
	if len(binDirs) == 0 {
		binDirs = platform.BinDirCandidates(opts.Platform, opts.Env, helperName)
	}

	return &Provisioner{
		platform:   opts.Platform,
		env:        opts.Env,
		helperName: helperName,
		toolchain:  toolchain,
		runner:     runner,
		binDirs:    binDirs,
		logger:     logger,
	}
}

// Provision resolves a binary for binaryName and installs it under that name
func (p *Provisioner) Provision(ctx context.Context, sourceRoot, buildDir, binaryName string) (Installation, error) {
	if binaryName == "" {
		binaryName = p.helperName
	}

	res, err := p.Resolve(ctx, sourceRoot, buildDir, binaryName)
	if err != nil {
		return Installation{}, err
	}
	return p.Install(res.Path, binaryName)
}

// FindPrebuilt looks for a binary matching the current platform in
// <sourceRoot>/bin
func (p *Provisioner) FindPrebuilt(sourceRoot string) (string, bool) {
	name, ok := p.platform.PrebuiltName(p.helperName)
	if !ok {
		p.logger.Debug().Str("platform", p.platform.String()).Msg("No prebuilt naming for platform")
		return "", false
	}

	path := filepath.Join(sourceRoot, PrebuiltDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Resolve returns a prebuilt binary when one exists, otherwise builds one
func (p *Provisioner) Resolve(ctx context.Context, sourceRoot, buildDir, binaryName string) (Resolution, error) {
	if path, ok := p.FindPrebuilt(sourceRoot); ok {
		p.logger.Info().Str("binary", filepath.Base(path)).Msg("Using prebuilt binary")
		return Resolution{Path: path, Prebuilt: true}, nil
	}

	p.logger.Info().Str("platform", p.platform.String()).Msg("No prebuilt binary found, building from source")
	path, err := p.Build(ctx, buildDir, binaryName)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Path: path}, nil
}

// ToolchainAvailable reports whether the build toolchain can be started
func (p *Provisioner) ToolchainAvailable(ctx context.Context) bool {
	result, err := p.runner.Run(ctx, "", p.toolchain, "version")
	if err != nil {
		if !errors.Is(err, exec.ErrNotFound) {
			p.logger.Debug().Err(err).Str("toolchain", p.toolchain).Msg("Toolchain check failed")
		}
		return false
	}
	return result.ExitCode == 0
}

// Build compiles the package in buildDir into buildDir/<binaryName>.
// Output is captured; the call blocks until the build finishes.
func (p *Provisioner) Build(ctx context.Context, buildDir, binaryName string) (string, error) {
	if !filesystem.IsDir(buildDir) {
		return "", apperrors.Newf(apperrors.ErrMissingSource, "build directory not found: %s", buildDir).
			WithDetail("path", buildDir)
	}

	if !p.ToolchainAvailable(ctx) {
		return "", apperrors.Newf(apperrors.ErrToolchainUnavailable, "%s toolchain is not installed", p.toolchain).
			WithDetail("hint", "install Go first: https://go.dev/doc/install")
	}

	outputName := p.platform.ExecutableName(binaryName)
	done := logging.LogOperationStart(p.logger, "build "+outputName)
	result, err := p.runner.Run(ctx, buildDir, p.toolchain, "build", "-o", outputName, ".")
	done()
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ErrBuildFailed, "failed to run %s build", p.toolchain)
	}
	if result.ExitCode != 0 {
		p.logger.Error().
			Int("exit_code", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Build failed")
		return "", apperrors.Newf(apperrors.ErrBuildFailed, "build failed: %s", strings.TrimSpace(result.Stderr)).
			WithDetail("exit_code", result.ExitCode)
	}

	binaryPath := filepath.Join(buildDir, outputName)
	if !filesystem.Exists(binaryPath) {
		return "", apperrors.Newf(apperrors.ErrBuildFailed, "build output not found: %s", binaryPath)
	}

	p.logger.Info().Str("binary", binaryPath).Msg("Build completed")
	return binaryPath, nil
}

// Install copies binaryPath into the first usable candidate directory
// under finalName (with the OS executable suffix). The first candidate is
// always attempted; later ones only when they already exist.
func (p *Provisioner) Install(binaryPath, finalName string) (Installation, error) {
	if finalName == "" {
		finalName = filepath.Base(binaryPath)
	}
	finalName = p.platform.ExecutableName(finalName)

	for i, dir := range p.binDirs {
		if i > 0 && !filesystem.IsDir(dir) {
			continue
		}

		target, err := p.installInto(binaryPath, dir, finalName)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				p.logger.Warn().Str("dir", dir).Msg("Permission denied, trying next directory")
			} else {
				p.logger.Warn().Err(err).Str("dir", dir).Msg("Install failed, trying next directory")
			}
			continue
		}

		p.logger.Info().Str("path", target).Msg("Installed binary")
		inst := Installation{Path: target, Dir: dir}
		if !p.env.OnPath(dir) {
			inst.PathWarning = p.pathRemediation(dir)
		}
		return inst, nil
	}

	return Installation{}, apperrors.New(apperrors.ErrInstallPathExhausted, "could not install binary into any PATH directory").
		WithDetail("candidates", p.binDirs).
		WithDetail("hint", p.manualInstallHint(binaryPath))
}

func (p *Provisioner) installInto(binaryPath, dir, finalName string) (string, error) {
	if err := filesystem.EnsureDir(dir); err != nil {
		return "", err
	}
	target := filepath.Join(dir, finalName)
	if err := filesystem.CopyFile(binaryPath, target); err != nil {
		return "", err
	}
	if !p.platform.IsWindows() {
		if err := os.Chmod(target, executablePerm); err != nil {
			return "", err
		}
	}
	return target, nil
}

func (p *Provisioner) pathRemediation(dir string) string {
	if p.platform.IsWindows() {
		return fmt.Sprintf(`%s may not be on PATH; add it with: setx PATH "%%PATH%%;%s"`, dir, dir)
	}
	return fmt.Sprintf(`%s may not be on PATH; add it with: export PATH=%s:"$PATH"`, dir, shellQuote(dir))
}

func (p *Provisioner) manualInstallHint(binaryPath string) string {
	if p.platform.IsWindows() {
		return fmt.Sprintf("copy %s into a directory on PATH", binaryPath)
	}
	return fmt.Sprintf("sudo cp %s /usr/local/bin/", shellQuote(binaryPath))
}

// shellQuote quotes s for a POSIX-like shell, falling back to s when
// it cannot be represented
func shellQuote(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return s
	}
	return quoted
}
