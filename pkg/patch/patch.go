package patch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/filesystem"
	"github.com/arthur-debert/modinstall/pkg/logging"
	"github.com/arthur-debert/modinstall/pkg/platform"
	"github.com/rs/zerolog"
)

// DefaultBackupSuffix is appended to the host file name to form the backup path
const DefaultBackupSuffix = ".backup"

// Options configures a Manager
type Options struct {
	// Candidates are absolute host file paths, checked in order
	Candidates   []string
	BackupSuffix string
	Platform     platform.Descriptor
	// Logger defaults to the "patch" component logger when nil
	Logger *zerolog.Logger
}

// Manager locates, backs up and overwrites a host application file
type Manager struct {
	candidates   []string
	backupSuffix string
	platform     platform.Descriptor
	logger       zerolog.Logger
}

// Outcome reports the result of Apply
type Outcome struct {
	Success bool
	Message string
	Target  string
	Backup  string
	// BackupCreated is true only on the run that took the backup
	BackupCreated bool
}

// New creates a Manager
func New(opts Options) *Manager {
	logger := logging.GetLogger("patch")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	suffix := opts.BackupSuffix
	if suffix == "" {
		suffix = DefaultBackupSuffix
	}

	return &Manager{
		candidates:   opts.Candidates,
		backupSuffix: suffix,
		platform:     opts.Platform,
		logger:       logger,
	}
}

// BackupPath returns the backup sibling of target
func (m *Manager) BackupPath(target string) string {
	return target + m.backupSuffix
}

// Locate returns the first candidate that exists as a regular file
func (m *Manager) Locate() (string, error) {
	for _, candidate := range m.candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", apperrors.New(apperrors.ErrHostFileNotFound, "host application file not found, install @augmentcode/auggie first").
		WithDetail("candidates", m.candidates)
}

// Apply overwrites the located host file with payload, taking a backup
// first if none exists yet. The returned error carries a code so callers
// can decide how severe a failure is.
func (m *Manager) Apply(payload string) (Outcome, error) {
	target, err := m.Locate()
	if err != nil {
		return Outcome{Message: err.Error()}, err
	}

	if info, err := os.Stat(payload); err != nil || info.IsDir() {
		err := apperrors.Newf(apperrors.ErrPatchSourceNotFound, "patch file not found: %s", payload)
		return Outcome{Target: target, Message: err.Error()}, err
	}

	out := Outcome{Target: target, Backup: m.BackupPath(target)}

	if filesystem.Exists(out.Backup) {
		m.logger.Info().Str("backup", out.Backup).Msg("Backup already exists, keeping it")
	} else {
		if err := filesystem.CopyFile(target, out.Backup); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				err := apperrors.Wrapf(err, apperrors.ErrPermissionDenied, "insufficient permissions to back up %s", target).
					WithDetail("hint", m.permissionHint(payload, target))
				out.Message = fmt.Sprintf("%s (%s)", err.Message, apperrors.Hint(err))
				return out, err
			}
			err := apperrors.Wrapf(err, apperrors.ErrBackupFailed, "failed to create backup %s", out.Backup)
			out.Message = err.Error()
			return out, err
		}
		out.BackupCreated = true
		m.logger.Info().Str("backup", out.Backup).Msg("Created backup")
	}

	if err := filesystem.CopyFile(payload, target); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			err := apperrors.Wrapf(err, apperrors.ErrPermissionDenied, "insufficient permissions to patch %s", target).
				WithDetail("hint", m.permissionHint(payload, target))
			out.Message = fmt.Sprintf("%s (%s)", err.Message, apperrors.Hint(err))
			return out, err
		}
		err := apperrors.Wrapf(err, apperrors.ErrFileCopy, "failed to apply patch to %s", target)
		out.Message = err.Error()
		return out, err
	}

	m.logger.Info().Str("target", target).Msg("Patched host file")
	out.Success = true
	out.Message = fmt.Sprintf("patched %s, backup at %s", target, out.Backup)
	return out, nil
}

func (m *Manager) permissionHint(payload, target string) string {
	if m.platform.IsWindows() {
		return "re-run as Administrator"
	}
	return fmt.Sprintf("sudo cp %s %s", payload, target)
}
