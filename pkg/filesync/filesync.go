package filesync

import (
	"github.com/arthur-debert/modinstall/pkg/filesystem"
	"github.com/rs/zerolog"
)

// Syncer applies the copy strategies and reports each copied entry
// to its logger
type Syncer struct {
	logger zerolog.Logger
}

// New creates a Syncer that logs through logger
func New(logger zerolog.Logger) *Syncer {
	return &Syncer{logger: logger}
}

// ReplaceFile copies src over dst, creating dst's parent directories
func (s *Syncer) ReplaceFile(src, dst string) error {
	if err := filesystem.CopyFile(src, dst); err != nil {
		return err
	}
	s.logger.Info().Str("source", src).Str("target", dst).Msg("Copied file")
	return nil
}

// ReplaceDir makes dst an exact copy of src. An existing dst is removed
// first, including any content that is not present in src.
func (s *Syncer) ReplaceDir(src, dst string) error {
	// Checked before the delete so dst == src cannot wipe the source
	if err := filesystem.CheckDistinct(src, dst); err != nil {
		return err
	}
	if filesystem.Exists(dst) {
		s.logger.Debug().Str("target", dst).Msg("Removing existing directory before replace")
		if err := filesystem.RemoveTree(dst); err != nil {
			return err
		}
	}
	if err := filesystem.CopyTree(src, dst); err != nil {
		return err
	}
	s.logger.Info().Str("source", src).Str("target", dst).Msg("Replaced directory")
	return nil
}

// MergeDir overlays src onto dst without deleting anything in dst.
// Only create-dir and copy operations are issued on this path.
func (s *Syncer) MergeDir(src, dst string) error {
	if err := filesystem.CopyTree(src, dst); err != nil {
		return err
	}
	s.logger.Info().Str("source", src).Str("target", dst).Msg("Merged directory")
	return nil
}
