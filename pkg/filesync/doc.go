// Package filesync propagates files and directory trees from a module's
// source root into the install root.
//
// Three strategies are offered and they are deliberately different:
//
//   - ReplaceFile copies a single file, preserving mode and mtime.
//   - ReplaceDir is destructive: an existing destination directory is
//     removed entirely before the source tree is copied. Anything a user
//     added to the destination is lost on every re-install.
//   - MergeDir overlays the source onto the destination. Same-named files
//     are overwritten, directories are merged recursively, and nothing
//     that exists only in the destination is ever removed.
package filesync
