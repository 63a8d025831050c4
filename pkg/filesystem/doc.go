// Package filesystem provides the copy primitives the installer builds on.
//
// Copies preserve permission bits and modification times, follow
// symbolic links in the source, and create missing destination parents.
// Higher level replace/merge semantics live in package filesync.
package filesystem
