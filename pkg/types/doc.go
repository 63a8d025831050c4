// Package types defines the data model shared by the installer packages:
// modules, their ordered operations, and the results produced when
// operations run.
//
// Modules and operations are loaded once from configuration and are
// never mutated afterwards.
package types
