// Package installer selects modules from a catalog and installs them.
//
// Modules are independent. Operations within a module run strictly in
// declaration order, and a failing operation never stops the ones after
// it. A module succeeds only if every operation succeeded; the run
// succeeds only if every selected module did.
package installer
