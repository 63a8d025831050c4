// Package testutil provides helpers for modinstall tests.
//
// Tests run against the real filesystem inside t.TempDir(). The helpers
// here cover the repetitive parts:
//   - building source trees and reading installed trees back
//   - asserting file content and absence
//   - an Environment that isolates HOME and the XDG directories so that
//     settings, logs and default install roots never touch the real user
package testutil
