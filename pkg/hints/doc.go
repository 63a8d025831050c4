// Package hints serves the embedded help topics shown after installation
// and by the hints command.
//
// Topics are markdown files. They are rendered with glamour when the
// output is a terminal and printed verbatim otherwise.
package hints
