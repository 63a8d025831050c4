// Package display renders installer progress for humans.
//
// A Printer writes regular output to one writer and warnings to another.
// It implements installer.Reporter so it can follow a run as it happens.
// Color is used only when the output is a color-capable terminal and
// NO_COLOR is unset.
package display
