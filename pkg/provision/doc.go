// Package provision obtains a platform-correct helper executable and
// installs it where command resolution can find it.
//
// A prebuilt binary shipped under <source root>/bin is always preferred.
// Only when none matches the current platform is the external toolchain
// invoked to build one. The resulting binary is copied into the first
// usable directory of an ordered, OS-specific candidate list.
package provision
