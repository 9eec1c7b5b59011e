// Package filesystem provides filesystem implementations for dolink.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used at runtime and an afero-backed one used by
// tests that must prove nothing was written.
package filesystem
