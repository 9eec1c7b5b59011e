// Package linker turns "source:destination" mappings into symbolic links.
//
// SplitMapping parses a mapping string. Linker.CreateLink resolves both
// sides lexically (see pkg/paths) and creates the link, optionally creating
// parent directories and replacing whatever already sits at the destination.
// Linker.Inspect reports whether a mapping is currently in place.
//
// All filesystem access goes through types.FS so tests can substitute an
// in-memory filesystem.
package linker
