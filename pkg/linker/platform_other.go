//go:build !unix

package linker

// Only POSIX symlinks are implemented.
const symlinksSupported = false
