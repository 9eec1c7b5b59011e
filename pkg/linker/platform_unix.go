//go:build unix

package linker

const symlinksSupported = true
