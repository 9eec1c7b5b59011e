package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dolink operations
type FS interface {
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks, so a dangling link still exists.
	Lstat(name string) (fs.FileInfo, error)

	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	RemoveAll(path string) error
}

// Reporter observes the installation of a single item.
//
// Step is called for every progress event in the order they happen and
// Finish exactly once with the terminal outcome. A Reporter belongs to one
// item and is never shared across workers.
type Reporter interface {
	Step(step InstallStep)
	Finish(outcome Outcome)
}
