package linker

import (
	"os"

	"github.com/arthur-debert/dolink/pkg/paths"
)

// LinkState describes what currently sits at a mapping's destination
type LinkState string

const (
	// LinkStateLinked means the destination is a symlink to the source
	LinkStateLinked LinkState = "linked"
	// LinkStateMissing means nothing exists at the destination
	LinkStateMissing LinkState = "missing"
	// LinkStateConflict means something else occupies the destination
	LinkStateConflict LinkState = "conflict"
)

// Inspect reports the state of the link origin -> destination without
// changing anything.
func (l *Linker) Inspect(origin, destination string) (LinkState, error) {
	source, err := paths.Resolve(origin)
	if err != nil {
		return "", err
	}
	target, err := paths.Resolve(destination)
	if err != nil {
		return "", err
	}

	info, err := l.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return LinkStateMissing, nil
		}
		return "", err
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return LinkStateConflict, nil
	}

	current, err := l.fs.Readlink(target)
	if err != nil {
		return "", err
	}
	if current != source {
		return LinkStateConflict, nil
	}
	return LinkStateLinked, nil
}
