package linker

import (
	"strings"

	"github.com/arthur-debert/dolink/pkg/errors"
)

// MappingSeparator splits the source from the destination in a mapping
const MappingSeparator = ":"

// SplitMapping splits raw at the first separator. Everything after it is the
// destination, including any further separators.
func SplitMapping(raw string) (source, destination string, err error) {
	source, destination, found := strings.Cut(raw, MappingSeparator)
	if !found {
		return "", "", errors.Newf(errors.ErrFileMapping, "invalid mapping '%s'", raw).
			WithDetail("mapping", raw)
	}
	return source, destination, nil
}
