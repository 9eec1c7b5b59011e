package linker

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/filesystem"
	"github.com/arthur-debert/dolink/pkg/logging"
	"github.com/arthur-debert/dolink/pkg/paths"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the linker
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// Logger defaults to the "linker" component logger
	Logger *zerolog.Logger
}

// Linker creates symbolic links for mappings
type Linker struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a new linker instance
func New(opts Options) *Linker {
	logger := logging.GetLogger("linker")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Linker{
		fs:     fsys,
		logger: logger,
	}
}

// CreateLink creates a symbolic link at destination pointing to origin.
//
// In dry-run mode nothing is resolved or touched. With Force, whatever
// exists at the destination is removed first; removal errors are ignored and
// surface as a failed link instead.
func (l *Linker) CreateLink(origin, destination string, opts types.InstallOptions) error {
	if opts.DryRun {
		return nil
	}

	if !symlinksSupported {
		return errors.Newf(errors.ErrUnsupportedPlatform, "symbolic links are not supported on %s", runtime.GOOS)
	}

	source, err := paths.Resolve(origin)
	if err != nil {
		return err
	}
	target, err := paths.Resolve(destination)
	if err != nil {
		return err
	}

	if opts.CreateParentDirs {
		parent := filepath.Dir(target)
		if err := l.fs.MkdirAll(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent directory %s", parent).
				WithDetail("path", parent)
		}
	}

	if opts.Force {
		if _, err := l.fs.Lstat(target); err == nil {
			if err := l.fs.RemoveAll(target); err != nil {
				l.logger.Debug().Err(err).Str("target", target).Msg("Failed to remove existing destination")
			}
		}
	}

	if err := l.fs.Symlink(source, target); err != nil {
		code := errors.ErrSymlinkCreate
		if stderrors.Is(err, fs.ErrExist) {
			code = errors.ErrSymlinkExists
		}
		return errors.Wrapf(err, code, "failed to link %s -> %s", source, target).
			WithDetail("source", source).
			WithDetail("target", target)
	}

	l.logger.Debug().
		Str("source", source).
		Str("target", target).
		Bool("force", opts.Force).
		Msg("Created symlink")

	return nil
}
