//go:build !windows

package filesystem

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

type unixPlatform struct {
	pending *PendingRegistry
}

// NewPlatform returns the native platform. There is no kernel facility for
// deleting files at the next boot here, so deferred deletions go to the
// registry given with WithPendingRegistry and are carried out by
// PendingRegistry.Flush, typically from a boot-time unit.
func NewPlatform(opts ...PlatformOption) Platform {
	var c platformConfig
	for _, opt := range opts {
		opt(&c)
	}

	return unixPlatform{pending: c.pending}
}

func (p unixPlatform) CreateSymbolicLink(link, target string, flags LinkFlags) LinkResult {
	link = trimSeparators(link)

	if flags&LinkDirectory != 0 {
		resolved := target
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(filepath.Dir(link), resolved)
		}

		var st unix.Stat_t
		err := unix.Stat(resolved, &st)
		if err == nil && st.Mode&unix.S_IFMT != unix.S_IFDIR {
			return LinkResult{Code: unix.ENOTDIR}
		}
	}

	if err := unix.Symlink(target, link); err != nil {
		var errno unix.Errno
		if errors.As(err, &errno) {
			return LinkResult{Code: errno}
		}

		return LinkResult{Code: unix.EIO}
	}

	return LinkResult{Succeeded: true}
}

func (p unixPlatform) DeleteAtReboot(path string) error {
	if p.pending == nil {
		return ErrDeferredDeletionUnsupported
	}

	return p.pending.Add(path)
}

func (p unixPlatform) RelativePath(from string, fromIsDir bool, to string, toIsDir bool) (string, error) {
	if !fromIsDir {
		from = filepath.Dir(from)
	}

	return filepath.Rel(from, to)
}

func isLink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}

	return info.Mode()&os.ModeSymlink != 0, nil
}
