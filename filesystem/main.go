package filesystem

import "syscall"

//go:generate mockgen -destination=mocks/platform.go -package=mocks github.com/alexibraimov/sophifs/filesystem Platform

// MaxRelativePath is the size, in path characters, of the buffer a relative
// link target must fit in. The terminator counts against it.
const MaxRelativePath = 260

// LinkFlags selects the kind of symbolic link the platform creates.
type LinkFlags uint32

const (
	LinkFile      LinkFlags = 0
	LinkDirectory LinkFlags = 1
)

// LinkResult is what the platform reports for a link creation attempt. The
// success flag and the error code are captured by the same call, so callers
// never have to read a last-error value after the fact.
type LinkResult struct {
	Succeeded bool
	Code      syscall.Errno
}

// Platform is the set of native filesystem operations the link creator and
// the directory remover are built on. There is one implementation per target
// OS, returned by NewPlatform.
type Platform interface {
	// CreateSymbolicLink creates link pointing at target. When flags has
	// LinkDirectory set the link must be traversable as a directory; asking
	// for a directory link to something that is not a directory fails.
	CreateSymbolicLink(link, target string, flags LinkFlags) LinkResult

	// DeleteAtReboot registers path for removal at the next system restart.
	// Registering the same path twice is harmless.
	DeleteAtReboot(path string) error

	// RelativePath expresses to relative to from. A from that is not a
	// directory is replaced by its parent before the computation.
	RelativePath(from string, fromIsDir bool, to string, toIsDir bool) (string, error)
}
