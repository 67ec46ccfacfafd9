package filesystem

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrPathComputationFailed       = errors.New("filesystem: relative path computation failed")
	ErrLinkCreationFailed          = errors.New("filesystem: link creation failed")
	ErrDeferredDeletionUnsupported = errors.New("filesystem: deferred deletion not available")
)

// PathComputationError describes why a relative link target could not be
// computed. Callers fall back to the absolute target.
type PathComputationError struct {
	Link   string
	Target string
	Reason string
	Err    error
}

func (e *PathComputationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("relative path from %s to %s: %s: %v", e.Link, e.Target, e.Reason, e.Err)
	}

	return fmt.Sprintf("relative path from %s to %s: %s", e.Link, e.Target, e.Reason)
}

func (e *PathComputationError) Is(target error) bool {
	return target == ErrPathComputationFailed
}

func (e *PathComputationError) Unwrap() error {
	return e.Err
}

// LinkError is returned when the platform refuses to create a link. Message
// carries the platform's own description of the error code, and the code
// itself is reachable with errors.Is.
type LinkError struct {
	Link    string
	Target  string
	Code    syscall.Errno
	Message string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("symlink %s -> %s: %s", e.Link, e.Target, e.Message)
}

func (e *LinkError) Is(target error) bool {
	return target == ErrLinkCreationFailed
}

func (e *LinkError) Unwrap() error {
	if e.Code == 0 {
		return nil
	}

	return e.Code
}
