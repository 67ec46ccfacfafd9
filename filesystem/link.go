package filesystem

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Linker creates directory links on top of a Platform.
type Linker struct {
	Platform Platform
}

func NewLinker(platform Platform) *Linker {
	return &Linker{Platform: platform}
}

// Relative returns the path that, stored as the target of a link at
// linkPath, reaches targetPath. Relative targets of directory links are
// resolved against the directory holding the link, so when
// bothAreDirectories is set linkPath is first reduced to its parent.
//
// A result that does not fit in MaxRelativePath characters is an error
// matching ErrPathComputationFailed rather than a truncated path.
func (l *Linker) Relative(linkPath, targetPath string, bothAreDirectories bool) (string, error) {
	from := linkPath
	if bothAreDirectories {
		from = filepath.Dir(trimSeparators(linkPath))
	}

	rel, err := l.Platform.RelativePath(from, bothAreDirectories, targetPath, bothAreDirectories)
	if err != nil {
		return "", &PathComputationError{Link: linkPath, Target: targetPath, Reason: "platform", Err: err}
	}

	if utf8.RuneCountInString(rel) >= MaxRelativePath {
		return "", &PathComputationError{Link: linkPath, Target: targetPath, Reason: "result exceeds maximum relative path length"}
	}

	return rel, nil
}

// CreateLink creates a directory link at linkPath holding targetPath as is.
func (l *Linker) CreateLink(linkPath, targetPath string) error {
	return l.CreateDirectoryLink(linkPath, targetPath, false)
}

// CreateDirectoryLink creates a directory symbolic link at linkPath pointing
// to targetPath. With makeRelative the stored target is relative to the
// link's directory; if that cannot be computed the absolute targetPath is
// stored instead and the link still works, it just no longer survives
// moving the tree.
func (l *Linker) CreateDirectoryLink(linkPath, targetPath string, makeRelative bool) error {
	stored := targetPath

	if makeRelative {
		rel, err := l.Relative(linkPath, targetPath, true)
		switch {
		case err == nil:
			stored = rel
		case errors.Is(err, ErrPathComputationFailed):
			Logger().Warn("using absolute link target", "link", linkPath, "target", targetPath, "err", err)
		default:
			return err
		}
	}

	res := l.Platform.CreateSymbolicLink(linkPath, stored, LinkDirectory)

	// Some platforms report success with a leftover error code. That still
	// counts as a failure.
	if !res.Succeeded || res.Code != 0 {
		code := res.Code
		msg := "unknown error"
		if code != 0 {
			msg = code.Error()
		}

		Logger().Debug("link creation failed", "link", linkPath, "target", stored, "code", uintptr(code))
		return &LinkError{Link: linkPath, Target: stored, Code: code, Message: msg}
	}

	Logger().Debug("created directory link", "link", linkPath, "target", stored)
	return nil
}

func trimSeparators(p string) string {
	trimmed := strings.TrimRight(p, `/`+string(filepath.Separator))
	if trimmed == "" {
		return p
	}

	return trimmed
}
