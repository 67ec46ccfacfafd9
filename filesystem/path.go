package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type Path string

func MakePath(names ...string) Path {
	p := filepath.Join(names...)

	if !filepath.IsAbs(p) {
		panic("MakePath requires absolute path")
	}

	return Path(p)
}

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return MakePath(args...)
}

// Resolve returns name unchanged when it is absolute, otherwise name joined
// onto p.
func (p Path) Resolve(name string) Path {
	if filepath.IsAbs(name) {
		return MakePath(name)
	}

	return p.Join(name)
}

func (p Path) Parent() Path {
	return Path(filepath.Dir(string(p)))
}

func (p Path) Parents() []Path {
	parents := []Path{}

	for {
		parent := p.Parent()
		if string(parent) == string(p) {
			break
		}

		parents = append(parents, parent)
		p = parent
	}

	return parents
}

func (p Path) Basename() string {
	return filepath.Base(string(p))
}

// MkdirAll creates the directory and any missing parents. A directory that
// already exists is success. Anything else in the way, or a permission
// problem, is returned.
func (p Path) MkdirAll(perm os.FileMode) error {
	err := os.MkdirAll(string(p), perm)
	if err == nil || !errors.Is(err, fs.ErrExist) {
		return err
	}

	info, statErr := os.Stat(string(p))
	if statErr == nil && info.IsDir() {
		return nil
	}

	return err
}

func (p Path) RemoveAll() error {
	return os.RemoveAll(string(p))
}

func (p Path) Remove() error {
	return os.Remove(string(p))
}

// RemoveFiles removes each of the given files, stopping at the first failure.
func RemoveFiles(paths ...Path) error {
	for _, path := range paths {
		if err := path.Remove(); err != nil {
			return err
		}
	}

	return nil
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) Open() (*os.File, error) {
	return os.Open(string(p))
}

// IsLink reports whether p is itself a symbolic link or another kind of
// reparse point. It does not follow p.
func (p Path) IsLink() (bool, error) {
	return isLink(string(p))
}

func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p Path) String() string {
	return string(p)
}
