package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// PendingRegistry is a file of paths waiting to be deleted at the next boot,
// for systems where the OS keeps no such list itself. Every operation holds
// an exclusive lock on a sibling ".lock" file, so several processes may add
// to the same registry.
type PendingRegistry struct {
	path Path
}

type pendingFile struct {
	Paths []string `toml:"paths"`
}

func NewPendingRegistry(path Path) *PendingRegistry {
	return &PendingRegistry{path: path}
}

func (r *PendingRegistry) Path() Path {
	return r.path
}

// Add records paths for deletion. Paths already recorded are not duplicated.
func (r *PendingRegistry) Add(paths ...string) error {
	return r.locked(func(current []string) ([]string, error) {
		seen := make(map[string]bool, len(current))
		for _, p := range current {
			seen[p] = true
		}

		for _, p := range paths {
			if !seen[p] {
				current = append(current, p)
				seen[p] = true
			}
		}

		return current, nil
	})
}

// List returns the recorded paths in sorted order.
func (r *PendingRegistry) List() ([]string, error) {
	var out []string
	err := r.locked(func(current []string) ([]string, error) {
		out = append(out, current...)
		return current, nil
	})

	sort.Strings(out)
	return out, err
}

// Flush deletes every recorded path. Paths that are already gone count as
// deleted. Paths that still cannot be removed stay in the registry and are
// returned together with the joined errors.
func (r *PendingRegistry) Flush() ([]string, error) {
	var remaining []string
	var errs []error

	err := r.locked(func(current []string) ([]string, error) {
		for _, p := range current {
			err := os.Remove(p)
			if err == nil || errors.Is(err, os.ErrNotExist) {
				Logger().Debug("removed pending path", "path", p)
				continue
			}

			remaining = append(remaining, p)
			errs = append(errs, err)
		}

		return remaining, nil
	})
	if err != nil {
		return nil, err
	}

	return remaining, errors.Join(errs...)
}

func (r *PendingRegistry) locked(update func([]string) ([]string, error)) error {
	if err := r.path.Parent().MkdirAll(0755); err != nil {
		return fmt.Errorf("pending registry: %w", err)
	}

	fl := flock.New(r.path.String() + ".lock")
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("pending registry lock: %w", err)
	}

	defer func() {
		if err := fl.Close(); err != nil {
			Logger().Debug("failed to release registry lock", "path", fl.Path(), "err", err)
		}
	}()

	current, err := r.read()
	if err != nil {
		return err
	}

	updated, err := update(current)
	if err != nil {
		return err
	}

	return r.write(updated)
}

func (r *PendingRegistry) read() ([]string, error) {
	data, err := os.ReadFile(r.path.String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var f pendingFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("pending registry %s: %w", r.path, err)
	}

	return f.Paths, nil
}

func (r *PendingRegistry) write(paths []string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(pendingFile{Paths: paths}); err != nil {
		return err
	}

	tmp := r.path.String() + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp, r.path.String())
}
