package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// RemovalReport says what RemoveBestEffort ended up doing. Removed is true
// when the immediate delete worked; otherwise Deferred and Failed count the
// files handed to, and refused by, the deferred deletion facility.
type RemovalReport struct {
	Removed  bool
	Deferred int
	Failed   int
}

// Remover deletes directory trees that may be held open by other processes.
type Remover struct {
	Fs       afero.Fs
	Platform Platform
}

func NewRemover(fs afero.Fs, platform Platform) *Remover {
	return &Remover{Fs: fs, Platform: platform}
}

// RemoveOrFail deletes dir and everything under it, returning whatever
// stopped it.
func (r *Remover) RemoveOrFail(dir string) error {
	return r.Fs.RemoveAll(dir)
}

// RemoveBestEffort deletes dir and everything under it. If that fails, every
// file still in the tree is registered for deletion at the next restart.
// Directories are left in place. Individual registration failures are logged
// and skipped; nothing is reported to the caller as an error.
func (r *Remover) RemoveBestEffort(dir string) RemovalReport {
	var report RemovalReport

	err := r.Fs.RemoveAll(dir)
	if err == nil {
		report.Removed = true
		return report
	}

	log := Logger().With("dir", dir)
	log.Info("immediate removal failed, deferring to restart", "err", err)

	walkErr := afero.Walk(r.Fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn("skipping unreadable entry", "path", path, "err", err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if err := r.Platform.DeleteAtReboot(path); err != nil {
			report.Failed++
			log.Warn("could not schedule deletion", "path", path, "err", err)
			return nil
		}

		report.Deferred++
		return nil
	})
	if walkErr != nil {
		log.Warn("listing remaining files failed", "err", walkErr)
	}

	log.Info("deferred removal scheduled", "deferred", report.Deferred, "failed", report.Failed)
	return report
}

// IsEmpty reports whether dir has no entries, files or directories. It stops
// at the first entry it sees.
func (r *Remover) IsEmpty(dir string) (bool, error) {
	f, err := r.Fs.Open(dir)
	if err != nil {
		return false, err
	}

	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}

	return false, err
}
