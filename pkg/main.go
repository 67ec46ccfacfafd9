package pkg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

var (
	ErrPlanInstalled    = errors.New("pkg: plan installed")
	ErrPlanNotInstalled = errors.New("pkg: plan not installed")
)

// ManifestName is the file a plan directory must contain.
const ManifestName = "sophifs.toml"

type Plan interface {
	Installed() (bool, error)
	Install(ctx context.Context) error
	Uninstall() error
	RunHookIfExists(name string) error
	Name() string
}

type LinkEntry struct {
	Path     string `toml:"path"`
	Target   string `toml:"target"`
	Relative bool   `toml:"relative,omitempty"`
}

type DownloadEntry struct {
	URL  string `toml:"url"`
	Path string `toml:"path"`
}

type CleanupEntry struct {
	Path string `toml:"path"`
	Lazy bool   `toml:"lazy,omitempty"`
}

type Manifest struct {
	Name        string          `toml:"name,omitempty"`
	Hooks       string          `toml:"hooks,omitempty"`
	Directories []string        `toml:"directories,omitempty"`
	Links       []LinkEntry     `toml:"link,omitempty"`
	Downloads   []DownloadEntry `toml:"download,omitempty"`
	Cleanup     []CleanupEntry  `toml:"cleanup,omitempty"`
}

type Loader struct {
	Root     filesystem.Path
	Platform filesystem.Platform
}

func (l Loader) DefaultManifest() Manifest {
	return Manifest{
		Name:  l.Root.Basename(),
		Hooks: "hooks",
	}
}

func (l Loader) Load() (Plan, error) {
	f, err := l.Root.Join(ManifestName).Open()
	if err != nil {
		return nil, err
	}

	defer f.Close()

	m := l.DefaultManifest()

	if err := toml.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("%s: %w", l.Root.Join(ManifestName), err)
	}

	return &localPlan{
		Root:     l.Root,
		Manifest: m,
		Linker:   filesystem.NewLinker(l.Platform),
		Remover:  filesystem.NewRemover(afero.NewOsFs(), l.Platform),
	}, nil
}

type localPlan struct {
	// Root is the directory holding the manifest. Relative paths in the
	// manifest are resolved against it.
	Root filesystem.Path

	Manifest Manifest

	Linker  *filesystem.Linker
	Remover *filesystem.Remover
}

func (p localPlan) Name() string {
	return p.Manifest.Name
}

func (p localPlan) RunHookIfExists(name string) error {
	executable := p.Root.Resolve(p.Manifest.Hooks).Join(name)
	exists, err := executable.Exists()
	if err != nil {
		return err
	}

	if !exists {
		return nil
	}

	cmd := exec.Command(executable.String(), p.Root.String())

	cmd.Env = []string{
		fmt.Sprintf("SOPHIFS_PLAN=%s", p.Manifest.Name),
		fmt.Sprintf("SOPHIFS_ROOT=%s", p.Root.String()),
	}
	return cmd.Run()
}

// Installed reports whether every link of the plan is present. A plan
// without links is never considered installed.
func (p localPlan) Installed() (bool, error) {
	if len(p.Manifest.Links) == 0 {
		return false, nil
	}

	for _, entry := range p.Manifest.Links {
		exists, err := p.Root.Resolve(entry.Path).Exists()
		if err != nil {
			return false, err
		}

		if !exists {
			return false, nil
		}
	}

	return true, nil
}

func (p localPlan) Install(ctx context.Context) error {
	installed, err := p.Installed()
	if err != nil {
		return err
	}

	if installed {
		return ErrPlanInstalled
	}

	for _, dir := range p.Manifest.Directories {
		if err := p.Root.Resolve(dir).MkdirAll(0755); err != nil {
			return err
		}
	}

	for _, entry := range p.Manifest.Downloads {
		dst := p.Root.Resolve(entry.Path)
		if err := dst.Parent().MkdirAll(0755); err != nil {
			return err
		}

		if err := filesystem.Download(ctx, entry.URL, dst); err != nil {
			return err
		}
	}

	for _, entry := range p.Manifest.Links {
		link := p.Root.Resolve(entry.Path)
		if err := link.Parent().MkdirAll(0755); err != nil {
			return err
		}

		target := p.Root.Resolve(entry.Target)
		if err := p.Linker.CreateDirectoryLink(link.String(), target.String(), entry.Relative); err != nil {
			return err
		}
	}

	for _, entry := range p.Manifest.Cleanup {
		dir := p.Root.Resolve(entry.Path)

		if entry.Lazy {
			report := p.Remover.RemoveBestEffort(dir.String())
			Logger().Info("cleanup", "plan", p.Name(), "dir", dir.String(), "removed", report.Removed, "deferred", report.Deferred)
			continue
		}

		if err := p.Remover.RemoveOrFail(dir.String()); err != nil {
			return err
		}
	}

	return nil
}

func (p localPlan) Uninstall() error {
	anyLink := false

	for _, entry := range p.Manifest.Links {
		link := p.Root.Resolve(entry.Path)

		isLink, err := link.IsLink()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return err
		}

		// Never remove something the plan did not create
		if !isLink {
			continue
		}

		anyLink = true
		if err := link.Remove(); err != nil {
			return err
		}

		// Remove empty parent directories, stopping at the plan root
		for _, parent := range link.Parents() {
			if !within(p.Root, parent) {
				break
			}

			empty, err := p.Remover.IsEmpty(parent.String())
			if err != nil || !empty {
				break
			}

			if err := parent.Remove(); err != nil {
				return err
			}
		}
	}

	if !anyLink && len(p.Manifest.Links) > 0 {
		return ErrPlanNotInstalled
	}

	return nil
}

// within reports whether p lies strictly below root.
func within(root, p filesystem.Path) bool {
	rel, err := filepath.Rel(root.String(), p.String())
	if err != nil || rel == "." {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

type ApplyOptions struct {
	Delete bool
}

const (
	HookBeforeUninstallAll = "before_uninstall_all"
	HookAfterUninstallAll  = "after_uninstall_all"
	HookBeforeUninstall    = "before_uninstall"
	HookAfterUninstall     = "after_uninstall"
	HookBeforeInstall      = "before_install"
	HookAfterInstall       = "after_install"
	HookBeforeInstallAll   = "before_install_all"
	HookAfterInstallAll    = "after_install_all"
)

func Apply(ctx context.Context, options ApplyOptions, plans ...Plan) error {
	for _, plan := range plans {
		hook := HookBeforeInstallAll
		if options.Delete {
			hook = HookBeforeUninstallAll
		}

		if err := plan.RunHookIfExists(hook); err != nil {
			return err
		}
	}

	for _, plan := range plans {
		installed, err := plan.Installed()
		if err != nil {
			return err
		}

		if installed {
			if err := plan.RunHookIfExists(HookBeforeUninstall); err != nil {
				return err
			}

			if err := plan.Uninstall(); err != nil {
				return err
			}

			if err := plan.RunHookIfExists(HookAfterUninstall); err != nil {
				return err
			}
		}

		if !options.Delete {
			if err := plan.RunHookIfExists(HookBeforeInstall); err != nil {
				return err
			}

			if err := plan.Install(ctx); err != nil {
				return err
			}

			if err := plan.RunHookIfExists(HookAfterInstall); err != nil {
				return err
			}
		}
	}

	for _, plan := range plans {
		hook := HookAfterInstallAll
		if options.Delete {
			hook = HookAfterUninstallAll
		}

		if err := plan.RunHookIfExists(hook); err != nil {
			return err
		}
	}

	return nil
}
