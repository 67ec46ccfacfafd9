package filesystem_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alexibraimov/sophifs/filesystem"
	"github.com/alexibraimov/sophifs/filesystem/mocks"
)

// lockedTree returns a filesystem that refuses every write, holding a small
// tree under root.
func lockedTree(t *testing.T, root string, files ...string) afero.Fs {
	t.Helper()

	base := afero.NewMemMapFs()
	for _, name := range files {
		path := filepath.Join(root, name)
		require.NoError(t, base.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(base, path, []byte(name), 0644))
	}
	require.NoError(t, base.MkdirAll(filepath.Join(root, "empty"), 0755))

	return afero.NewReadOnlyFs(base)
}

func TestRemoveBestEffortImmediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)

	tmp := filesystem.MakePath(t.TempDir())
	dir := tmp.Join("tree")
	require.NoError(t, dir.Join("sub").MkdirAll(0755))
	require.NoError(t, dir.Join("sub", "file").WriteFile([]byte("x"), 0644))

	remover := filesystem.NewRemover(afero.NewOsFs(), platform)

	report := remover.RemoveBestEffort(dir.String())
	assert.True(t, report.Removed)
	assert.NoDirExists(t, dir.String())

	report = remover.RemoveBestEffort(dir.String())
	assert.True(t, report.Removed)
}

func TestRemoveBestEffortDefersEveryFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)

	root := filepath.Join(string(filepath.Separator), "tree")
	fs := lockedTree(t, root, "a.txt", filepath.Join("sub", "b.txt"), filepath.Join("sub", "deep", "c.txt"))

	platform.EXPECT().DeleteAtReboot(filepath.Join(root, "a.txt")).Times(1).Return(nil)
	platform.EXPECT().DeleteAtReboot(filepath.Join(root, "sub", "b.txt")).Times(1).Return(errors.New("access denied"))
	platform.EXPECT().DeleteAtReboot(filepath.Join(root, "sub", "deep", "c.txt")).Times(1).Return(nil)

	report := filesystem.NewRemover(fs, platform).RemoveBestEffort(root)
	assert.False(t, report.Removed)
	assert.Equal(t, 2, report.Deferred)
	assert.Equal(t, 1, report.Failed)

	exists, err := afero.DirExists(fs, filepath.Join(root, "empty"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRemoveBestEffortWithoutDeferredDeletion(t *testing.T) {
	skipOnWindows(t)

	root := filepath.Join(string(filepath.Separator), "tree")
	fs := lockedTree(t, root, "a.txt")

	platform := filesystem.NewPlatform()
	report := filesystem.NewRemover(fs, platform).RemoveBestEffort(root)

	assert.False(t, report.Removed)
	assert.Equal(t, 0, report.Deferred)
	assert.Equal(t, 1, report.Failed)
}

func TestRemoveOrFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	platform := mocks.NewMockPlatform(ctrl)

	root := filepath.Join(string(filepath.Separator), "tree")
	fs := lockedTree(t, root, "a.txt")

	err := filesystem.NewRemover(fs, platform).RemoveOrFail(root)
	require.Error(t, err)

	tmp := filesystem.MakePath(t.TempDir())
	dir := tmp.Join("gone")
	require.NoError(t, dir.MkdirAll(0755))
	require.NoError(t, filesystem.NewRemover(afero.NewOsFs(), platform).RemoveOrFail(dir.String()))
	assert.NoDirExists(t, dir.String())
}

func TestIsEmpty(t *testing.T) {
	tmp := filesystem.MakePath(t.TempDir())
	remover := filesystem.NewRemover(afero.NewOsFs(), filesystem.NewPlatform())

	empty, err := remover.IsEmpty(tmp.String())
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, tmp.Join("only-a-dir").MkdirAll(0755))

	empty, err = remover.IsEmpty(tmp.String())
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = remover.IsEmpty(tmp.Join("missing").String())
	require.Error(t, err)
}
