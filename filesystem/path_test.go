package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathParents(t *testing.T) {
	assert.Equal(t, []Path{"/foo/bar/baz", "/foo/bar", "/foo", "/"}, Path("/foo/bar/baz/1").Parents())
	assert.Equal(t, []Path{"foo/bar/baz", "foo/bar", "foo", "."}, Path("foo/bar/baz/1").Parents())
}

func TestPathResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix style absolute paths")
	}

	root := Path("/plans/tweaks")
	assert.Equal(t, Path("/plans/tweaks/data"), root.Resolve("data"))
	assert.Equal(t, Path("/opt/data"), root.Resolve("/opt/data"))
}

func TestMkdirAllExisting(t *testing.T) {
	dir := MakePath(t.TempDir(), "a", "b")

	require.NoError(t, dir.MkdirAll(0755))
	require.NoError(t, dir.MkdirAll(0755))
	require.DirExists(t, dir.String())
}

func TestMkdirAllOverFile(t *testing.T) {
	file := MakePath(t.TempDir(), "file")
	require.NoError(t, file.WriteFile([]byte("x"), 0644))

	require.Error(t, file.MkdirAll(0755))
	require.Error(t, file.Join("child").MkdirAll(0755))
}

func TestIsLink(t *testing.T) {
	tmp := MakePath(t.TempDir())
	target := tmp.Join("target")
	require.NoError(t, target.MkdirAll(0755))

	link := tmp.Join("link")
	if err := os.Symlink(target.String(), link.String()); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	isLink, err := link.IsLink()
	require.NoError(t, err)
	assert.True(t, isLink)

	isLink, err = target.IsLink()
	require.NoError(t, err)
	assert.False(t, isLink)

	_, err = tmp.Join("missing").IsLink()
	require.Error(t, err)
}

func TestRemoveFiles(t *testing.T) {
	tmp := MakePath(t.TempDir())
	a, b := tmp.Join("a"), tmp.Join("b")
	require.NoError(t, a.WriteFile(nil, 0644))
	require.NoError(t, b.WriteFile(nil, 0644))

	require.NoError(t, RemoveFiles(a, b))
	assert.NoFileExists(t, a.String())
	assert.NoFileExists(t, b.String())

	err := RemoveFiles(a)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestTrimSeparators(t *testing.T) {
	sep := string(filepath.Separator)

	assert.Equal(t, "a"+sep+"link", trimSeparators("a"+sep+"link"+sep+sep))
	assert.Equal(t, "a/link", trimSeparators("a/link/"))
	assert.Equal(t, sep, trimSeparators(sep))
}
