//go:build windows

package filesystem

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsRelativePath(t *testing.T) {
	testCases := []struct {
		Name   string
		From   string
		To     string
		Expect string
	}{
		{Name: "sibling", From: `C:\a\b`, To: `C:\a\c\dir`, Expect: `..\c\dir`},
		{Name: "nested", From: `C:\a`, To: `C:\a\x\y\z`, Expect: `x\y\z`},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			rel, err := windowsPlatform{}.RelativePath(tc.From, true, tc.To, true)
			require.NoError(t, err)
			assert.Equal(t, tc.Expect, rel)
		})
	}
}

func TestWindowsRelativePathDifferentDrives(t *testing.T) {
	_, err := windowsPlatform{}.RelativePath(`C:\a`, true, `D:\b`, true)
	require.Error(t, err)
}

func TestWindowsLinkerRelative(t *testing.T) {
	linker := NewLinker(NewPlatform())

	rel, err := linker.Relative(`C:\a\b\link`, `C:\a\c\dir`, true)
	require.NoError(t, err)
	assert.Equal(t, `..\c\dir`, rel)

	rel, err = linker.Relative(`C:\a\link\`, `C:\a\x\y\z`, true)
	require.NoError(t, err)
	assert.Equal(t, `x\y\z`, rel)
}

func TestWindowsCreateSymbolicLinkMissingParent(t *testing.T) {
	dir := t.TempDir()

	res := windowsPlatform{}.CreateSymbolicLink(dir+`\missing\link`, dir, LinkDirectory)
	assert.False(t, res.Succeeded)
	assert.NotEqual(t, syscall.Errno(0), res.Code)

	err := NewLinker(NewPlatform()).CreateLink(dir+`\missing\link`, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLinkCreationFailed))
}
