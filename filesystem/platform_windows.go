//go:build windows

package filesystem

import (
	"io/fs"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	modshlwapi  = windows.NewLazySystemDLL("shlwapi.dll")

	procCreateSymbolicLinkW = modkernel32.NewProc("CreateSymbolicLinkW")
	procPathRelativePathToW = modshlwapi.NewProc("PathRelativePathToW")
)

type windowsPlatform struct{}

// NewPlatform returns the native platform. Options only matter on systems
// without a deferred deletion facility of their own and are ignored here.
func NewPlatform(opts ...PlatformOption) Platform {
	return windowsPlatform{}
}

func (windowsPlatform) CreateSymbolicLink(link, target string, flags LinkFlags) LinkResult {
	linkp, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return LinkResult{Code: windows.ERROR_INVALID_NAME}
	}

	targetp, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return LinkResult{Code: windows.ERROR_INVALID_NAME}
	}

	r1, _, lastErr := procCreateSymbolicLinkW.Call(
		uintptr(unsafe.Pointer(linkp)),
		uintptr(unsafe.Pointer(targetp)),
		uintptr(flags),
	)

	code, _ := lastErr.(syscall.Errno)
	return LinkResult{Succeeded: r1 != 0, Code: code}
}

func (windowsPlatform) DeleteAtReboot(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	return windows.MoveFileEx(p, nil, windows.MOVEFILE_DELAY_UNTIL_REBOOT)
}

func (windowsPlatform) RelativePath(from string, fromIsDir bool, to string, toIsDir bool) (string, error) {
	fromp, err := windows.UTF16PtrFromString(from)
	if err != nil {
		return "", err
	}

	top, err := windows.UTF16PtrFromString(to)
	if err != nil {
		return "", err
	}

	buf := make([]uint16, MaxRelativePath)
	r1, _, lastErr := procPathRelativePathToW.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(fromp)),
		uintptr(attributes(fromIsDir)),
		uintptr(unsafe.Pointer(top)),
		uintptr(attributes(toIsDir)),
	)
	if r1 == 0 {
		if code, ok := lastErr.(syscall.Errno); ok && code != 0 {
			return "", code
		}

		return "", syscall.EINVAL
	}

	return strings.TrimPrefix(windows.UTF16ToString(buf), `.\`), nil
}

func attributes(isDir bool) uint32 {
	if isDir {
		return windows.FILE_ATTRIBUTE_DIRECTORY
	}

	return 0
}

func isLink(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, &fs.PathError{Op: "getfileattributes", Path: path, Err: err}
	}

	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}
