package chromepdf

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Platform identifies an operating system the external binary is built for.
type Platform string

// Supported platforms.
const (
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
	Windows Platform = "windows"
)

// BinaryName is the base name of the external converter executable.
const BinaryName = "chrome-pdf"

// PathSet holds the resolved locations for one platform.
type PathSet struct {
	// Executable is the external converter binary.
	Executable string
	// Browser is the bundled headless browser. It is only passed to the
	// executable when the invoker is configured with [WithBundledBrowser].
	Browser string
}

// ParsePlatform maps an operating system name to a [Platform]. Both Go's
// GOOS names ("darwin") and the friendly names ("macos") are accepted.
func ParsePlatform(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linux":
		return Linux, nil
	case "darwin", "macos":
		return MacOS, nil
	case "windows":
		return Windows, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, name)
}

// CurrentPlatform returns the platform of the running process.
func CurrentPlatform() (Platform, error) {
	return ParsePlatform(runtime.GOOS)
}

// ResolveBinary returns the executable and browser paths for p, relative to
// root. It has no side effects and never touches the file system, so a
// missing binary is only discovered when a conversion is attempted.
func ResolveBinary(p Platform, root string) (PathSet, error) {
	switch p {
	case Linux:
		return PathSet{
			Executable: filepath.Join(root, "bin", BinaryName+"-linux"),
			Browser:    filepath.Join(root, "chromium", "linux", "chrome-linux", "chrome"),
		}, nil
	case MacOS:
		return PathSet{
			Executable: filepath.Join(root, "bin", BinaryName+"-darwin"),
			Browser:    filepath.Join(root, "chromium", "macos", "chrome-mac", "Chromium.app", "Contents", "MacOS", "Chromium"),
		}, nil
	case Windows:
		return PathSet{
			Executable: filepath.Join(root, "bin", BinaryName+"-windows.exe"),
			Browser:    filepath.Join(root, "chromium", "windows", "chrome-win", "chrome.exe"),
		}, nil
	}
	return PathSet{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, string(p))
}
