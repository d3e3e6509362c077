package chromepdf_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arezlabs/chromepdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want chromepdf.Platform
	}{
		{"linux", chromepdf.Linux},
		{"darwin", chromepdf.MacOS},
		{"macos", chromepdf.MacOS},
		{"MacOS", chromepdf.MacOS},
		{"windows", chromepdf.Windows},
		{" Windows ", chromepdf.Windows},
	}
	for _, tt := range tests {
		got, err := chromepdf.ParsePlatform(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestParsePlatform_Unsupported(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"plan9", "freebsd", "js", ""} {
		_, err := chromepdf.ParsePlatform(name)
		require.ErrorIs(t, err, chromepdf.ErrUnsupportedPlatform, name)
	}
}

func TestResolveBinary(t *testing.T) {
	t.Parallel()

	root := filepath.Join("opt", "chromepdf")
	tests := []struct {
		platform   chromepdf.Platform
		executable string
		browser    string
	}{
		{
			chromepdf.Linux,
			filepath.Join(root, "bin", "chrome-pdf-linux"),
			filepath.Join(root, "chromium", "linux", "chrome-linux", "chrome"),
		},
		{
			chromepdf.MacOS,
			filepath.Join(root, "bin", "chrome-pdf-darwin"),
			filepath.Join(root, "chromium", "macos", "chrome-mac", "Chromium.app", "Contents", "MacOS", "Chromium"),
		},
		{
			chromepdf.Windows,
			filepath.Join(root, "bin", "chrome-pdf-windows.exe"),
			filepath.Join(root, "chromium", "windows", "chrome-win", "chrome.exe"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.platform), func(t *testing.T) {
			t.Parallel()

			paths, err := chromepdf.ResolveBinary(tt.platform, root)
			require.NoError(t, err)
			assert.Equal(t, tt.executable, paths.Executable)
			assert.Equal(t, tt.browser, paths.Browser)
		})
	}
}

func TestResolveBinary_SupportedResolvedBeforeUnsupported(t *testing.T) {
	t.Parallel()

	// Resolving every supported platform must succeed regardless of what
	// fails afterwards.
	for _, p := range []chromepdf.Platform{chromepdf.Linux, chromepdf.MacOS, chromepdf.Windows} {
		assert.NotPanics(t, func() {
			_, err := chromepdf.ResolveBinary(p, ".")
			assert.NoError(t, err)
		})
	}

	_, err := chromepdf.ResolveBinary(chromepdf.Platform("plan9"), ".")
	require.ErrorIs(t, err, chromepdf.ErrUnsupportedPlatform)
}

func TestCurrentPlatform(t *testing.T) {
	t.Parallel()

	p, err := chromepdf.CurrentPlatform()
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		require.NoError(t, err)
		assert.NotEmpty(t, p)
	default:
		require.ErrorIs(t, err, chromepdf.ErrUnsupportedPlatform)
	}
}
