package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	main "github.com/arezlabs/chromepdf/cmd/chromepdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary mimics chrome-pdf: "fail..." markup exits 3 with "boom" on
// stderr, Base64 mode echoes the markup, file mode writes a fake PDF.
const fakeBinary = `#!/bin/sh
case "$1" in
fail*)
	printf 'boom' >&2
	exit 3
	;;
esac
if [ "$2" = "--base64" ]; then
	printf '%s\n' "$1"
	exit 0
fi
printf '%%PDF-1.4 %s' "$1" > "$2"
`

var fakeBinaryPath string

// TestMain writes the fake binary before any test forks.
func TestMain(m *testing.M) {
	code := func() int {
		if runtime.GOOS == "windows" {
			return m.Run()
		}
		dir, err := os.MkdirTemp("", "chromepdf-cli-*")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer os.RemoveAll(dir)

		fakeBinaryPath = filepath.Join(dir, "chrome-pdf")
		if err := os.WriteFile(fakeBinaryPath, []byte(fakeBinary), 0o755); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return m.Run()
	}()
	os.Exit(code)
}

// runWithBinary runs the CLI against the fake binary through the real invoker.
func runWithBinary(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	if fakeBinaryPath == "" {
		t.Skip("skipping: shell-script binaries need a Unix shell")
	}
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	args = append([]string{"--platform", "linux", "--binary", fakeBinaryPath}, args...)
	err = main.NewMain().Run(context.Background(), args, stdout, stderr)
	return stdout, stderr, err
}

func TestInvokerEndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("file writes the PDF", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "out.pdf")

		stdout, _, err := runWithBinary(t, "file", "<h1>hi</h1>", out)

		require.NoError(t, err)
		assert.Equal(t, "PDF saved to "+out+"\n", stdout.String())
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 <h1>hi</h1>", string(data))
	})

	t.Run("base64 prints trimmed stdout", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runWithBinary(t, "base64", "QUJD")

		require.NoError(t, err)
		assert.Equal(t, "QUJD\n", stdout.String())
	})

	t.Run("base64 decodes to a file", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "abc.pdf")

		_, _, err := runWithBinary(t, "base64", "--decode-to", out, "QUJD")

		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "ABC", string(data))
	})

	t.Run("failure surfaces stderr", func(t *testing.T) {
		t.Parallel()

		_, _, err := runWithBinary(t, "base64", "fail")

		require.EqualError(t, err, "chromepdf: error generating Base64 PDF: boom")
	})

	t.Run("batch converts every file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		outDir := filepath.Join(dir, "pdfs")

		stdout, _, err := runWithBinary(t, "batch", "--out-dir", outDir, "one.html", "two.html")

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(outDir, "one.pdf"))
		assert.FileExists(t, filepath.Join(outDir, "two.pdf"))
		assert.Contains(t, stdout.String(), "PDF saved to "+filepath.Join(outDir, "two.pdf"))
	})
}
