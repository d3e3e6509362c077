// chrome-pdf renders HTML to PDF with headless Chromium. It is the external
// binary driven by chromepdf.Invoker.
//
// Usage:
//
//	chrome-pdf <html|file.html> <output.pdf> [browser]
//	chrome-pdf <html|file.html> --base64 [browser]
//
// Base64 mode prints the encoded PDF on stdout. Failures are written to
// stderr with a non-zero exit status.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/arezlabs/chromepdf"
	"github.com/arezlabs/chromepdf/internal/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  chrome-pdf <html|file.html> <output.pdf> [browser]
  chrome-pdf <html|file.html> --base64 [browser]

Environment:
  CHROMEPDF_SETTLE         delay before printing, e.g. 500ms (default 2s)
  CHROMEPDF_PAPER          letter, a4 or legal (default letter)
  CHROMEPDF_AUTO_DOWNLOAD  fetch a Chromium build when none is given
`)
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// Renderer prints HTML to PDF. *render.Converter implements it.
type Renderer interface {
	ConvertHTML(ctx context.Context, html string, pg *render.PageConfig) (*chromepdf.Result, error)
	ConvertFile(ctx context.Context, path string, pg *render.PageConfig) (*chromepdf.Result, error)
	Close() error
}

// Main represents the program.
type Main struct {
	// Getenv reads configuration. Defaults to os.Getenv.
	Getenv func(string) string

	// NewRenderer starts the browser. Replaced in tests.
	NewRenderer func(opts ...render.Option) (Renderer, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		NewRenderer: func(opts ...render.Option) (Renderer, error) {
			return render.NewConverter(opts...)
		},
	}
}

// invocation is a parsed argument vector.
type invocation struct {
	html    string
	output  string
	base64  bool
	browser string
}

func parseArgs(args []string) (invocation, error) {
	if len(args) < 2 || len(args) > 3 {
		return invocation{}, &usageError{msg: fmt.Sprintf("expected 2 or 3 arguments, got %d", len(args))}
	}
	inv := invocation{html: args[0]}
	if args[1] == chromepdf.Base64Flag {
		inv.base64 = true
	} else {
		inv.output = args[1]
	}
	if inv.output == "" && !inv.base64 {
		return invocation{}, &usageError{msg: "output path is empty"}
	}
	if len(args) == 3 {
		inv.browser = args[2]
	}
	return inv, nil
}

// Run executes one conversion.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	inv, err := parseArgs(args)
	if err != nil {
		return err
	}

	opts, pg, err := m.configure(inv)
	if err != nil {
		return err
	}

	r, err := m.NewRenderer(opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	var res *chromepdf.Result
	if isFile(inv.html) {
		res, err = r.ConvertFile(ctx, inv.html, pg)
	} else {
		res, err = r.ConvertHTML(ctx, inv.html, pg)
	}
	if err != nil {
		return err
	}

	if inv.base64 {
		_, err := fmt.Fprintln(stdout, res.Base64())
		return err
	}
	if err := res.WriteToFile(inv.output, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", inv.output, err)
	}
	return nil
}

func (m *Main) configure(inv invocation) ([]render.Option, *render.PageConfig, error) {
	opts := []render.Option{render.WithNoSandbox()}
	if inv.browser != "" {
		opts = append(opts, render.WithChromePath(inv.browser))
	}

	if v := m.Getenv("CHROMEPDF_SETTLE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, nil, fmt.Errorf("CHROMEPDF_SETTLE: %w", err)
		}
		opts = append(opts, render.WithSettle(d))
	}

	if v := m.Getenv("CHROMEPDF_AUTO_DOWNLOAD"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, nil, fmt.Errorf("CHROMEPDF_AUTO_DOWNLOAD: %w", err)
		}
		if on {
			opts = append(opts, render.WithAutoDownload())
		}
	}

	size, err := render.ParsePageSize(m.Getenv("CHROMEPDF_PAPER"))
	if err != nil {
		return nil, nil, err
	}
	pg := render.DefaultPageConfig()
	pg.Size = size

	return opts, &pg, nil
}

// isFile reports whether s names an existing regular file. Anything else,
// including markup too long to be a path, is treated as markup.
func isFile(s string) bool {
	fi, err := os.Stat(s)
	return err == nil && fi.Mode().IsRegular()
}
