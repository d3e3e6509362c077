package chromepdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"unicode"
)

// Base64Flag is passed in place of an output path to make the external
// binary print the PDF as Base64 on stdout.
const Base64Flag = "--base64"

// Converter converts HTML to PDF. [Invoker] is the production
// implementation; decorators and tests build on this interface.
type Converter interface {
	// ConvertToFile writes the PDF to outputPath and returns a message
	// naming the path.
	ConvertToFile(ctx context.Context, html, outputPath string) (string, error)
	// ConvertToBase64 returns the PDF as Base64 text.
	ConvertToBase64(ctx context.Context, html string) (string, error)
}

// Request is a single conversion. HTML is either markup or a path to an HTML
// file; the external binary decides which. Output is passed through as given
// in FileMode, even when empty, and ignored in Base64Mode.
type Request struct {
	HTML   string
	Output string
	Mode   Mode
}

// Invoker runs the external chrome-pdf binary, one child process per
// conversion. It holds no mutable state after construction and is safe for
// concurrent use.
type Invoker struct {
	cfg      invokerConfig
	platform Platform
	paths    PathSet
}

var _ Converter = (*Invoker)(nil)

// NewInvoker resolves the executable for the configured platform. An
// unsupported platform fails here with [ErrUnsupportedPlatform], before any
// process is spawned.
func NewInvoker(opts ...Option) (*Invoker, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	var (
		platform Platform
		err      error
	)
	if cfg.platform != "" {
		platform, err = ParsePlatform(cfg.platform)
	} else {
		platform, err = CurrentPlatform()
	}
	if err != nil {
		return nil, err
	}

	paths, err := ResolveBinary(platform, cfg.root)
	if err != nil {
		return nil, err
	}
	if cfg.binaryPath != "" {
		paths.Executable = cfg.binaryPath
	}
	if cfg.browserPath != "" {
		paths.Browser = cfg.browserPath
	}

	return &Invoker{cfg: cfg, platform: platform, paths: paths}, nil
}

// Platform returns the platform the invoker resolved paths for.
func (i *Invoker) Platform() Platform {
	return i.platform
}

// Paths returns the resolved executable and browser locations.
func (i *Invoker) Paths() PathSet {
	return i.paths
}

// Args builds the argument vector for req:
// [html, output-or-flag, browser?].
func (i *Invoker) Args(req Request) []string {
	target := req.Output
	if req.Mode == Base64Mode {
		target = Base64Flag
	}
	args := []string{req.HTML, target}
	if i.cfg.bundledBrowser && i.paths.Browser != "" {
		args = append(args, i.paths.Browser)
	}
	return args
}

// Start spawns the external binary for req and returns immediately. ctx
// bounds the child process: cancelling it kills the process. Every failure,
// including a ctx that is already done, is reported as a [*GenerationError].
func (i *Invoker) Start(ctx context.Context, req Request) *Conversion {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return finished(Outcome{Err: &GenerationError{Mode: req.Mode, ExitCode: -1, Err: err}})
	}
	conv := newConversion()

	cmd := exec.CommandContext(ctx, i.paths.Executable, i.Args(req)...)
	cmd.Env = i.cfg.env
	cmd.Dir = i.cfg.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	configureProcess(cmd)

	go func() {
		err := i.cfg.runner.Run(cmd)
		conv.deliver(i.outcome(req, cmd, err, stdout.String(), stderr.String()))
	}()
	return conv
}

// StartFile is Start for a file-mode request.
func (i *Invoker) StartFile(ctx context.Context, html, outputPath string) *Conversion {
	return i.Start(ctx, Request{HTML: html, Output: outputPath, Mode: FileMode})
}

// StartBase64 is Start for a Base64-mode request.
func (i *Invoker) StartBase64(ctx context.Context, html string) *Conversion {
	return i.Start(ctx, Request{HTML: html, Mode: Base64Mode})
}

// ConvertToFile runs the external binary and waits for it to write
// outputPath.
func (i *Invoker) ConvertToFile(ctx context.Context, html, outputPath string) (string, error) {
	o := i.StartFile(ctx, html, outputPath).Wait(context.Background())
	return o.Value, o.Err
}

// ConvertToBase64 runs the external binary and waits for the Base64 text.
func (i *Invoker) ConvertToBase64(ctx context.Context, html string) (string, error) {
	o := i.StartBase64(ctx, html).Wait(context.Background())
	return o.Value, o.Err
}

func (i *Invoker) outcome(req Request, cmd *exec.Cmd, err error, stdout, stderr string) Outcome {
	mode := req.Mode
	if err != nil {
		return Outcome{Err: &GenerationError{
			Mode:     mode,
			Stderr:   stderr,
			ExitCode: exitCodeFrom(err, cmd),
			Err:      err,
		}}
	}
	if mode == Base64Mode {
		return Outcome{Value: strings.TrimRightFunc(stdout, unicode.IsSpace)}
	}
	return Outcome{Value: fmt.Sprintf("PDF saved to %s", req.Output)}
}
