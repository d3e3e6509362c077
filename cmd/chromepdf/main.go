// chromepdf converts HTML to PDF by driving the bundled chrome-pdf binary.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/arezlabs/chromepdf"
	pdfslog "github.com/arezlabs/chromepdf/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Converter replaces the invoker built from flags. Set in tests.
	Converter chromepdf.Converter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("chromepdf"),
		kong.Description("Convert HTML to PDF with headless Chromium."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'chromepdf --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Timeout > 0 {
		var cancel context.CancelFunc
		deps.Ctx, cancel = context.WithTimeout(ctx, cli.Timeout)
		defer cancel()
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	conv := m.Converter
	if conv == nil {
		inv, err := chromepdf.NewInvoker(cli.invokerOptions()...)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set CHROMEPDF_PLATFORM or CHROMEPDF_BINARY to override detection")
			return err
		}
		deps.Logger.Debug("resolved converter",
			"platform", inv.Platform(),
			"executable", inv.Paths().Executable,
			"browser", inv.Paths().Browser,
		)
		conv = inv
	}
	deps.Converter = pdfslog.NewLoggingConverter(conv, deps.Logger)

	return kongCtx.Run(deps)
}
