package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/arezlabs/chromepdf"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Converter chromepdf.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root           string        `default:"." env:"CHROMEPDF_ROOT" help:"Directory containing bin/ and chromium/"`
	Binary         string        `env:"CHROMEPDF_BINARY" help:"Converter executable, overrides the platform default"`
	Browser        string        `env:"CHROMEPDF_BROWSER" help:"Browser executable passed to the converter"`
	Platform       string        `env:"CHROMEPDF_PLATFORM" help:"Target platform (linux, macos, windows)"`
	BundledBrowser bool          `env:"CHROMEPDF_BUNDLED_BROWSER" help:"Pass the bundled Chromium path to the converter"`
	Timeout        time.Duration `help:"Kill conversions that run longer than this (0 disables)"`
	Verbose        bool          `short:"v" help:"Log every conversion to stderr"`

	File   FileCmd   `cmd:"" help:"Convert HTML and write the PDF to a file"`
	Base64 Base64Cmd `cmd:"" name:"base64" help:"Convert HTML and print the PDF as Base64"`
	Batch  BatchCmd  `cmd:"" help:"Convert several HTML files concurrently"`
}

// invokerOptions maps global flags onto invoker options.
func (c *CLI) invokerOptions() []chromepdf.Option {
	opts := []chromepdf.Option{chromepdf.WithRoot(c.Root)}
	if c.Platform != "" {
		opts = append(opts, chromepdf.WithPlatform(c.Platform))
	}
	if c.Binary != "" {
		opts = append(opts, chromepdf.WithBinaryPath(c.Binary))
	}
	if c.Browser != "" {
		opts = append(opts, chromepdf.WithBrowserPath(c.Browser))
	}
	if c.BundledBrowser {
		opts = append(opts, chromepdf.WithBundledBrowser())
	}
	return opts
}

// FileCmd is the "file" subcommand.
type FileCmd struct {
	HTML   string `arg:"" help:"HTML markup or path to an HTML file"`
	Output string `arg:"" help:"PDF output path"`
}

// Base64Cmd is the "base64" subcommand.
type Base64Cmd struct {
	HTML     string `arg:"" help:"HTML markup or path to an HTML file"`
	DecodeTo string `help:"Also decode the Base64 output and write the PDF here"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Files       []string `arg:"" help:"HTML files to convert"`
	OutDir      string   `short:"o" required:"" help:"Directory for the generated PDFs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent conversion limit (0 means unlimited)"`
}
