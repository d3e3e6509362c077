// Package render drives headless Chromium to print HTML as PDF. It backs the
// chrome-pdf executable; library users go through chromepdf.Invoker instead.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arezlabs/chromepdf"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrClosed is returned when attempting to use a closed [Converter].
var ErrClosed = errors.New("render: converter is closed")

// config holds internal configuration for a Converter.
type config struct {
	chromePath   string
	timeout      time.Duration
	settle       time.Duration
	noSandbox    bool
	autoDownload bool
}

func defaultConfig() config {
	return config{
		timeout: 60 * time.Second,
		settle:  2 * time.Second,
	}
}

// Option configures a [Converter].
type Option func(*config)

// WithChromePath sets the Chrome or Chromium executable. By default chromedp
// searches the standard install locations.
func WithChromePath(path string) Option {
	return func(c *config) {
		c.chromePath = path
	}
}

// WithTimeout bounds a single conversion, including the settle delay. A zero
// or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithSettle sets how long to wait after the document is ready before
// printing, giving scripts and web fonts time to finish. Defaults to 2s.
func WithSettle(d time.Duration) Option {
	return func(c *config) {
		c.settle = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *config) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a compatible Chromium build when no executable
// path is configured.
func WithAutoDownload() Option {
	return func(c *config) {
		c.autoDownload = true
	}
}

// Converter prints HTML documents through one browser process that is reused
// across conversions. It is safe for concurrent use.
type Converter struct {
	cfg           config
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewConverter starts a headless browser. The caller must call
// [Converter.Close] when finished.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-software-rasterizer", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("no-first-run", true),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("render: starting browser: %w", err)
	}

	return &Converter{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close stops the browser. Close is idempotent.
func (c *Converter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.browserCancel()
	c.allocCancel()
	return nil
}

// ConvertHTML prints an HTML string. A nil pg uses [DefaultPageConfig].
func (c *Converter) ConvertHTML(ctx context.Context, html string, pg *PageConfig) (*chromepdf.Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "chromepdf-*.html")
	if err != nil {
		return nil, fmt.Errorf("render: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, fmt.Errorf("render: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("render: closing temp file: %w", err)
	}
	return c.ConvertFile(ctx, name, pg)
}

// ConvertFile prints a local HTML file. A nil pg uses [DefaultPageConfig].
func (c *Converter) ConvertFile(ctx context.Context, path string, pg *PageConfig) (*chromepdf.Result, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("render: resolving path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return c.convert(ctx, "file://"+filepath.ToSlash(abs), pg)
}

func (c *Converter) convert(ctx context.Context, targetURL string, pg *PageConfig) (*chromepdf.Result, error) {
	resolved := pg.resolved()

	if c.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(c.browserCtx)
	defer tabCancel()

	// Tie the tab to the caller's deadline.
	stop := context.AfterFunc(ctx, tabCancel)
	defer stop()

	width, height := resolved.paperDimensions()
	marginTop, marginRight, marginBottom, marginLeft := resolved.marginInches()

	tasks := chromedp.Tasks{
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if c.cfg.settle > 0 {
		tasks = append(tasks, chromedp.Sleep(c.cfg.settle))
	}

	var buf []byte
	tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPaperWidth(width).
			WithPaperHeight(height).
			WithMarginTop(marginTop).
			WithMarginRight(marginRight).
			WithMarginBottom(marginBottom).
			WithMarginLeft(marginLeft).
			WithScale(resolved.Scale).
			WithPrintBackground(resolved.PrintBackground).
			WithLandscape(resolved.Orientation == Landscape).
			Do(ctx)
		return err
	}))

	if err := chromedp.Run(tabCtx, tasks); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("render: conversion failed: %w", ctxErr)
		}
		return nil, fmt.Errorf("render: conversion failed: %w", err)
	}

	return chromepdf.NewResult(buf), nil
}

func (c *Converter) checkClosed() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	return nil
}
