package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arezlabs/chromepdf"
)

// Run executes the file command.
func (c *FileCmd) Run(deps *Dependencies) error {
	msg, err := deps.Converter.ConvertToFile(deps.Ctx, c.HTML, c.Output)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, msg)
	return nil
}

// Run executes the base64 command.
func (c *Base64Cmd) Run(deps *Dependencies) error {
	text, err := deps.Converter.ConvertToBase64(deps.Ctx, c.HTML)
	if err != nil {
		return err
	}
	if c.DecodeTo != "" {
		res, err := chromepdf.DecodeBase64(text)
		if err != nil {
			return err
		}
		if err := res.WriteToFile(c.DecodeTo, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", c.DecodeTo, err)
		}
	}
	fmt.Fprintln(deps.Stdout, text)
	return nil
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	reqs := make([]chromepdf.Request, len(c.Files))
	for i, f := range c.Files {
		reqs[i] = chromepdf.Request{HTML: f, Output: filepath.Join(c.OutDir, pdfName(f)), Mode: chromepdf.FileMode}
	}

	outcomes := chromepdf.ConvertAll(deps.Ctx, deps.Converter, reqs, c.Concurrency)

	var failed int
	for i, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %v\n", c.Files[i], o.Err)
			continue
		}
		fmt.Fprintln(deps.Stdout, o.Value)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(reqs))
	}
	return nil
}

// pdfName replaces the extension of an HTML file name with .pdf.
func pdfName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}
