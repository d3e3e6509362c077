package mock

import (
	"context"

	"github.com/arezlabs/chromepdf"
)

var _ chromepdf.Converter = (*Converter)(nil)

// Converter is a mock implementation of chromepdf.Converter.
type Converter struct {
	ConvertToFileFn   func(ctx context.Context, html, outputPath string) (string, error)
	ConvertToBase64Fn func(ctx context.Context, html string) (string, error)
}

func (c *Converter) ConvertToFile(ctx context.Context, html, outputPath string) (string, error) {
	return c.ConvertToFileFn(ctx, html, outputPath)
}

func (c *Converter) ConvertToBase64(ctx context.Context, html string) (string, error) {
	return c.ConvertToBase64Fn(ctx, html)
}
