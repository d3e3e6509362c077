package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/arezlabs/chromepdf"
	"github.com/google/uuid"
)

// Ensure LoggingConverter implements chromepdf.Converter.
var _ chromepdf.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter and logs every conversion.
type LoggingConverter struct {
	next   chromepdf.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next chromepdf.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// ConvertToFile delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) ConvertToFile(ctx context.Context, html, outputPath string) (msg string, err error) {
	id := uuid.NewString()
	c.logger.Debug("convert start", "id", id, "mode", chromepdf.FileMode.String(), "output", outputPath)
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"id", id,
			"mode", chromepdf.FileMode.String(),
			"output", outputPath,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ConvertToFile(ctx, html, outputPath)
}

// ConvertToBase64 delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) ConvertToBase64(ctx context.Context, html string) (text string, err error) {
	id := uuid.NewString()
	c.logger.Debug("convert start", "id", id, "mode", chromepdf.Base64Mode.String())
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"id", id,
			"mode", chromepdf.Base64Mode.String(),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ConvertToBase64(ctx, html)
}
