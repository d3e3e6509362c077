package chromepdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// Result holds a generated PDF and provides helpers for common output
// formats such as raw bytes, base64 encoding, and streaming readers.
type Result struct {
	data []byte
}

// NewResult wraps raw PDF bytes.
func NewResult(data []byte) *Result {
	return &Result{data: data}
}

// DecodeBase64 decodes the text returned by [Invoker.ConvertToBase64].
func DecodeBase64(text string) (*Result, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("chromepdf: decoding base64 output: %w", err)
	}
	return &Result{data: data}, nil
}

// Bytes returns the raw PDF content.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the PDF encoded as a standard base64 string (RFC 4648).
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the PDF content.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full PDF content to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the PDF to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the PDF in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// IsPDF reports whether the content starts with the PDF magic number.
func (r *Result) IsPDF() bool {
	return bytes.HasPrefix(r.data, []byte("%PDF-"))
}
