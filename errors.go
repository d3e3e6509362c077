package chromepdf

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the library.
var (
	// ErrUnsupportedPlatform is returned when no executable exists for the
	// requested operating system. It is reported by [NewInvoker] before any
	// process is started.
	ErrUnsupportedPlatform = errors.New("chromepdf: unsupported platform")
)

// Mode selects how the external binary delivers the generated PDF.
type Mode int

const (
	// FileMode asks the binary to write the PDF to an output path.
	FileMode Mode = iota
	// Base64Mode asks the binary to print the PDF as Base64 on stdout.
	Base64Mode
)

func (m Mode) String() string {
	if m == Base64Mode {
		return "base64"
	}
	return "file"
}

// GenerationError reports a failed run of the external binary. A binary that
// could not be started and one that exited non-zero produce the same error
// type; ExitCode is -1 in the first case.
type GenerationError struct {
	Mode     Mode
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GenerationError) Error() string {
	var sb strings.Builder
	sb.WriteString("chromepdf: error generating ")
	if e.Mode == Base64Mode {
		sb.WriteString("Base64 ")
	}
	sb.WriteString("PDF: ")
	switch {
	case e.Stderr != "":
		sb.WriteString(e.Stderr)
	case e.Err != nil:
		sb.WriteString(e.Err.Error())
	default:
		sb.WriteString("unknown failure")
	}
	return sb.String()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
