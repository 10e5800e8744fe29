package iostreams

import (
	"fmt"
	"io"
)

// Interface is the set of output helpers commands and checks write through.
type Interface interface {
	Fprintf(format string, args ...any)
	Fprintln(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)

	// Writer returns the stream used for results (stdout).
	Writer() io.Writer

	// ErrWriter returns the stream used for progress and diagnostics (stderr).
	ErrWriter() io.Writer
}

// IOStreams provides structured access to standard input/output/error streams
// with convenience methods for formatted output.
type IOStreams struct {
	// In is the input stream (stdin)
	In io.Reader
	// Out is the output stream (stdout)
	Out io.Writer
	// ErrOut is the error output stream (stderr)
	ErrOut io.Writer
}

// NewIOStreams creates an IOStreams from the given streams.
func NewIOStreams(in io.Reader, out io.Writer, errOut io.Writer) *IOStreams {
	return &IOStreams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}
}

// Fprintf writes formatted output to Out with automatic newline.
// If args are provided, the format string is processed with fmt.Sprintf.
// If no args are provided, the format string is written directly.
func (s *IOStreams) Fprintf(format string, args ...any) {
	if s.Out == nil {
		return
	}

	_, _ = fmt.Fprintln(s.Out, formatMessage(format, args...))
}

// Fprintln writes output to Out with automatic newline.
// This is a direct pass-through to fmt.Fprintln.
func (s *IOStreams) Fprintln(args ...any) {
	if s.Out == nil {
		return
	}

	_, _ = fmt.Fprintln(s.Out, args...)
}

// Errorf writes formatted error output to ErrOut with automatic newline.
// If args are provided, the format string is processed with fmt.Sprintf.
// If no args are provided, the format string is written directly.
func (s *IOStreams) Errorf(format string, args ...any) {
	if s.ErrOut == nil {
		return
	}

	_, _ = fmt.Fprintln(s.ErrOut, formatMessage(format, args...))
}

// Errorln writes error output to ErrOut with automatic newline.
// This is a direct pass-through to fmt.Fprintln on the error stream.
func (s *IOStreams) Errorln(args ...any) {
	if s.ErrOut == nil {
		return
	}

	_, _ = fmt.Fprintln(s.ErrOut, args...)
}

// Writer returns Out, or io.Discard when unset.
func (s *IOStreams) Writer() io.Writer {
	if s.Out == nil {
		return io.Discard
	}

	return s.Out
}

// ErrWriter returns ErrOut, or io.Discard when unset.
func (s *IOStreams) ErrWriter() io.Writer {
	if s.ErrOut == nil {
		return io.Discard
	}

	return s.ErrOut
}

// QuietWrapper drops progress output written to the error stream.
// Results written with Fprintf/Fprintln still reach the output stream.
type QuietWrapper struct {
	delegate Interface
}

// NewQuietWrapper wraps delegate so that Errorf/Errorln become no-ops.
func NewQuietWrapper(delegate Interface) *QuietWrapper {
	return &QuietWrapper{delegate: delegate}
}

func (q *QuietWrapper) Fprintf(format string, args ...any) {
	q.delegate.Fprintf(format, args...)
}

func (q *QuietWrapper) Fprintln(args ...any) {
	q.delegate.Fprintln(args...)
}

func (q *QuietWrapper) Errorf(_ string, _ ...any) {}

func (q *QuietWrapper) Errorln(_ ...any) {}

func (q *QuietWrapper) Writer() io.Writer {
	return q.delegate.Writer()
}

func (q *QuietWrapper) ErrWriter() io.Writer {
	return q.delegate.ErrWriter()
}

func formatMessage(format string, args ...any) string {
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}

	return format
}
