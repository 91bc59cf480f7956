package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Reader reads newline-terminated lines from an underlying reader.
// The terminator (a '\n', optionally preceded by '\r') is stripped from
// every returned line. A Reader owns its buffer; the underlying reader
// must not be read from elsewhere once wrapped.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader with the default buffer size.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// NewReaderSize returns a Reader whose buffer has at least the specified
// size. A non-positive size falls back to the default.
func NewReaderSize(r io.Reader, size int) *Reader {
	if size <= 0 {
		return NewReader(r)
	}
	return &Reader{br: bufio.NewReaderSize(r, size)}
}

// ReadLine reads the next line, with its terminator stripped. It returns
// io.EOF once the underlying reader is exhausted. A final line without a
// trailing terminator is returned as a normal line.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(line) > 0 {
				return trimTerminator(line), nil
			}
			return "", io.EOF
		}
		return "", fmt.Errorf("error reading line: %w", err)
	}
	return trimTerminator(line), nil
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Writer writes lines to an underlying writer, appending a single '\n'
// to each. Writes are buffered; call Flush to push them through.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter returns a Writer wrapping w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

// WriteLine writes a single line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	if _, err := w.bw.WriteString(line); err != nil {
		return fmt.Errorf("error writing line: %w", err)
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("error writing line terminator: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}

// Seq returns an iterator over the lines of r. Iteration stops at end of
// input; a read failure is yielded as the final pair before stopping.
func Seq(r io.Reader) iter.Seq2[string, error] {
	lr := NewReader(r)
	return func(yield func(string, error) bool) {
		for {
			line, err := lr.ReadLine()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// ReadLines reads all remaining lines into a slice.
func ReadLines(r io.Reader) ([]string, error) {
	lines := make([]string, 0, 1)
	for line, err := range Seq(r) {
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
