package merge

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/davidvella/linemerge/lineio"
	"github.com/davidvella/linemerge/priority"
)

// ErrOutOfOrder reports that a registered stream was not sorted.
var ErrOutOfOrder = errors.New("merge: input lines out of order")

// OrderError is the error returned when a stream produces a line that
// compares lexicographically less than the line it produced before it.
// It unwraps to ErrOutOfOrder and carries the label of the offending
// stream.
type OrderError struct {
	Stream string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("merge: input lines in stream [%s] out of order", e.Stream)
}

func (e *OrderError) Unwrap() error { return ErrOutOfOrder }

// cursor tracks one still-active input stream. Its head is the most
// recently read line, not yet handed to the caller. A cursor with no
// more data is never stored; it is dropped as soon as its reader is
// exhausted.
type cursor struct {
	label string
	r     *lineio.Reader
	head  string
}

// Merger merges any number of individually sorted line streams into a
// single sorted sequence. It holds at most one buffered line per stream
// and produces output lazily, one line per call to Next.
//
// A Merger is not safe for concurrent use.
type Merger struct {
	queue *priority.Queue[*cursor]
	opts  options
}

// New creates an empty Merger.
func New(opts ...Option) *Merger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Merger{
		queue: priority.NewQueue[*cursor](func(a, b *cursor) bool {
			if a.head != b.head {
				return a.head < b.head
			}
			return a.label < b.label
		}),
		opts: o,
	}
}

// Register adds a stream to the merge under the given label. The label
// is used in diagnostics and as an ordering tie-break; it does not have
// to be unique. The Merger takes ownership of r: it wraps it in a
// buffered reader and reads its first line immediately.
//
// If the stream is non-empty, Register returns its first line with
// ok set to true. An empty stream returns ok set to false and is not
// added; that is not an error. A read failure is returned as an error
// and the stream is not added.
func (m *Merger) Register(label string, r io.Reader) (first string, ok bool, err error) {
	lr := lineio.NewReaderSize(r, m.opts.bufferSize)
	line, err := lr.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("merge: reading stream [%s]: %w", label, err)
	}
	m.queue.Push(&cursor{label: label, r: lr, head: line})
	return line, true, nil
}

// Next produces the next line of the merged output, the smallest head
// among all active streams. It returns ok set to false once every
// stream is exhausted; after that it keeps reporting exhaustion.
//
// A read failure on the winning stream is returned as an error. If the
// winning stream's following line compares less than the line before
// it, Next returns an *OrderError naming that stream instead of a line;
// the stream is dropped and the merge continues over the remaining
// streams on later calls.
func (m *Merger) Next() (line string, ok bool, err error) {
	c, popped := m.queue.Pop()
	if !popped {
		return "", false, nil
	}

	next, err := c.r.ReadLine()
	switch {
	case errors.Is(err, io.EOF):
		// Stream exhausted; the cursor is dropped.
		return c.head, true, nil
	case err != nil:
		return "", false, fmt.Errorf("merge: reading stream [%s]: %w", c.label, err)
	case next < c.head:
		return "", false, &OrderError{Stream: c.label}
	default:
		head := c.head
		c.head = next
		m.queue.Push(c)
		return head, true, nil
	}
}

// Len returns the number of streams that still have unconsumed lines.
func (m *Merger) Len() int {
	return m.queue.Len()
}

// All returns an iterator over the merged output. Iteration stops at
// exhaustion; a failure is yielded as the final pair before stopping.
func (m *Merger) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			line, ok, err := m.Next()
			if err != nil {
				yield("", err)
				return
			}
			if !ok {
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// WriteAll drains the Merger into w, writing each merged line followed
// by a newline. The first failure aborts the drain and is returned;
// lines written before the failure stay written.
func (m *Merger) WriteAll(w io.Writer) error {
	lw := lineio.NewWriter(w)
	for {
		line, ok, err := m.Next()
		if err != nil {
			//nolint:errcheck // the merge error takes precedence
			_ = lw.Flush()
			return err
		}
		if !ok {
			return lw.Flush()
		}
		if err := lw.WriteLine(line); err != nil {
			return err
		}
	}
}
