// Package merge implements an external k-way merge over sorted,
// line-oriented streams.
//
// Given any number of input streams whose lines are each in ascending
// lexicographic order, a Merger produces the fully sorted interleaving
// of all their lines without ever loading a stream into memory: it
// buffers exactly one line per active stream, in a priority queue keyed
// by that line.
//
// Each call to Next pops the stream whose buffered head line is
// smallest, reads that stream's following line to re-arm it, and hands
// the popped line to the caller. Because the following line is read
// eagerly, a stream that was not actually sorted is caught one line
// late: the violation is reported as an *OrderError naming the stream,
// and that stream is dropped from the merge.
//
// Key properties:
//   - Lazy, pull-based output: one line per Next call
//   - O(log n) comparisons per line for n active streams
//   - At most one buffered line held per stream
//   - Duplicate lines across streams are all preserved
//   - Empty streams are accepted and contribute nothing
//
// Basic usage:
//
//	m := merge.New()
//
//	_, _, err := m.Register("left", strings.NewReader("a\nc\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, _, err = m.Register("right", strings.NewReader("b\nd\n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for line, err := range m.All() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(line) // a, b, c, d
//	}
//
// Or drain straight into a writer:
//
//	if err := m.WriteAll(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// The Merger takes exclusive ownership of every reader passed to
// Register and is not safe for concurrent use.
package merge
