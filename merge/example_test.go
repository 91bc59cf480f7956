package merge_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/davidvella/linemerge/merge"
)

// ExampleMerger demonstrates merging two sorted streams lazily.
func ExampleMerger() {
	m := merge.New()

	if _, _, err := m.Register("left", strings.NewReader("a\nc\n")); err != nil {
		fmt.Printf("Error registering stream: %v\n", err)
		return
	}
	if _, _, err := m.Register("right", strings.NewReader("b\nd\n")); err != nil {
		fmt.Printf("Error registering stream: %v\n", err)
		return
	}

	for line, err := range m.All() {
		if err != nil {
			fmt.Printf("Error merging: %v\n", err)
			return
		}
		fmt.Println(line)
	}

	// Output:
	// a
	// b
	// c
	// d
}

// ExampleMerger_WriteAll demonstrates draining a merge into a writer.
func ExampleMerger_WriteAll() {
	m := merge.New()

	//nolint:errcheck // in-memory streams cannot fail to register
	m.Register("evens", strings.NewReader("2\n4\n6\n"))
	//nolint:errcheck // in-memory streams cannot fail to register
	m.Register("odds", strings.NewReader("1\n3\n5\n"))

	if err := m.WriteAll(os.Stdout); err != nil {
		fmt.Printf("Error merging: %v\n", err)
	}

	// Output:
	// 1
	// 2
	// 3
	// 4
	// 5
	// 6
}

// ExampleOrderError demonstrates detecting an unsorted input stream.
func ExampleOrderError() {
	m := merge.New()

	//nolint:errcheck // in-memory streams cannot fail to register
	m.Register("events.log", strings.NewReader("foo\nbar\n"))

	_, _, err := m.Next()

	var orderErr *merge.OrderError
	if errors.As(err, &orderErr) {
		fmt.Printf("unsorted stream: %s\n", orderErr.Stream)
	}

	// Output:
	// unsorted stream: events.log
}
