// Package priority implements a generic priority queue ordered by a
// user-provided comparison function.
//
// The queue is a thin generic layer over container/heap. The ordering is
// determined by the less function supplied at construction, which should
// return true if its first argument has higher priority than its second.
//
// Basic usage:
//
//	// Create a min-heap priority queue
//	pq := priority.NewQueue[int](func(a, b int) bool {
//	    return a < b
//	})
//
//	// Add values
//	pq.Push(5)
//	pq.Push(3)
//	pq.Push(7)
//
//	// Remove and return the highest priority value
//	v, ok := pq.Pop()
//	if ok {
//	    fmt.Printf("Popped: %d\n", v) // Popped: 3
//	}
//
// Push and Pop are O(log n); Peek and Len are O(1). The queue is not
// safe for concurrent use.
package priority
