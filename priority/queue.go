package priority

import "container/heap"

// Queue implements a priority queue over values of type V.
type Queue[V any] struct {
	h *valueHeap[V]
}

// NewQueue creates a new priority queue with the given comparator. The
// less function should return true if a has higher priority than b.
func NewQueue[V any](less func(a, b V) bool) *Queue[V] {
	return &Queue[V]{h: &valueHeap[V]{less: less}}
}

// Len returns the number of values in the queue.
func (pq *Queue[V]) Len() int {
	return len(pq.h.values)
}

// Push adds a value to the queue.
func (pq *Queue[V]) Push(v V) {
	heap.Push(pq.h, v)
}

// Pop removes and returns the highest priority value.
func (pq *Queue[V]) Pop() (V, bool) {
	if len(pq.h.values) == 0 {
		var zeroV V
		return zeroV, false
	}
	v := heap.Pop(pq.h).(V)
	return v, true
}

// Peek returns the highest priority value without removing it.
func (pq *Queue[V]) Peek() (V, bool) {
	if len(pq.h.values) == 0 {
		var zeroV V
		return zeroV, false
	}
	return pq.h.values[0], true
}

// valueHeap adapts a slice and comparator to heap.Interface.
type valueHeap[V any] struct {
	values []V
	less   func(a, b V) bool
}

func (h *valueHeap[V]) Len() int { return len(h.values) }

func (h *valueHeap[V]) Less(i, j int) bool {
	return h.less(h.values[i], h.values[j])
}

func (h *valueHeap[V]) Swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}

func (h *valueHeap[V]) Push(x any) {
	h.values = append(h.values, x.(V))
}

func (h *valueHeap[V]) Pop() any {
	old := h.values
	n := len(old)
	v := old[n-1]
	h.values = old[:n-1]
	return v
}
