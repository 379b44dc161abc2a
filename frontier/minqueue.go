package frontier

import (
	"container/heap"
	"sort"
)

// MinQueue is a binary-heap priority queue keyed by (Priority, Seq).
type MinQueue struct {
	h       entryHeap
	nextSeq int
}

// NewMinQueue returns an empty MinQueue.
func NewMinQueue() *MinQueue {
	return &MinQueue{}
}

// Push inserts e with the next sequence number. O(log n).
func (q *MinQueue) Push(e Entry) {
	e.Seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.h, e)
}

// Pop removes the entry with the lowest (Priority, Seq). O(log n).
func (q *MinQueue) Pop() (Entry, bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&q.h).(Entry), true
}

// Peek returns the next entry without removing it.
func (q *MinQueue) Peek() (Entry, bool) {
	if len(q.h) == 0 {
		return Entry{}, false
	}

	return q.h[0], true
}

// Len returns the number of stored entries.
func (q *MinQueue) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no entries.
func (q *MinQueue) IsEmpty() bool { return len(q.h) == 0 }

// Entries returns a sorted copy of the heap contents. O(n log n).
func (q *MinQueue) Entries() []Entry {
	out := make([]Entry, len(q.h))
	copy(out, q.h)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

func less(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return a.Seq < b.Seq
}

// entryHeap implements heap.Interface over Entry values.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

// Pop is called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
