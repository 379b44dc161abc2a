package frontier

// FIFO is a first-in first-out queue backed by a slice with a moving head.
type FIFO struct {
	items   []Entry
	head    int
	nextSeq int
}

// NewFIFO returns an empty FIFO.
func NewFIFO() *FIFO { return &FIFO{} }

// Push appends e.
func (q *FIFO) Push(e Entry) {
	e.Seq = q.nextSeq
	q.nextSeq++
	q.items = append(q.items, e)
}

// Pop removes the oldest entry.
func (q *FIFO) Pop() (Entry, bool) {
	if q.head == len(q.items) {
		return Entry{}, false
	}
	e := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append([]Entry(nil), q.items[q.head:]...)
		q.head = 0
	}

	return e, true
}

// Len returns the number of pending entries.
func (q *FIFO) Len() int { return len(q.items) - q.head }

// Entries returns the pending entries, oldest first.
func (q *FIFO) Entries() []Entry {
	return append([]Entry(nil), q.items[q.head:]...)
}

// LIFO is a last-in first-out stack.
type LIFO struct {
	items   []Entry
	nextSeq int
}

// NewLIFO returns an empty LIFO.
func NewLIFO() *LIFO { return &LIFO{} }

// Push places e on top of the stack.
func (s *LIFO) Push(e Entry) {
	e.Seq = s.nextSeq
	s.nextSeq++
	s.items = append(s.items, e)
}

// Pop removes the most recently pushed entry.
func (s *LIFO) Pop() (Entry, bool) {
	n := len(s.items)
	if n == 0 {
		return Entry{}, false
	}
	e := s.items[n-1]
	s.items = s.items[:n-1]

	return e, true
}

// Len returns the stack depth.
func (s *LIFO) Len() int { return len(s.items) }

// Entries returns the stack contents, top first.
func (s *LIFO) Entries() []Entry {
	out := make([]Entry, len(s.items))
	for i := range s.items {
		out[i] = s.items[len(s.items)-1-i]
	}

	return out
}

var (
	_ Frontier = (*MinQueue)(nil)
	_ Frontier = (*FIFO)(nil)
	_ Frontier = (*LIFO)(nil)
)
