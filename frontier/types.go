package frontier

// Entry is a single frontier record.
//
// Priority orders MinQueue extraction; Cost is the tentative cost that was
// current when the entry was pushed and is what the staleness check compares
// against. For Dijkstra Priority == Cost, for A* Priority == Cost + h.
type Entry struct {
	ID       string  // node ID
	Priority float64 // extraction key (MinQueue only)
	Cost     float64 // tentative cost at push time
	Parent   string  // node this entry was discovered from ("" for the start)
	Seq      int     // push sequence, stamped by the frontier
}

// Frontier is the common contract of MinQueue, FIFO and LIFO.
type Frontier interface {
	// Push stamps e.Seq and inserts the entry.
	Push(e Entry)

	// Pop removes and returns the next entry; ok is false when empty.
	Pop() (e Entry, ok bool)

	// Len returns the number of stored entries, stale ones included.
	Len() int

	// Entries returns a copy of the stored entries in extraction order.
	Entries() []Entry
}
