package search

import (
	"math"
	"strings"
)

// Path is an ordered node sequence from start to goal (inclusive) and its
// total cost. A Path with no nodes and +Inf cost means no path exists.
type Path struct {
	Nodes     []string
	TotalCost float64
}

// NoPath returns the "no path exists" value.
func NoPath() Path {
	return Path{TotalCost: math.Inf(1)}
}

// Found reports whether the path is non-empty.
func (p Path) Found() bool { return len(p.Nodes) > 0 }

// Len returns the number of edges on the path (0 for an empty path).
func (p Path) Len() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// String renders the path as "A → B → C".
func (p Path) String() string {
	if !p.Found() {
		return "<no path>"
	}

	return strings.Join(p.Nodes, " → ")
}
