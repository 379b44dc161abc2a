package astar

import (
	"math"
	"strconv"

	"github.com/katalvlaran/pathviz/core"
)

// Heuristic estimates the remaining cost from node to goal.
type Heuristic func(node, goal core.Node) float64

// Zero always estimates 0.
func Zero(core.Node, core.Node) float64 { return 0 }

// Euclidean returns the straight-line distance between the two nodes.
func Euclidean(a, b core.Node) float64 {
	if !a.HasCoords || !b.HasCoords {
		return 0
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b core.Node) float64 {
	if !a.HasCoords || !b.HasCoords {
		return 0
	}

	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Scaled multiplies h by k. A nil h is treated as Zero.
func Scaled(h Heuristic, k float64) Heuristic {
	if h == nil {
		return Zero
	}

	return func(a, b core.Node) float64 { return k * h(a, b) }
}

// FloorAware adds penalty per floor of difference to the Euclidean distance.
// The floor is read from Metadata["floor"]; nodes without one count as floor 0.
func FloorAware(penalty float64) Heuristic {
	return func(a, b core.Node) float64 {
		d := Euclidean(a, b)
		if df := Floor(a) - Floor(b); df != 0 {
			d += penalty * math.Abs(float64(df))
		}

		return d
	}
}

// Floor extracts the floor number of n from Metadata["floor"]. Accepted
// encodings are int, int64, float64 and decimal strings.
func Floor(n core.Node) int {
	switch v := n.Metadata["floor"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if f, err := strconv.Atoi(v); err == nil {
			return f
		}
	}

	return 0
}
