// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all 4-connected regions of open cells.
// Components are ordered by their first cell in row-major order; cells
// within a component are in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	labels, n := gg.label()
	comps := make([][]Cell, n)
	order := gg.bfsOrder(labels)
	for _, i := range order {
		comps[labels[i]] = append(comps[labels[i]], gg.Coordinate(i))
	}

	return comps
}

// SameRegion reports whether open cells a and b are connected. Walls and
// out-of-bounds cells are never in any region.
func (gg *GridGraph) SameRegion(a, b Cell) bool {
	if gg.IsWall(a) || gg.IsWall(b) {
		return false
	}
	labels, _ := gg.label()

	return labels[gg.index(a)] == labels[gg.index(b)]
}

// label assigns a component number to every open cell (-1 for walls) and
// returns the number of components.
func (gg *GridGraph) label() ([]int, int) {
	labels := make([]int, gg.Rows*gg.Cols)
	for i := range labels {
		labels[i] = -1
	}
	n := 0
	for i := range labels {
		c := gg.Coordinate(i)
		if labels[i] >= 0 || gg.walls[c.Row][c.Col] {
			continue
		}
		queue := []int{i}
		labels[i] = n
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.Neighbors(gg.Coordinate(queue[qi])) {
				vi := gg.index(v)
				if labels[vi] < 0 {
					labels[vi] = n
					queue = append(queue, vi)
				}
			}
		}
		n++
	}

	return labels, n
}

// bfsOrder lists open-cell indices component by component, each in BFS order.
func (gg *GridGraph) bfsOrder(labels []int) []int {
	seen := make([]bool, len(labels))
	out := make([]int, 0, len(labels))
	for i := range labels {
		if labels[i] < 0 || seen[i] {
			continue
		}
		seen[i] = true
		start := len(out)
		out = append(out, i)
		for qi := start; qi < len(out); qi++ {
			for _, v := range gg.Neighbors(gg.Coordinate(out[qi])) {
				vi := gg.index(v)
				if !seen[vi] {
					seen[vi] = true
					out = append(out, vi)
				}
			}
		}
	}

	return out
}
