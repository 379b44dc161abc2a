// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"fmt"
)

// MinBreaches finds the fewest wall cells that must be removed so that open
// cells a and b become connected. It returns the cell path from a to b
// (inclusive) and the number of walls on it. Cells already in the same
// region cost 0.
//
// Behavior:
//  1. Validate that a and b are open cells (ErrInvalidCell otherwise).
//  2. 0–1 BFS from a:
//     • Moving into an open cell → cost 0
//     • Moving into a wall cell  → cost 1
//  3. Stop when b is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(R·C) time and memory.
func (gg *GridGraph) MinBreaches(a, b Cell) (path []Cell, breaches int, err error) {
	if err = gg.Validate(a); err != nil {
		return nil, 0, fmt.Errorf("from: %w", err)
	}
	if err = gg.Validate(b); err != nil {
		return nil, 0, fmt.Errorf("to: %w", err)
	}

	n := gg.Rows * gg.Cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	src, dst := gg.index(a), gg.index(b)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		uc := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vc := Cell{Row: uc.Row + d[0], Col: uc.Col + d[1]}
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.index(vc)
			step := 0
			if gg.walls[vc.Row][vc.Col] {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
