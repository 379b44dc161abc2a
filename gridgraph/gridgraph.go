// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/search"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular wall mask
// (true = blocked). It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGridGraph(walls [][]bool) (*GridGraph, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]bool, rows)
	for r := range walls {
		cells[r] = append([]bool(nil), walls[r]...)
	}

	return &GridGraph{Rows: rows, Cols: cols, walls: cells}, nil
}

// InBounds reports whether c lies within the grid.
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Rows && c.Col >= 0 && c.Col < gg.Cols
}

// IsWall reports whether c is blocked. Out-of-bounds cells count as walls.
func (gg *GridGraph) IsWall(c Cell) bool {
	return !gg.InBounds(c) || gg.walls[c.Row][c.Col]
}

// Mask returns a copy of the wall mask (true = blocked).
func (gg *GridGraph) Mask() [][]bool {
	out := make([][]bool, gg.Rows)
	for r := range gg.walls {
		out[r] = append([]bool(nil), gg.walls[r]...)
	}

	return out
}

// OpenCount returns the number of open cells.
func (gg *GridGraph) OpenCount() int {
	n := 0
	for _, row := range gg.walls {
		for _, w := range row {
			if !w {
				n++
			}
		}
	}

	return n
}

// Validate returns ErrInvalidCell (wrapped with the cell) when c is out of
// bounds or on a wall.
func (gg *GridGraph) Validate(c Cell) error {
	if !gg.InBounds(c) {
		return fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidCell, c, gg.Rows, gg.Cols)
	}
	if gg.walls[c.Row][c.Col] {
		return fmt.Errorf("%w: %v is a wall", ErrInvalidCell, c)
	}

	return nil
}

// Neighbors returns the open 4-neighbors of c in N, E, S, W order.
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !gg.IsWall(n) {
			out = append(out, n)
		}
	}

	return out
}

// ToCoreGraph converts the open cells into a *core.Graph. Each open cell
// becomes a node with ID CellID(cell), X = col, Y = row and metadata
// {row, col}; each pair of 4-adjacent open cells is joined in both directions
// by weight-1 edges. Nodes are added row-major; edges per node follow N, E,
// S, W. The graph is built once and shared by later calls.
// Complexity: O(R×C).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	gg.once.Do(func() {
		g := core.NewGraph(core.WithCapacity(gg.OpenCount()))
		for r := 0; r < gg.Rows; r++ {
			for c := 0; c < gg.Cols; c++ {
				if gg.walls[r][c] {
					continue
				}
				_ = g.AddNode(core.Node{
					ID:        CellID(Cell{Row: r, Col: c}),
					X:         float64(c),
					Y:         float64(r),
					HasCoords: true,
					Metadata:  map[string]any{"row": r, "col": c},
				})
			}
		}
		for r := 0; r < gg.Rows; r++ {
			for c := 0; c < gg.Cols; c++ {
				if gg.walls[r][c] {
					continue
				}
				u := Cell{Row: r, Col: c}
				for _, v := range gg.Neighbors(u) {
					_ = g.AddEdge(CellID(u), CellID(v), 1)
				}
			}
		}
		gg.graph = g
	})

	return gg.graph
}

// NewStepper validates start and goal, then prepares strategy over the grid's
// graph. ErrInvalidCell is returned before any search state is created.
func (gg *GridGraph) NewStepper(strategy search.Strategy, start, goal Cell, opts ...search.Option) (*search.Stepper, error) {
	if err := gg.Validate(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := gg.Validate(goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	return search.NewStepper(gg.ToCoreGraph(), CellID(start), CellID(goal), strategy, opts...)
}

// PathCells converts a path of node IDs back to cells.
func PathCells(p search.Path) ([]Cell, error) {
	out := make([]Cell, 0, len(p.Nodes))
	for _, id := range p.Nodes {
		c, err := ParseCellID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// index maps c to a row-major index.
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Cols, Col: idx % gg.Cols}
}
