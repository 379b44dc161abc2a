// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/pathviz/core"
)

// Cell addresses one grid square.
type Cell struct {
	Row, Col int
}

// String implements fmt.Stringer using the node ID format.
func (c Cell) String() string { return CellID(c) }

// CellID formats the node identifier of c: "row,col".
func CellID(c Cell) string {
	return strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
}

// ParseCellID is the inverse of CellID.
func ParseCellID(id string) (Cell, error) {
	r, c, ok := strings.Cut(id, ",")
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	row, err := strconv.Atoi(r)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}
	col, err := strconv.Atoi(c)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCellID, id)
	}

	return Cell{Row: row, Col: col}, nil
}

// neighborOffsets lists (dRow, dCol) in N, E, S, W order.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// GridGraph is an immutable wall mask of Rows×Cols cells.
type GridGraph struct {
	Rows, Cols int
	walls      [][]bool

	once  sync.Once
	graph *core.Graph
}
