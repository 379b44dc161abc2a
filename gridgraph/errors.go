// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrInvalidCell indicates a cell outside the grid or on a wall.
	ErrInvalidCell = errors.New("gridgraph: cell is out of bounds or blocked")
	// ErrBadCellID indicates a string that is not a "row,col" node ID.
	ErrBadCellID = errors.New("gridgraph: malformed cell id")
)
