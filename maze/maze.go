// Package maze generates seeded, perfect mazes as wall masks for package
// gridgraph.
//
// A maze of R×C rooms is laid out on a (2R+1)×(2C+1) mask: rooms sit at odd
// coordinates, the border is solid and every wall slot between two rooms is
// opened or left closed by a randomized Kruskal pass over a disjoint set.
// The result is a spanning tree of rooms, so exactly one simple path joins
// any two rooms. WithLoops reopens extra wall slots afterwards, which gives
// Dijkstra, BFS and DFS something to disagree about.
package maze

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// ErrBadSize indicates a non-positive room count.
var ErrBadSize = errors.New("maze: rows and cols must be positive")

// ErrBadLoops indicates a loop fraction outside [0, 1].
var ErrBadLoops = errors.New("maze: loop fraction must be within [0, 1]")

// Option configures Generate.
type Option func(*options)

type options struct {
	loops float64
}

// WithLoops reopens the given fraction of the walls left standing between
// rooms after the spanning tree is carved.
func WithLoops(fraction float64) Option {
	return func(o *options) { o.loops = fraction }
}

// Maze is a generated wall mask plus its conventional entry and exit.
type Maze struct {
	Seed  int64
	Walls [][]bool
	Start gridgraph.Cell // top-left room
	Goal  gridgraph.Cell // bottom-right room
}

// disjointSet is union-by-rank with path compression over room indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

func (d *disjointSet) find(i int) int {
	if d.parent[i] != i {
		d.parent[i] = d.find(d.parent[i])
	}

	return d.parent[i]
}

// union merges the sets of a and b and reports whether they were distinct.
func (d *disjointSet) union(a, b int) bool {
	x, y := d.find(a), d.find(b)
	if x == y {
		return false
	}
	switch {
	case d.rank[x] > d.rank[y]:
		d.parent[y] = x
	case d.rank[x] < d.rank[y]:
		d.parent[x] = y
	default:
		d.parent[y] = x
		d.rank[x]++
	}

	return true
}

// slot is a wall position between room a and room b.
type slot struct {
	a, b     int
	row, col int
}

// Generate carves a rows×cols room maze from seed. The same seed and options
// always produce the same mask.
func Generate(rows, cols int, seed int64, opts ...Option) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.loops) || o.loops < 0 || o.loops > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadLoops, o.loops)
	}

	h, w := 2*rows+1, 2*cols+1
	walls := make([][]bool, h)
	for r := range walls {
		walls[r] = make([]bool, w)
		for c := range walls[r] {
			walls[r][c] = r%2 == 0 || c%2 == 0
		}
	}

	slots := make([]slot, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if c+1 < cols {
				slots = append(slots, slot{a: i, b: i + 1, row: 2*r + 1, col: 2*c + 2})
			}
			if r+1 < rows {
				slots = append(slots, slot{a: i, b: i + cols, row: 2*r + 2, col: 2*c + 1})
			}
		}
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	rooms := newDisjointSet(rows * cols)
	var standing []slot
	for _, s := range slots {
		if rooms.union(s.a, s.b) {
			walls[s.row][s.col] = false
			continue
		}
		standing = append(standing, s)
	}
	for _, s := range standing[:int(o.loops*float64(len(standing)))] {
		walls[s.row][s.col] = false
	}

	return &Maze{
		Seed:  seed,
		Walls: walls,
		Start: gridgraph.Cell{Row: 1, Col: 1},
		Goal:  gridgraph.Cell{Row: h - 2, Col: w - 2},
	}, nil
}

// Grid wraps the mask in a GridGraph.
func (m *Maze) Grid() (*gridgraph.GridGraph, error) {
	return gridgraph.NewGridGraph(m.Walls)
}

// Render draws the mask with '#' for walls, '.' for open cells and marks
// overlay cells with the given rune. Start and goal are drawn as 'S' and 'G'.
func Render(m *Maze, mark rune, overlay ...gridgraph.Cell) string {
	on := make(map[gridgraph.Cell]bool, len(overlay))
	for _, c := range overlay {
		on[c] = true
	}
	var b strings.Builder
	for r, row := range m.Walls {
		for c, wall := range row {
			cell := gridgraph.Cell{Row: r, Col: c}
			switch {
			case cell == m.Start:
				b.WriteByte('S')
			case cell == m.Goal:
				b.WriteByte('G')
			case wall:
				b.WriteByte('#')
			case on[cell]:
				b.WriteRune(mark)
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
