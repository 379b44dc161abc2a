// Package scenario loads declarative search fixtures from YAML or HCL.
//
// A scenario names a strategy, a start and a goal, and either an explicit
// node/edge list or a grid drawn as rows of text ('#' wall, '.' open, 'S'
// start, 'G' goal). An optional expect block states the outcome the search
// must reach; Check compares a result against it.
//
// YAML:
//
//	scenarios:
//	  - name: triangle
//	    strategy: dijkstra
//	    start: A
//	    goal: B
//	    nodes: [{id: A}, {id: B}, {id: C}]
//	    edges:
//	      - {from: A, to: B, weight: 4}
//	      - {from: A, to: C, weight: 2}
//	      - {from: C, to: B, weight: 1}
//	    expect: {path: [A, C, B], cost: 3}
//
// HCL:
//
//	scenario "corridor" {
//	  strategy = "bfs"
//	  grid {
//	    rows = ["S.#", "..G"]
//	  }
//	  expect {
//	    cost = 3
//	  }
//	}
//
// Files are validated with go-playground/validator after decoding.
package scenario
