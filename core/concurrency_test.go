// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every edge lands in the outgoing index of its source.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddNode(core.Node{ID: "X"}))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddNode(core.Node{ID: fmt.Sprintf("V%d", i)}))
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReaders runs many readers against a frozen graph.
func TestConcurrentReaders(t *testing.T) {
	g := newTriangle(t)
	const readers = 50

	var wg sync.WaitGroup
	counts := make(chan int, readers)
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors("A")
			if err != nil {
				counts <- -1
				return
			}
			_ = g.Clone()
			counts <- len(nbs)
		}()
	}
	wg.Wait()
	close(counts)
	for c := range counts {
		require.Equal(t, 2, c)
	}
}
