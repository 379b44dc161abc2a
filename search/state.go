package search

import (
	"math"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/frontier"
)

// Status is the lifecycle state of a node within one search.
type Status uint8

const (
	// StatusUnseen: the node has not been reached yet.
	StatusUnseen Status = iota
	// StatusFrontier: the node has at least one pending frontier entry.
	StatusFrontier
	// StatusFinalized: the node was popped and accepted; its cost is final.
	StatusFinalized
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusUnseen:
		return "unseen"
	case StatusFrontier:
		return "frontier"
	case StatusFinalized:
		return "finalized"
	}

	return "unknown"
}

// StateView is the read-only face of a State handed to callers of Stepper.
type StateView interface {
	// Cost returns the tentative cost of id (+Inf when unreached).
	Cost(id string) float64
	// Predecessor returns the node preceding id on its best known path.
	Predecessor(id string) (string, bool)
	// Status returns the lifecycle state of id.
	Status(id string) Status
	// Visited returns finalized nodes in finalization order.
	Visited() []string
	// FrontierEntries returns the pending entries, stale ones included.
	FrontierEntries() []frontier.Entry
}

// State is the mutable per-search bookkeeping. It is owned by one Stepper and
// mutated only through the Strategy callbacks.
type State struct {
	graph *core.Graph
	start string
	goal  string

	cost   map[string]float64 // node → tentative cost (absent ⇒ +Inf)
	pred   map[string]string  // node → predecessor on best known path
	status map[string]Status  // node → lifecycle state (absent ⇒ Unseen)

	front   frontier.Frontier
	visited []string
	current frontier.Entry // entry accepted by the step in progress

	pushes       int
	peakFrontier int
}

func newState(g *core.Graph, start, goal string, f frontier.Frontier) *State {
	n := g.NodeCount()
	st := &State{
		graph:   g,
		start:   start,
		goal:    goal,
		cost:    make(map[string]float64, n),
		pred:    make(map[string]string, n),
		status:  make(map[string]Status, n),
		front:   f,
		visited: make([]string, 0, n),
	}

	return st
}

// Graph returns the graph being searched.
func (s *State) Graph() *core.Graph { return s.graph }

// Start returns the start node ID.
func (s *State) Start() string { return s.start }

// Goal returns the goal node ID.
func (s *State) Goal() string { return s.goal }

// Cost returns the tentative cost of id; +Inf when it has not been reached.
func (s *State) Cost(id string) float64 {
	if c, ok := s.cost[id]; ok {
		return c
	}

	return math.Inf(1)
}

// SetCost overwrites the tentative cost of id.
func (s *State) SetCost(id string, c float64) { s.cost[id] = c }

// Predecessor returns the predecessor of id, if any.
func (s *State) Predecessor(id string) (string, bool) {
	p, ok := s.pred[id]

	return p, ok
}

// SetPredecessor records p as the node preceding id. An empty p clears it.
func (s *State) SetPredecessor(id, p string) {
	if p == "" {
		delete(s.pred, id)
		return
	}
	s.pred[id] = p
}

// Status returns the lifecycle state of id.
func (s *State) Status(id string) Status { return s.status[id] }

// Visited returns a copy of the finalized nodes in finalization order.
func (s *State) Visited() []string {
	return append([]string(nil), s.visited...)
}

// Current returns the frontier entry accepted by the most recent step. During
// Expand it describes the node being expanded.
func (s *State) Current() frontier.Entry { return s.current }

// FrontierEntries returns a copy of the pending frontier entries.
func (s *State) FrontierEntries() []frontier.Entry { return s.front.Entries() }

// FrontierLen returns the number of pending entries.
func (s *State) FrontierLen() int { return s.front.Len() }

// Push inserts e into the frontier and marks an unseen node as Frontier.
// Finalized nodes keep their status; their entries are rejected on pop.
func (s *State) Push(e frontier.Entry) {
	s.front.Push(e)
	s.pushes++
	if s.status[e.ID] == StatusUnseen {
		s.status[e.ID] = StatusFrontier
	}
	if l := s.front.Len(); l > s.peakFrontier {
		s.peakFrontier = l
	}
}

// Relax records a strictly cheaper path to v through parent and pushes a new
// frontier entry with the given priority. Returns false (and changes
// nothing) when cost does not improve on the current tentative cost or v is
// already finalized.
func (s *State) Relax(v, parent string, cost, priority float64) bool {
	if s.status[v] == StatusFinalized || cost >= s.Cost(v) {
		return false
	}
	s.cost[v] = cost
	s.SetPredecessor(v, parent)
	s.Push(frontier.Entry{ID: v, Priority: priority, Cost: cost, Parent: parent})

	return true
}

// IsStale reports whether e no longer reflects the node's best known cost,
// or the node has already been finalized.
func (s *State) IsStale(e frontier.Entry) bool {
	return s.status[e.ID] == StatusFinalized || e.Cost != s.Cost(e.ID)
}

// seed pushes the start node with cost 0.
func (s *State) seed(priority float64) {
	s.cost[s.start] = 0
	s.Push(frontier.Entry{ID: s.start, Priority: priority, Cost: 0})
}

// finalize marks e.ID as Finalized and appends it to the visit order.
func (s *State) finalize(e frontier.Entry) {
	s.status[e.ID] = StatusFinalized
	s.visited = append(s.visited, e.ID)
	s.current = e
}

// pathTo walks predecessor links back from id to the start node.
// Returns nil if the chain does not reach the start (should not happen for a
// finalized node) or loops.
func (s *State) pathTo(id string) []string {
	limit := len(s.visited) + 1
	rev := []string{id}
	for cur := id; cur != s.start; {
		p, ok := s.pred[cur]
		if !ok || len(rev) > limit {
			return nil
		}
		rev = append(rev, p)
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

var _ StateView = (*State)(nil)
