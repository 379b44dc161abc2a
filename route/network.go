package route

import (
	"fmt"

	"github.com/katalvlaran/pathviz/core"
)

// Network is a mutable hospital layout. It is not safe for concurrent
// mutation; build graphs from it (or hand it to a Navigator) once populated.
type Network struct {
	locations []Location
	index     map[string]int
	links     []Link
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{index: make(map[string]int)}
}

// AddLocation registers l. IDs must be non-empty and unique.
func (n *Network) AddLocation(l Location) error {
	if l.ID == "" {
		return ErrEmptyLocationID
	}
	if _, ok := n.index[l.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, l.ID)
	}
	n.index[l.ID] = len(n.locations)
	n.locations = append(n.locations, l)

	return nil
}

// AddLink connects two registered locations in both directions.
func (n *Network) AddLink(l Link) error {
	for _, id := range [...]string{l.From, l.To} {
		if _, ok := n.index[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLocation, id)
		}
	}
	if err := l.validate(); err != nil {
		return err
	}
	n.links = append(n.links, l)

	return nil
}

// Location returns the location with the given ID.
func (n *Network) Location(id string) (Location, bool) {
	i, ok := n.index[id]
	if !ok {
		return Location{}, false
	}

	return n.locations[i], true
}

// Locations returns all locations in insertion order.
func (n *Network) Locations() []Location {
	return append([]Location(nil), n.locations...)
}

// Links returns all links in insertion order.
func (n *Network) Links() []Link {
	return append([]Link(nil), n.links...)
}

// Filter returns the locations for which keep returns true.
func (n *Network) Filter(keep func(Location) bool) []Location {
	var out []Location
	for _, l := range n.locations {
		if keep(l) {
			out = append(out, l)
		}
	}

	return out
}

// ByType returns the locations of type t.
func (n *Network) ByType(t LocationType) []Location {
	return n.Filter(func(l Location) bool { return l.Type == t })
}

// ByDepartment returns the locations of department d.
func (n *Network) ByDepartment(d string) []Location {
	return n.Filter(func(l Location) bool { return l.Department == d })
}

// OnFloor returns the locations on floor f.
func (n *Network) OnFloor(f int) []Location {
	return n.Filter(func(l Location) bool { return l.Floor == f })
}

// Build converts the network into a graph for a traveler with the given
// needs. Every usable link becomes two directed edges; unusable links are
// omitted. Node metadata carries "floor" and "type"; Group is the department.
func (n *Network) Build(needs Accessibility) (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(n.locations)))
	for _, l := range n.locations {
		err := g.AddNode(core.Node{
			ID:        l.ID,
			Name:      l.Name,
			Group:     l.Department,
			X:         l.X,
			Y:         l.Y,
			HasCoords: true,
			Metadata:  map[string]any{"floor": l.Floor, "type": string(l.Type)},
		})
		if err != nil {
			return nil, fmt.Errorf("route: build: %w", err)
		}
	}
	for _, lk := range n.links {
		w, ok := lk.Weight(needs)
		if !ok {
			continue
		}
		if err := g.AddUndirectedEdge(lk.From, lk.To, w); err != nil {
			return nil, fmt.Errorf("route: build: %w", err)
		}
	}

	return g, nil
}

// link returns the cheapest link joining a and b in either direction that a
// traveler with the given needs can use. This is the link a search over
// Build(needs) traverses between a and b.
func (n *Network) link(a, b string, needs Accessibility) (Link, bool) {
	var (
		best  Link
		bestW float64
		found bool
	)
	for _, l := range n.links {
		if !(l.From == a && l.To == b) && !(l.From == b && l.To == a) {
			continue
		}
		w, ok := l.Weight(needs)
		if !ok || (found && w >= bestW) {
			continue
		}
		best, bestW, found = l, w, true
	}

	return best, found
}

// Stats summarizes the network.
func (n *Network) Stats() Stats {
	s := Stats{
		Locations:   len(n.locations),
		Connections: len(n.links),
		ByType:      make(map[LocationType]int),
		ByFloor:     make(map[int]int),
	}
	depts := make(map[string]struct{})
	for _, l := range n.locations {
		s.ByType[l.Type]++
		s.ByFloor[l.Floor]++
		if l.Department != "" {
			depts[l.Department] = struct{}{}
		}
	}
	s.Departments = sortedKeys(depts)
	if len(n.links) > 0 {
		ok := 0
		for _, l := range n.links {
			if l.WheelchairFriendly() {
				ok++
			}
		}
		s.AccessibilityCoverage = float64(ok) / float64(len(n.links)) * 100
	}

	return s
}

// DefaultEntrance is the main entrance of DefaultHospital.
const DefaultEntrance = "ENTRANCE_MAIN"

// DefaultHospital returns a small two-floor layout: a main entrance,
// reception, emergency department, pharmacy and an elevator on floor 1, and
// a laboratory and consultation room on floor 2.
func DefaultHospital() *Network {
	n := NewNetwork()
	for _, l := range []Location{
		{ID: DefaultEntrance, Name: "Main Entrance", Type: Entrance, Floor: 1, X: 0, Y: 0, EmergencyExit: true},
		{ID: "RECEPTION_01", Name: "Main Reception", Type: Reception, Floor: 1, X: 10, Y: 5, Department: "Administration"},
		{ID: "EMERGENCY_01", Name: "Emergency Department", Type: Emergency, Floor: 1, X: -20, Y: 10, Department: "Emergency", Capacity: 20},
		{ID: "LAB_01", Name: "Main Laboratory", Type: Laboratory, Floor: 2, X: 15, Y: 20, Department: "Laboratory"},
		{ID: "PHARMACY_01", Name: "Main Pharmacy", Type: Pharmacy, Floor: 1, X: 25, Y: 15, Department: "Pharmacy"},
		{ID: "CONSULT_01", Name: "Consultation Room 1", Type: ConsultationRoom, Floor: 2, X: 30, Y: 25, Department: "General Medicine"},
		{ID: "ELEVATOR_01", Name: "Main Elevator", Type: Elevator, Floor: 1, X: 20, Y: 10, Accessibility: Wheelchair},
	} {
		_ = n.AddLocation(l)
	}
	for _, l := range []Link{
		{From: "ENTRANCE_MAIN", To: "RECEPTION_01", Distance: 15, TravelTime: 20},
		{From: "RECEPTION_01", To: "ELEVATOR_01", Distance: 12, TravelTime: 15},
		{From: "RECEPTION_01", To: "EMERGENCY_01", Distance: 35, TravelTime: 45},
		{From: "RECEPTION_01", To: "PHARMACY_01", Distance: 20, TravelTime: 25},
		{From: "ELEVATOR_01", To: "LAB_01", Distance: 8, TravelTime: 30, Accessibility: Wheelchair},
		{From: "ELEVATOR_01", To: "CONSULT_01", Distance: 15, TravelTime: 35},
	} {
		_ = n.AddLink(l)
	}

	return n
}
