// Package route plans walking routes through a hospital transfer network.
//
// A Network holds typed Locations (entrances, wards, elevators, ...) and
// bidirectional Links between them. Links carry a base distance in meters,
// an accessibility class, a congestion factor and an emergency-route flag.
// Build turns the network into a core.Graph for one set of accessibility
// needs:
//
//	weight = distance × congestion × (0.8 if emergency route)
//
// Closed links, and stairs-only links for wheelchair users, are left out of
// the graph entirely, so the search engine never sees an infinite weight.
//
// A Navigator caches one graph per accessibility class and answers:
//
//	Route            – one origin, one destination (Dijkstra or A*).
//	MultiDestination – one origin, many destinations, searched concurrently.
//	Evacuation       – the closest exits for each occupied location.
//	Nearest          – the closest available locations of a type.
//
// A* uses astar.FloorAware(FloorPenalty): straight-line distance plus a fixed
// cost per floor of difference.
package route
