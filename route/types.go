package route

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Sentinel errors for network construction and routing.
var (
	ErrEmptyLocationID   = errors.New("route: location id is empty")
	ErrDuplicateLocation = errors.New("route: duplicate location")
	ErrUnknownLocation   = errors.New("route: unknown location")
	ErrBadLink           = errors.New("route: invalid link")
	ErrUnknownAlgorithm  = errors.New("route: unknown algorithm")
)

// LocationType classifies a Location.
type LocationType string

// Location types known to the default layout and the CLI.
const (
	Entrance         LocationType = "ENTRANCE"
	Emergency        LocationType = "EMERGENCY"
	Reception        LocationType = "RECEPTION"
	ConsultationRoom LocationType = "CONSULTATION_ROOM"
	Laboratory       LocationType = "LABORATORY"
	Pharmacy         LocationType = "PHARMACY"
	Radiology        LocationType = "RADIOLOGY"
	Surgery          LocationType = "SURGERY"
	ICU              LocationType = "ICU"
	Ward             LocationType = "WARD"
	Cafeteria        LocationType = "CAFETERIA"
	Restroom         LocationType = "RESTROOM"
	Elevator         LocationType = "ELEVATOR"
	Stairs           LocationType = "STAIRS"
	Parking          LocationType = "PARKING"
	Admin            LocationType = "ADMIN"
)

// Accessibility is both a property of links and the needs of a traveler.
type Accessibility string

const (
	Normal           Accessibility = "NORMAL"
	Wheelchair       Accessibility = "WHEELCHAIR_ACCESSIBLE"
	StairsOnly       Accessibility = "STAIRS_ONLY"
	ElevatorRequired Accessibility = "ELEVATOR_REQUIRED"
)

// EmergencyRouteFactor scales the weight of links marked as emergency routes.
const EmergencyRouteFactor = 0.8

// FloorPenalty is the A* cost estimate per floor of difference.
const FloorPenalty = 20.0

// WalkingSpeed in meters per second, used for evacuation time estimates.
const WalkingSpeed = 1.5

// Location is a node of the hospital network.
type Location struct {
	ID            string
	Name          string
	Type          LocationType
	Floor         int
	X             float64
	Y             float64
	Department    string
	Accessibility Accessibility
	Capacity      int // 0 = unlimited
	Occupancy     int
	EmergencyExit bool
	Closed        bool
}

// Available reports whether the location is open and below capacity.
func (l Location) Available() bool {
	return !l.Closed && (l.Capacity == 0 || l.Occupancy < l.Capacity)
}

// Utilization returns occupancy as a percentage of capacity (0 when unlimited).
func (l Location) Utilization() float64 {
	if l.Capacity == 0 {
		return 0
	}

	return float64(l.Occupancy) / float64(l.Capacity) * 100
}

// IsExit reports whether the location counts as an evacuation target.
func (l Location) IsExit() bool {
	return l.EmergencyExit || l.Type == Entrance
}

// Link connects two locations in both directions.
type Link struct {
	From           string
	To             string
	Distance       float64 // meters
	TravelTime     float64 // seconds
	Accessibility  Accessibility
	Congestion     float64 // 0 is read as 1
	EmergencyRoute bool
	Closed         bool
}

// Weight returns the effective traversal cost for a traveler with the given
// needs. ok is false when the link cannot be used at all.
func (l Link) Weight(needs Accessibility) (w float64, ok bool) {
	if l.Closed {
		return 0, false
	}
	if needs == Wheelchair && l.Accessibility == StairsOnly {
		return 0, false
	}
	w = l.Distance
	if l.Congestion > 0 {
		w *= l.Congestion
	}
	if l.EmergencyRoute {
		w *= EmergencyRouteFactor
	}

	return w, true
}

// WheelchairFriendly reports whether the link is explicitly accessible or
// unclassified.
func (l Link) WheelchairFriendly() bool {
	return l.Accessibility == "" || l.Accessibility == Normal || l.Accessibility == Wheelchair
}

func (l Link) validate() error {
	if math.IsNaN(l.Distance) || math.IsInf(l.Distance, 0) || l.Distance < 0 {
		return fmt.Errorf("%w: %s-%s distance %v", ErrBadLink, l.From, l.To, l.Distance)
	}
	if math.IsNaN(l.Congestion) || math.IsInf(l.Congestion, 0) || l.Congestion < 0 {
		return fmt.Errorf("%w: %s-%s congestion %v", ErrBadLink, l.From, l.To, l.Congestion)
	}

	return nil
}

// Stats summarizes a network.
type Stats struct {
	Locations             int
	Connections           int
	ByType                map[LocationType]int
	ByFloor               map[int]int
	Departments           []string
	AccessibilityCoverage float64 // % of links usable by wheelchair users
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
