package services

import (
	"math"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
	"zonedelivery/internal/pkg/errs"
)

// ErrNoDeliveryPoints is returned when a route is requested for an empty point list.
var ErrNoDeliveryPoints = errs.NewValueIsRequiredError("delivery points")

// RouteOptimizer sequences a courier's deliveries with the greedy nearest
// neighbour heuristic: from the current position, always go to the closest
// point not yet visited. The result is not a globally optimal tour.
//
// Ties are broken by input order, so results are deterministic.
//
// Example usage:
//
//	r, err := services.NewRouteOptimizer().Optimize(courierLocation, points)
//	if err != nil {
//	    // empty point list or invalid start
//	}
//	for _, stop := range r.Stops() { ... }
type RouteOptimizer struct{}

func NewRouteOptimizer() RouteOptimizer {
	return RouteOptimizer{}
}

// Optimize returns a route visiting every point exactly once, starting at start.
// It runs in O(n²) time.
func (o RouteOptimizer) Optimize(start kernel.Location, points []route.DeliveryPoint) (*route.Route, error) {
	if len(points) == 0 {
		return nil, ErrNoDeliveryPoints
	}
	for _, p := range points {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	r, err := route.NewRoute(start, len(points))
	if err != nil {
		return nil, err
	}

	remaining := newRemainingSet(points)
	for remaining.len() > 0 {
		next := remaining.nearest(r.Position())
		r.Visit(remaining.take(next))
	}

	return r, nil
}

// remainingSet tracks unvisited points by index. Taken slots are flagged, never
// removed, so indices stay stable and input order drives tie-breaking.
type remainingSet struct {
	points []route.DeliveryPoint
	taken  []bool
	left   int
}

func newRemainingSet(points []route.DeliveryPoint) *remainingSet {
	return &remainingSet{
		points: points,
		taken:  make([]bool, len(points)),
		left:   len(points),
	}
}

func (s *remainingSet) len() int {
	return s.left
}

// nearest returns the index of the closest untaken point, or -1 if none is left.
// Strict comparison keeps the first of equally distant points; a distance that
// never compares (NaN) still leaves the first untaken point selected.
func (s *remainingSet) nearest(from kernel.Location) int {
	best := -1
	bestKm := math.MaxFloat64

	for i, p := range s.points {
		if s.taken[i] {
			continue
		}
		if best < 0 {
			best = i
		}
		if km := from.DistanceTo(p.Location()); km < bestKm {
			best = i
			bestKm = km
		}
	}

	return best
}

func (s *remainingSet) take(i int) route.DeliveryPoint {
	s.taken[i] = true
	s.left--
	return s.points[i]
}
