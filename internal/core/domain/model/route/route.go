package route

import (
	"errors"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

var (
	// ErrDeliveryPointIsNotConstructed is returned when a zero-value DeliveryPoint is used.
	ErrDeliveryPointIsNotConstructed = errors.New("DeliveryPoint must be created via NewDeliveryPoint constructor")
	// ErrRouteIsNotConstructed is returned when a zero-value Route is used.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// DeliveryPoint is an order destination to be visited by a courier.
// weightGrams is 0 when the order weight is unknown.
type DeliveryPoint struct {
	referenceID kernel.UUID
	location    kernel.Location
	weightGrams int
	guard       guard.ConstructorGuard
}

func NewDeliveryPoint(referenceID kernel.UUID, location kernel.Location, weightGrams int) (DeliveryPoint, error) {
	p := DeliveryPoint{
		referenceID: referenceID,
		location:    location,
		weightGrams: weightGrams,
		guard:       guard.NewConstructorGuard(),
	}

	var weightErr error
	if weightGrams < 0 {
		weightErr = errs.NewValueIsOutOfRangeError("weight grams", weightGrams, 0, "unbounded")
	}

	if err := errors.Join(referenceID.Validate(), location.Validate(), weightErr); err != nil {
		return DeliveryPoint{}, err
	}

	return p, nil
}

func (p DeliveryPoint) Validate() error {
	return p.guard.Validate(ErrDeliveryPointIsNotConstructed)
}

func (p DeliveryPoint) ReferenceID() kernel.UUID {
	return p.referenceID
}

func (p DeliveryPoint) Location() kernel.Location {
	return p.location
}

func (p DeliveryPoint) WeightGrams() int {
	return p.weightGrams
}

// Stop is one visited point with the leg that led to it.
type Stop struct {
	point               DeliveryPoint
	legDistanceKm       float64
	legEstimatedMinutes int
}

func (s Stop) Point() DeliveryPoint {
	return s.point
}

func (s Stop) LegDistanceKm() float64 {
	return s.legDistanceKm
}

func (s Stop) LegEstimatedMinutes() int {
	return s.legEstimatedMinutes
}

// Route is an ordered tour starting at the courier position. Each appended stop
// gets a leg measured from the previous stop (or the start), and the totals are
// always the sums over the legs.
type Route struct {
	start                 kernel.Location
	stops                 []Stop
	totalDistanceKm       float64
	totalEstimatedMinutes int
	guard                 guard.ConstructorGuard
}

func NewRoute(start kernel.Location, capacity int) (*Route, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if capacity < 0 {
		capacity = 0
	}

	return &Route{
		start: start,
		stops: make([]Stop, 0, capacity),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (r *Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Position is where the courier stands after the last stop.
func (r *Route) Position() kernel.Location {
	if len(r.stops) == 0 {
		return r.start
	}
	return r.stops[len(r.stops)-1].point.location
}

// Visit appends p as the next stop.
func (r *Route) Visit(p DeliveryPoint) Stop {
	legKm := r.Position().DistanceTo(p.location)
	stop := Stop{
		point:               p,
		legDistanceKm:       legKm,
		legEstimatedMinutes: kernel.EstimatedMinutes(legKm),
	}

	r.stops = append(r.stops, stop)
	r.totalDistanceKm += stop.legDistanceKm
	r.totalEstimatedMinutes += stop.legEstimatedMinutes

	return stop
}

func (r *Route) Start() kernel.Location {
	return r.start
}

// Stops returns a copy of the visited stops in order.
func (r *Route) Stops() []Stop {
	out := make([]Stop, len(r.stops))
	copy(out, r.stops)
	return out
}

func (r *Route) TotalDistanceKm() float64 {
	return r.totalDistanceKm
}

func (r *Route) TotalEstimatedMinutes() int {
	return r.totalEstimatedMinutes
}
