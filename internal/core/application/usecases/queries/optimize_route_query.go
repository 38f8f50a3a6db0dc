package queries

import (
	"context"
	"errors"
	"fmt"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/services"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

var (
	ErrOptimizeRouteQueryIsNotConstructed = errors.New(
		"OptimizeRouteQuery must be created via NewOptimizeRouteQuery constructor",
	)
	ErrOrderIDsAreRequired  = errs.NewValueIsRequiredError("order ids")
	ErrCourierHasNoPosition = errs.NewValueIsRequiredError("courier position")
)

// OptimizeRouteQuery orders a courier's deliveries into a tour.
type OptimizeRouteQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	orderIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewOptimizeRouteQuery rejects an empty order list and repeated order ids.
func NewOptimizeRouteQuery(courierID kernel.UUID, orderIDs []kernel.UUID) (OptimizeRouteQuery, error) {
	query := OptimizeRouteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setCourierID(courierID),
		query.setOrderIDs(orderIDs),
	); err != nil {
		return OptimizeRouteQuery{}, err
	}

	return query, nil
}

func (q OptimizeRouteQuery) Validate() error {
	return q.guard.Validate(ErrOptimizeRouteQueryIsNotConstructed)
}

func (q OptimizeRouteQuery) CourierID() kernel.UUID {
	return q.courierID
}

// OrderIDs returns a copy of the requested order ids.
func (q OptimizeRouteQuery) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), q.orderIDs...)
}

func (q *OptimizeRouteQuery) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.courierID = id
	return nil
}

func (q *OptimizeRouteQuery) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrOrderIDsAreRequired
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		key := id.String()
		if _, dup := seen[key]; dup {
			return errs.NewValueIsInvalidErrorWithCause("order ids",
				fmt.Errorf("order %s is listed more than once", key))
		}
		seen[key] = struct{}{}
	}

	q.orderIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

// RouteStopResponse is one leg of the tour.
type RouteStopResponse struct {
	OrderID             kernel.UUID
	Location            kernel.Location
	WeightGrams         int
	LegDistanceKm       float64
	LegEstimatedMinutes int
}

// RouteResponse is the optimized tour starting at the courier's position.
type RouteResponse struct {
	CourierID             kernel.UUID
	Start                 kernel.Location
	Stops                 []RouteStopResponse
	TotalDistanceKm       float64
	TotalEstimatedMinutes int
}

// OptimizeRouteQueryHandler builds a greedy nearest-neighbour tour from the
// courier's current position. Positions are read on every call.
//
// Failures:
//   - missing courier or any missing order: NotFound, no partial tour
//   - courier without a position: ErrCourierHasNoPosition
type OptimizeRouteQueryHandler struct {
	couriers  CourierReader
	orders    OrderReader
	optimizer services.RouteOptimizer
}

func NewOptimizeRouteQueryHandler(couriers CourierReader, orders OrderReader) OptimizeRouteQueryHandler {
	return OptimizeRouteQueryHandler{
		couriers:  couriers,
		orders:    orders,
		optimizer: services.NewRouteOptimizer(),
	}
}

func (h OptimizeRouteQueryHandler) Handle(ctx context.Context, query OptimizeRouteQuery) (RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return RouteResponse{}, err
	}

	c, err := h.couriers.Get(ctx, query.CourierID())
	if err != nil {
		return RouteResponse{}, err
	}

	start, ok := c.Location()
	if !ok {
		return RouteResponse{}, ErrCourierHasNoPosition
	}

	points, err := h.orders.GetDeliveryPoints(ctx, query.OrderIDs())
	if err != nil {
		return RouteResponse{}, err
	}

	r, err := h.optimizer.Optimize(start, points)
	if err != nil {
		return RouteResponse{}, err
	}

	stops := r.Stops()
	response := RouteResponse{
		CourierID:             c.ID(),
		Start:                 r.Start(),
		Stops:                 make([]RouteStopResponse, 0, len(stops)),
		TotalDistanceKm:       r.TotalDistanceKm(),
		TotalEstimatedMinutes: r.TotalEstimatedMinutes(),
	}
	for _, s := range stops {
		response.Stops = append(response.Stops, RouteStopResponse{
			OrderID:             s.Point().ReferenceID(),
			Location:            s.Point().Location(),
			WeightGrams:         s.Point().WeightGrams(),
			LegDistanceKm:       s.LegDistanceKm(),
			LegEstimatedMinutes: s.LegEstimatedMinutes(),
		})
	}

	return response, nil
}
