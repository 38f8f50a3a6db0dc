package kernel

import (
	"fmt"

	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

// MinPolygonVertices is the smallest ring that can enclose an area.
const MinPolygonVertices = 3

var (
	// ErrPolygonIsNotConstructed is returned when a zero-value Polygon is used.
	ErrPolygonIsNotConstructed = errs.NewValueIsRequiredError(
		"polygon must be created via NewPolygon constructor")
	// ErrPolygonHasTooFewVertices is returned for rings with fewer than 3 vertices.
	ErrPolygonHasTooFewVertices = errs.NewValueIsInvalidErrorWithCause(
		"boundary", fmt.Errorf("polygon needs at least %d vertices", MinPolygonVertices))
)

// Polygon is an ordered, implicitly closed ring of vertices bounding a delivery zone.
type Polygon struct {
	vertices []Location
	guard    guard.ConstructorGuard
}

// NewPolygon copies vertices into a new ring. Every vertex must be a constructed
// Location and there must be at least MinPolygonVertices of them.
func NewPolygon(vertices []Location) (Polygon, error) {
	if len(vertices) < MinPolygonVertices {
		return Polygon{}, ErrPolygonHasTooFewVertices
	}

	for i, v := range vertices {
		if err := v.Validate(); err != nil {
			return Polygon{}, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("boundary[%d]", i), err)
		}
	}

	ring := make([]Location, len(vertices))
	copy(ring, vertices)

	return Polygon{vertices: ring, guard: guard.NewConstructorGuard()}, nil
}

func (p Polygon) Validate() error {
	return p.guard.Validate(ErrPolygonIsNotConstructed)
}

// Vertices returns a copy of the ring.
func (p Polygon) Vertices() []Location {
	out := make([]Location, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Contains runs ContainsPoint against the ring.
func (p Polygon) Contains(loc Location) bool {
	return ContainsPoint(loc.latitude, loc.longitude, p.vertices)
}
