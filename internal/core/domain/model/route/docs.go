// Package route models a courier's multi-stop delivery tour: the delivery points
// to visit and the ordered stops with per-leg distance and time.
package route
