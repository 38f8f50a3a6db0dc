// Package courier provides the Courier aggregate: a vendor with an optional last
// known position, a rating, and an optional assigned delivery zone.
//
// Couriers are created and positioned by the vendor directory. This package only
// restores them and changes their zone assignment, enforcing that a courier can
// join an active zone only and that repeated assignment is idempotent.
package courier
