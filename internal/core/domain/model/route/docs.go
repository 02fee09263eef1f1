// Package route provides the Route aggregate: an ordered batch of
// picked-up tasks a courier delivers in one continuous trip. Stop order is
// fixed when the route starts; delivery confirmations advance a single
// index until the route completes.
package route
