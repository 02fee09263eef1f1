// Package task provides the DeliveryTask aggregate: the delivery-relevant
// projection of an order once it is ready for courier pickup.
//
// The package includes:
//   - Task: the aggregate root managing assignment, pickup, cancellation,
//     route membership, and delivery confirmation
//   - Status: a state machine enforcing the delivery lifecycle
//   - DeliveryCode: the 4-digit single-use handoff secret
//   - Item: a display-only line of the order's contents
//
// Key business rules:
//   - A task has at most one assigned courier at any time; reassignment is
//     only possible through explicit cancel-then-claim
//   - Status follows Available -> Accepted -> PickedUp ->
//     {InMultiRoute | Delivering} -> Delivered, with cancellation returning
//     any of the first three states to Available
//   - The delivery code is generated at pickup and cleared once consumed;
//     a code is never reusable
//   - A task inside an active route cannot be cancelled
package task
